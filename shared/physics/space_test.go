package physics

import (
	"math"
	"testing"

	"github.com/automoto/vacuumarena/shared/gamemath"
)

const tol = 1e-6

func newTestSpace() *Space {
	return NewSpace(gamemath.V3(-20, 0, -20), gamemath.V3(20, 0, 20), 4)
}

func addCollider(s *Space, shape Shape, layer Layer, center gamemath.Vec3) *Collider {
	c := &Collider{Shape: shape, Layer: layer, Center: center, Enabled: true}
	s.Add(c)
	return c
}

func addGround(s *Space) *Collider {
	return addCollider(s, Box(gamemath.V3(10, 1, 10)), LayerGround, gamemath.V3(0, -1, 0))
}

func TestRaycast(t *testing.T) {
	s := newTestSpace()
	ground := addGround(s)
	wall := addCollider(s, Box(gamemath.V3(0.5, 2, 4)), LayerWall, gamemath.V3(5, 2, 0))

	tests := []struct {
		name     string
		origin   gamemath.Vec3
		dir      gamemath.Vec3
		maxDist  float64
		mask     Layer
		want     *Collider
		dist     float64
		normal   gamemath.Vec3
		wantMiss bool
	}{
		{"down onto ground", gamemath.V3(0, 5, 0), gamemath.Down, 10, LayerStatic, ground, 5, gamemath.Up, false},
		{"sideways into wall", gamemath.V3(0, 1, 0), gamemath.Right, 10, LayerStatic, wall, 4.5, gamemath.V3(-1, 0, 0), false},
		{"masked out", gamemath.V3(0, 1, 0), gamemath.Right, 10, LayerGround, nil, 0, gamemath.Zero, true},
		{"too short", gamemath.V3(0, 5, 0), gamemath.Down, 4, LayerStatic, nil, 0, gamemath.Zero, true},
		{"pointing away", gamemath.V3(0, 5, 0), gamemath.Up, 10, LayerStatic, nil, 0, gamemath.Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := s.Raycast(tt.origin, tt.dir, tt.maxDist, tt.mask)
			if tt.wantMiss {
				if ok {
					t.Fatalf("expected a miss, got %+v", hit)
				}
				return
			}
			if !ok {
				t.Fatal("expected a hit")
			}
			if hit.Collider != tt.want {
				t.Errorf("hit collider %p, want %p", hit.Collider, tt.want)
			}
			if math.Abs(hit.Distance-tt.dist) > tol {
				t.Errorf("distance = %v, want %v", hit.Distance, tt.dist)
			}
			if !hit.Normal.ApproxEqual(tt.normal, tol) {
				t.Errorf("normal = %v, want %v", hit.Normal, tt.normal)
			}
		})
	}
}

func TestRaycastSkipsDisabledAndContainingColliders(t *testing.T) {
	s := newTestSpace()
	ground := addGround(s)

	ground.Enabled = false
	if _, ok := s.Raycast(gamemath.V3(0, 5, 0), gamemath.Down, 10, LayerAll); ok {
		t.Error("disabled collider was hit")
	}
	ground.Enabled = true

	if _, ok := s.Raycast(gamemath.V3(0, -1, 0), gamemath.Down, 10, LayerAll); ok {
		t.Error("ray starting inside the ground reported a hit")
	}
}

func TestRampSurface(t *testing.T) {
	s := newTestSpace()
	ramp := addCollider(s, Ramp(gamemath.V3(2, 1, 2), RisePosX), LayerGround, gamemath.V3(0, 1, 0))

	if got := ramp.Shape.SurfaceY(ramp.Center, gamemath.V3(0, 0, 0)); math.Abs(got-1) > tol {
		t.Errorf("surface at the middle = %v, want 1", got)
	}
	if got := ramp.Shape.SurfaceY(ramp.Center, gamemath.V3(-5, 0, 0)); math.Abs(got) > tol {
		t.Errorf("surface past the low edge = %v, want 0", got)
	}

	n := ramp.Shape.SurfaceNormal()
	if n.X >= 0 || n.Y <= 0 {
		t.Errorf("ramp rising towards +X should face -X and up, got %v", n)
	}
	if got := gamemath.SlopeAngle(n); math.Abs(got-math.Atan(0.5)*180/math.Pi) > 1e-6 {
		t.Errorf("slope angle = %v", got)
	}

	hit, ok := s.Raycast(gamemath.V3(0, 5, 0), gamemath.Down, 10, LayerGround)
	if !ok {
		t.Fatal("ray missed the ramp")
	}
	if math.Abs(hit.Distance-4) > tol {
		t.Errorf("ramp hit distance = %v, want 4", hit.Distance)
	}
	if !hit.Normal.ApproxEqual(n, tol) {
		t.Errorf("ramp hit normal = %v, want %v", hit.Normal, n)
	}
}

func TestSphereCastAllIsSortedAndKeepsStartOverlaps(t *testing.T) {
	s := newTestSpace()
	far := addCollider(s, Sphere(0.5), LayerVacuumable, gamemath.V3(0, 1, 6))
	near := addCollider(s, Sphere(0.5), LayerVacuumable, gamemath.V3(0, 1, 3))
	start := addCollider(s, Sphere(0.5), LayerVacuumable, gamemath.V3(0, 1, 0))
	addCollider(s, Sphere(0.5), LayerEnemy, gamemath.V3(0, 1, 4))

	hits := s.SphereCastAll(gamemath.V3(0, 1, 0), 0.2, gamemath.Forward, 10, LayerVacuumable)
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
	want := []*Collider{start, near, far}
	for i, h := range hits {
		if h.Collider != want[i] {
			t.Errorf("hit %d is %p, want %p", i, h.Collider, want[i])
		}
	}
	if hits[0].Distance != 0 {
		t.Errorf("overlapping collider distance = %v, want 0", hits[0].Distance)
	}
	if math.Abs(hits[1].Distance-2.3) > tol {
		t.Errorf("near distance = %v, want 2.3", hits[1].Distance)
	}

	single, ok := s.SphereCast(gamemath.V3(0, 1, 0), 0.2, gamemath.Forward, 10, LayerVacuumable)
	if !ok || single.Collider != near {
		t.Errorf("SphereCast should skip the start overlap and return the near sphere, got %+v", single)
	}
}

func TestOverlapSphereAndCheckSphere(t *testing.T) {
	s := newTestSpace()
	a := addCollider(s, Box(gamemath.V3(0.5, 0.5, 0.5)), LayerPickup, gamemath.V3(1.5, 0.5, 0))
	b := addCollider(s, Sphere(0.5), LayerPickup, gamemath.V3(0, 0.5, 0.8))
	addCollider(s, Sphere(0.5), LayerPickup, gamemath.V3(8, 0.5, 0))

	hits := s.OverlapSphere(gamemath.V3(0, 0.5, 0), 1.2, LayerPickup)
	if len(hits) != 2 {
		t.Fatalf("got %d overlaps, want 2", len(hits))
	}
	if hits[0].Collider != b || hits[1].Collider != a {
		t.Errorf("overlaps not ordered nearest first")
	}

	if !s.CheckSphere(gamemath.V3(1.5, 0.5, 0), 0.1, LayerPickup) {
		t.Error("CheckSphere missed a box it sits in")
	}
	if s.CheckSphere(gamemath.V3(1.5, 0.5, 0), 0.1, LayerWall) {
		t.Error("CheckSphere ignored the mask")
	}
	if s.CheckSphere(gamemath.V3(-8, 0.5, -8), 1, LayerAll) {
		t.Error("CheckSphere hit empty space")
	}
}

func TestIgnoreCollision(t *testing.T) {
	s := newTestSpace()
	player := addCollider(s, Box(gamemath.V3(0.4, 0.9, 0.4)), LayerPlayer, gamemath.V3(0, 1, 0))
	prop := addCollider(s, Sphere(0.25), LayerVacuumable, gamemath.V3(0.5, 1, 0))

	if got := s.Overlaps(player, LayerVacuumable, 0.05); len(got) != 1 || got[0] != prop {
		t.Fatalf("expected the prop to touch the player, got %v", got)
	}

	s.IgnoreCollision(player, prop, true)
	if !s.Ignoring(prop, player) {
		t.Error("ignore pair should be symmetric")
	}
	if got := s.Overlaps(player, LayerVacuumable, 0.05); len(got) != 0 {
		t.Errorf("ignored pair still overlaps: %v", got)
	}

	s.IgnoreCollision(player, prop, false)
	if got := s.Overlaps(player, LayerVacuumable, 0.05); len(got) != 1 {
		t.Errorf("restored pair does not overlap")
	}

	s.IgnoreCollision(player, prop, true)
	s.Remove(prop)
	if s.Ignoring(player, prop) {
		t.Error("removing a collider should forget its ignore pairs")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestResolve(t *testing.T) {
	body := Box(gamemath.V3(0.4, 0.9, 0.4))

	t.Run("lands on the floor", func(t *testing.T) {
		s := newTestSpace()
		ground := addGround(s)
		c := addCollider(s, body, LayerPlayer, gamemath.V3(0, 0.8, 0))

		center, contacts := s.Resolve(c, gamemath.V3(0, 1, 0), LayerStatic)
		if math.Abs(center.Y-0.9) > tol {
			t.Errorf("centre Y = %v, want 0.9", center.Y)
		}
		if len(contacts) != 1 || contacts[0].Collider != ground || !contacts[0].Normal.ApproxEqual(gamemath.Up, tol) {
			t.Errorf("contacts = %+v", contacts)
		}
		if c.Center != center {
			t.Error("collider was not moved to the corrected centre")
		}
	})

	t.Run("fast fall lands on top", func(t *testing.T) {
		s := newTestSpace()
		addGround(s)
		c := addCollider(s, body, LayerPlayer, gamemath.V3(0, 0.2, 0))

		center, _ := s.Resolve(c, gamemath.V3(0, 1.2, 0), LayerStatic)
		if math.Abs(center.Y-0.9) > tol {
			t.Errorf("centre Y = %v, want 0.9", center.Y)
		}
	})

	t.Run("pushed back from a wall", func(t *testing.T) {
		s := newTestSpace()
		addGround(s)
		addCollider(s, Box(gamemath.V3(0.5, 2, 4)), LayerWall, gamemath.V3(3, 2, 0))
		c := addCollider(s, body, LayerPlayer, gamemath.V3(2.2, 1.5, 0))

		center, contacts := s.Resolve(c, gamemath.V3(2, 1.5, 0), LayerStatic)
		if math.Abs(center.X-2.1) > tol || math.Abs(center.Y-1.5) > tol {
			t.Errorf("centre = %v, want (2.1, 1.5, 0)", center)
		}
		if len(contacts) != 1 || !contacts[0].Normal.ApproxEqual(gamemath.V3(-1, 0, 0), tol) {
			t.Errorf("contacts = %+v", contacts)
		}
	})

	t.Run("snaps up a ramp", func(t *testing.T) {
		s := newTestSpace()
		ramp := addCollider(s, Ramp(gamemath.V3(2, 1, 2), RisePosX), LayerGround, gamemath.V3(0, 1, 0))
		c := addCollider(s, body, LayerPlayer, gamemath.V3(0, 1.7, 0))

		center, contacts := s.Resolve(c, gamemath.V3(-0.2, 1.7, 0), LayerStatic)
		if math.Abs(center.Y-1.9) > tol || math.Abs(center.X) > tol {
			t.Errorf("centre = %v, want (0, 1.9, 0)", center)
		}
		if len(contacts) != 1 || !contacts[0].Normal.ApproxEqual(ramp.Shape.SurfaceNormal(), tol) {
			t.Errorf("contacts = %+v", contacts)
		}
	})

	t.Run("no contact when clear", func(t *testing.T) {
		s := newTestSpace()
		addGround(s)
		c := addCollider(s, body, LayerPlayer, gamemath.V3(0, 2, 0))
		center, contacts := s.Resolve(c, gamemath.V3(0, 2.1, 0), LayerStatic)
		if len(contacts) != 0 || center != gamemath.V3(0, 2, 0) {
			t.Errorf("unexpected resolution: %v %+v", center, contacts)
		}
	})
}

func TestParseRampRise(t *testing.T) {
	tests := []struct {
		in   string
		want RampRise
		ok   bool
	}{
		{"east", RisePosX, true},
		{"-x", RiseNegX, true},
		{"north", RisePosZ, true},
		{"south", RiseNegZ, true},
		{"up", RisePosX, false},
	}
	for _, tt := range tests {
		got, ok := ParseRampRise(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRampRise(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
