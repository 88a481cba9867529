package physics

import (
	"math"
	"sort"

	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const probeTag = "probe"

// Collider is one volume registered in a Space.
type Collider struct {
	Shape   Shape
	Layer   Layer
	Owner   donburi.Entity
	Center  gamemath.Vec3
	Enabled bool

	object *resolv.Object
	id     uint64
}

// Bounds returns the axis aligned box around the collider.
func (c *Collider) Bounds() (min, max gamemath.Vec3) {
	return c.Shape.bounds(c.Center)
}

// Hit describes one query result.
type Hit struct {
	Point    gamemath.Vec3
	Normal   gamemath.Vec3
	Distance float64
	Collider *Collider
}

// Query is the set of geometry probes gameplay code relies on.
type Query interface {
	Raycast(origin, dir gamemath.Vec3, maxDist float64, mask Layer) (Hit, bool)
	SphereCast(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDist float64, mask Layer) (Hit, bool)
	SphereCastAll(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDist float64, mask Layer) []Hit
	OverlapSphere(center gamemath.Vec3, radius float64, mask Layer) []Hit
	CheckSphere(center gamemath.Vec3, radius float64, mask Layer) bool
}

var _ Query = (*Space)(nil)

type colliderPair struct {
	a, b *Collider
}

func makePair(a, b *Collider) colliderPair {
	if a.id > b.id {
		a, b = b, a
	}
	return colliderPair{a, b}
}

// Space holds every collider of the arena.
type Space struct {
	space   *resolv.Space
	probe   *resolv.Object
	origin  gamemath.Vec3
	ignored map[colliderPair]struct{}
	count   int
	nextID  uint64
}

// NewSpace covers the XZ rectangle between min and max with a broadphase
// grid of cellSize metre cells. Colliders outside it are never found.
func NewSpace(min, max gamemath.Vec3, cellSize float64) *Space {
	cell := int(math.Max(1, math.Round(cellSize)))
	w := int(math.Ceil(max.X-min.X)) + cell
	d := int(math.Ceil(max.Z-min.Z)) + cell
	s := &Space{
		space:   resolv.NewSpace(w, d, cell, cell),
		origin:  gamemath.V3(min.X, 0, min.Z),
		ignored: make(map[colliderPair]struct{}),
	}
	s.probe = resolv.NewObject(0, 0, 1, 1, probeTag)
	s.space.Add(s.probe)
	return s
}

// place maps an XZ box onto obj. resolv measures cell coverage up to W-1,
// so the size is padded by one unit to keep the far edge inside its cell.
func (s *Space) place(obj *resolv.Object, min, max gamemath.Vec3) {
	obj.X = min.X - s.origin.X
	obj.Y = min.Z - s.origin.Z
	obj.W = math.Max(max.X-min.X, 0) + 1
	obj.H = math.Max(max.Z-min.Z, 0) + 1
}

// Add registers c. Adding a registered collider is a no-op.
func (s *Space) Add(c *Collider) {
	if c.object != nil {
		return
	}
	min, max := c.Bounds()
	obj := resolv.NewObject(0, 0, 1, 1, c.Layer.Tag())
	s.place(obj, min, max)
	obj.Data = c
	c.object = obj
	s.nextID++
	c.id = s.nextID
	s.space.Add(obj)
	s.count++
}

// Remove unregisters c and forgets any ignore pairs it was part of.
func (s *Space) Remove(c *Collider) {
	if c.object == nil {
		return
	}
	s.space.Remove(c.object)
	c.object = nil
	s.count--
	for p := range s.ignored {
		if p.a == c || p.b == c {
			delete(s.ignored, p)
		}
	}
}

// Contains reports whether c is registered.
func (s *Space) Contains(c *Collider) bool {
	return c != nil && c.object != nil
}

// Len is the number of registered colliders.
func (s *Space) Len() int {
	return s.count
}

// Move sets the centre of c and refreshes its broadphase cells.
func (s *Space) Move(c *Collider, center gamemath.Vec3) {
	c.Center = center
	s.refresh(c)
}

// Reshape swaps the shape of c, for example when a body crouches.
func (s *Space) Reshape(c *Collider, shape Shape) {
	c.Shape = shape
	s.refresh(c)
}

func (s *Space) refresh(c *Collider) {
	if c.object == nil {
		return
	}
	min, max := c.Bounds()
	s.place(c.object, min, max)
	c.object.Update()
}

// IgnoreCollision suppresses (or restores) contacts between a and b.
// Both must be registered.
func (s *Space) IgnoreCollision(a, b *Collider, ignore bool) {
	if !s.Contains(a) || !s.Contains(b) || a == b {
		return
	}
	p := makePair(a, b)
	if ignore {
		s.ignored[p] = struct{}{}
	} else {
		delete(s.ignored, p)
	}
}

// Ignoring reports whether contacts between a and b are suppressed.
func (s *Space) Ignoring(a, b *Collider) bool {
	if a == nil || b == nil {
		return false
	}
	_, ok := s.ignored[makePair(a, b)]
	return ok
}

// candidates returns the enabled colliders in mask whose cells touch the
// XZ box between min and max.
func (s *Space) candidates(min, max gamemath.Vec3, mask Layer) []*Collider {
	s.place(s.probe, min, max)
	s.probe.Update()
	check := s.probe.Check(0, 0, mask.Tags()...)
	if check == nil {
		return nil
	}
	out := make([]*Collider, 0, len(check.Objects))
	for _, obj := range check.Objects {
		c, ok := obj.Data.(*Collider)
		if !ok || !c.Enabled || !c.Layer.Has(mask) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func sweepBounds(origin, dir gamemath.Vec3, dist, radius float64) (min, max gamemath.Vec3) {
	end := origin.Add(dir.Scale(dist))
	r := gamemath.V3(radius, radius, radius)
	min = gamemath.V3(math.Min(origin.X, end.X), math.Min(origin.Y, end.Y), math.Min(origin.Z, end.Z)).Sub(r)
	max = gamemath.V3(math.Max(origin.X, end.X), math.Max(origin.Y, end.Y), math.Max(origin.Z, end.Z)).Add(r)
	return min, max
}

// cast sweeps a sphere of radius (0 for a ray) and reports every collider
// it touches. Colliders containing the origin are included at distance 0
// only when keepInside is set.
func (s *Space) cast(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDist float64, mask Layer, keepInside bool) []Hit {
	dir = dir.Normalized()
	if dir.IsZero() || maxDist < 0 {
		return nil
	}
	min, max := sweepBounds(origin, dir, maxDist, radius)
	var hits []Hit
	for _, c := range s.candidates(min, max, mask) {
		var (
			t      float64
			normal gamemath.Vec3
			inside bool
			ok     bool
		)
		if c.Shape.Kind == ShapeSphere {
			t, normal, inside, ok = raySphere(origin, dir, maxDist, c.Center, c.Shape.Radius+radius)
		} else {
			t, normal, inside, ok = rayConvex(origin, dir, maxDist, c.Shape.planes(c.Center), radius)
		}
		if !ok || (inside && !keepInside) {
			continue
		}
		point := origin.Add(dir.Scale(t)).Sub(normal.Scale(radius))
		if inside {
			point = c.Shape.closestPoint(c.Center, origin)
		}
		hits = append(hits, Hit{Point: point, Normal: normal, Distance: t, Collider: c})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Raycast returns the nearest collider hit by the ray. Colliders that
// contain the origin are ignored.
func (s *Space) Raycast(origin, dir gamemath.Vec3, maxDist float64, mask Layer) (Hit, bool) {
	hits := s.cast(origin, 0, dir, maxDist, mask, false)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// SphereCast sweeps a sphere and returns the nearest hit. Colliders that
// already overlap the start sphere are ignored.
func (s *Space) SphereCast(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDist float64, mask Layer) (Hit, bool) {
	hits := s.cast(origin, radius, dir, maxDist, mask, false)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// SphereCastAll sweeps a sphere and returns every hit sorted by distance.
// Colliders overlapping the start sphere are reported at distance 0.
func (s *Space) SphereCastAll(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDist float64, mask Layer) []Hit {
	return s.cast(origin, radius, dir, maxDist, mask, true)
}

// OverlapSphere returns every collider touching the sphere, nearest first.
func (s *Space) OverlapSphere(center gamemath.Vec3, radius float64, mask Layer) []Hit {
	r := gamemath.V3(radius, radius, radius)
	var hits []Hit
	for _, c := range s.candidates(center.Sub(r), center.Add(r), mask) {
		if !c.Shape.overlapsSphere(c.Center, center, radius) {
			continue
		}
		p := c.Shape.closestPoint(c.Center, center)
		n := center.Sub(p).Normalized()
		hits = append(hits, Hit{Point: p, Normal: n, Distance: center.Dist(p), Collider: c})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// CheckSphere reports whether anything in mask touches the sphere.
func (s *Space) CheckSphere(center gamemath.Vec3, radius float64, mask Layer) bool {
	r := gamemath.V3(radius, radius, radius)
	for _, c := range s.candidates(center.Sub(r), center.Add(r), mask) {
		if c.Shape.overlapsSphere(c.Center, center, radius) {
			return true
		}
	}
	return false
}

// Overlaps returns the enabled colliders in mask touching c within skin,
// nearest centre first. Ignored pairs and c itself are skipped.
func (s *Space) Overlaps(c *Collider, mask Layer, skin float64) []*Collider {
	min, max := c.Bounds()
	g := gamemath.V3(skin, skin, skin)
	var out []*Collider
	for _, o := range s.candidates(min.Sub(g), max.Add(g), mask) {
		if o == c || s.Ignoring(c, o) {
			continue
		}
		if overlaps(c.Shape, c.Center, o.Shape, o.Center, skin) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Center.Dist(c.Center) < out[j].Center.Dist(c.Center)
	})
	return out
}
