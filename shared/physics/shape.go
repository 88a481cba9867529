package physics

import (
	"math"

	"github.com/automoto/vacuumarena/shared/gamemath"
)

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeRamp
)

// RampRise is the horizontal direction in which a ramp's top climbs.
type RampRise int

const (
	RisePosX RampRise = iota
	RiseNegX
	RisePosZ
	RiseNegZ
)

// ParseRampRise maps the level editor names ("east", "west", "north",
// "south") onto rise directions. North is +Z.
func ParseRampRise(name string) (RampRise, bool) {
	switch name {
	case "east", "+x":
		return RisePosX, true
	case "west", "-x":
		return RiseNegX, true
	case "north", "+z":
		return RisePosZ, true
	case "south", "-z":
		return RiseNegZ, true
	}
	return RisePosX, false
}

func (r RampRise) dir() gamemath.Vec3 {
	switch r {
	case RiseNegX:
		return gamemath.V3(-1, 0, 0)
	case RisePosZ:
		return gamemath.V3(0, 0, 1)
	case RiseNegZ:
		return gamemath.V3(0, 0, -1)
	}
	return gamemath.V3(1, 0, 0)
}

// Shape is a collider volume centred on its collider's Center. Boxes and
// ramps are axis aligned; a ramp fills the part of its box under a plane
// that climbs from the bottom of one side to the top of the opposite side.
type Shape struct {
	Kind   ShapeKind
	Half   gamemath.Vec3
	Radius float64
	Rise   RampRise
}

func Box(half gamemath.Vec3) Shape {
	return Shape{Kind: ShapeBox, Half: half}
}

func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius, Half: gamemath.V3(radius, radius, radius)}
}

func Ramp(half gamemath.Vec3, rise RampRise) Shape {
	return Shape{Kind: ShapeRamp, Half: half, Rise: rise}
}

// Scaled returns the shape with its extents multiplied componentwise.
// Spheres scale by the largest component.
func (s Shape) Scaled(scale gamemath.Vec3) Shape {
	if s.Kind == ShapeSphere {
		k := math.Max(scale.X, math.Max(scale.Y, scale.Z))
		return Sphere(s.Radius * k)
	}
	s.Half = s.Half.Mul(scale)
	return s
}

func (s Shape) bounds(center gamemath.Vec3) (min, max gamemath.Vec3) {
	return center.Sub(s.Half), center.Add(s.Half)
}

// rampRun returns the rise direction, the coordinate of the low edge along
// it, and the run length.
func (s Shape) rampRun(center gamemath.Vec3) (u gamemath.Vec3, low, run float64) {
	u = s.Rise.dir()
	min, max := s.bounds(center)
	low = math.Min(u.Dot(min), u.Dot(max))
	run = 2 * math.Abs(u.Dot(s.Half))
	return u, low, run
}

// SurfaceY is the top of a ramp above the horizontal position of p,
// clamped to the ramp footprint. For boxes it is the box top.
func (s Shape) SurfaceY(center, p gamemath.Vec3) float64 {
	min, max := s.bounds(center)
	if s.Kind != ShapeRamp {
		return max.Y
	}
	u, low, run := s.rampRun(center)
	if run <= 0 {
		return max.Y
	}
	return gamemath.RampSurfaceY(min.Y, max.Y, (u.Dot(p)-low)/run)
}

// SurfaceNormal is the outward normal of a ramp's sloped face.
func (s Shape) SurfaceNormal() gamemath.Vec3 {
	if s.Kind != ShapeRamp {
		return gamemath.Up
	}
	u := s.Rise.dir()
	run := 2 * math.Abs(u.Dot(s.Half))
	if run <= 0 {
		return gamemath.Up
	}
	return gamemath.Up.Sub(u.Scale(2 * s.Half.Y / run)).Normalized()
}

// plane is the half-space n·x <= d with n unit length.
type plane struct {
	n gamemath.Vec3
	d float64
}

func (s Shape) planes(center gamemath.Vec3) []plane {
	min, max := s.bounds(center)
	ps := []plane{
		{gamemath.V3(1, 0, 0), max.X},
		{gamemath.V3(-1, 0, 0), -min.X},
		{gamemath.V3(0, 1, 0), max.Y},
		{gamemath.V3(0, -1, 0), -min.Y},
		{gamemath.V3(0, 0, 1), max.Z},
		{gamemath.V3(0, 0, -1), -min.Z},
	}
	if s.Kind == ShapeRamp {
		u, low, run := s.rampRun(center)
		if run > 0 {
			k := 2 * s.Half.Y / run
			n := gamemath.Up.Sub(u.Scale(k))
			l := n.Len()
			ps = append(ps, plane{n.Scale(1 / l), (min.Y - k*low) / l})
		}
	}
	return ps
}

// rayConvex clips a ray against a convex set of planes pushed outward by
// inflate. inside is set when the origin already lies in the volume.
func rayConvex(origin, dir gamemath.Vec3, maxDist float64, ps []plane, inflate float64) (t float64, normal gamemath.Vec3, inside, ok bool) {
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	inside = true
	for _, p := range ps {
		dist := p.d + inflate - p.n.Dot(origin)
		denom := p.n.Dot(dir)
		if dist < 0 {
			inside = false
		}
		if math.Abs(denom) < 1e-12 {
			if dist < 0 {
				return 0, gamemath.Zero, false, false
			}
			continue
		}
		tp := dist / denom
		if denom < 0 {
			if tp > tEnter {
				tEnter = tp
				normal = p.n
			}
		} else if tp < tExit {
			tExit = tp
		}
	}
	if inside {
		return 0, dir.Neg(), true, true
	}
	if tEnter > tExit || tEnter < 0 || tEnter > maxDist {
		return 0, gamemath.Zero, false, false
	}
	return tEnter, normal, false, true
}

// raySphere intersects a ray with a sphere.
func raySphere(origin, dir gamemath.Vec3, maxDist float64, center gamemath.Vec3, radius float64) (t float64, normal gamemath.Vec3, inside, ok bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, dir.Neg(), true, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, gamemath.Zero, false, false
	}
	t = -b - math.Sqrt(disc)
	if t < 0 || t > maxDist {
		return 0, gamemath.Zero, false, false
	}
	normal = origin.Add(dir.Scale(t)).Sub(center).Normalized()
	return t, normal, false, true
}

// closestPoint returns the point of the shape nearest to p.
func (s Shape) closestPoint(center, p gamemath.Vec3) gamemath.Vec3 {
	if s.Kind == ShapeSphere {
		d := p.Sub(center)
		if d.Len() <= s.Radius {
			return p
		}
		return center.Add(d.Normalized().Scale(s.Radius))
	}
	min, max := s.bounds(center)
	q := gamemath.V3(
		gamemath.Clamp(p.X, min.X, max.X),
		gamemath.Clamp(p.Y, min.Y, max.Y),
		gamemath.Clamp(p.Z, min.Z, max.Z),
	)
	if s.Kind == ShapeRamp {
		q.Y = math.Min(q.Y, s.SurfaceY(center, q))
	}
	return q
}

// overlapsSphere tests a sphere against the shape. Ramps use their planes
// pushed out by the radius, which is generous only near edges.
func (s Shape) overlapsSphere(center, c gamemath.Vec3, r float64) bool {
	switch s.Kind {
	case ShapeSphere:
		return center.Dist(c) <= s.Radius+r
	case ShapeRamp:
		for _, p := range s.planes(center) {
			if p.n.Dot(c) > p.d+r {
				return false
			}
		}
		return true
	}
	return s.closestPoint(center, c).Dist(c) <= r
}

// overlaps tests two shapes for contact, growing a by skin.
func overlaps(a Shape, ac gamemath.Vec3, b Shape, bc gamemath.Vec3, skin float64) bool {
	if a.Kind == ShapeSphere {
		return b.overlapsSphere(bc, ac, a.Radius+skin)
	}
	if b.Kind == ShapeSphere {
		return a.overlapsSphere(ac, bc, b.Radius+skin)
	}
	amin, amax := a.bounds(ac)
	bmin, bmax := b.bounds(bc)
	g := gamemath.V3(skin, skin, skin)
	amin, amax = amin.Sub(g), amax.Add(g)
	if amax.X < bmin.X || amin.X > bmax.X || amax.Y < bmin.Y || amin.Y > bmax.Y || amax.Z < bmin.Z || amin.Z > bmax.Z {
		return false
	}
	if b.Kind == ShapeRamp {
		return amin.Y <= b.SurfaceY(bc, ac)
	}
	if a.Kind == ShapeRamp {
		return bmin.Y <= a.SurfaceY(ac, bc)
	}
	return true
}
