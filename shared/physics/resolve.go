package physics

import (
	"math"

	"github.com/automoto/vacuumarena/shared/gamemath"
)

const resolveEpsilon = 1e-6

// Contact is one penetration removed by Resolve.
type Contact struct {
	Normal   gamemath.Vec3
	Collider *Collider
}

// Resolve pushes c out of every collider in mask it penetrates. prev is the
// centre before this step; the side c came from decides the push axis, so
// fast bodies land on top of thin floors instead of tunnelling sideways.
// The collider is moved to the corrected centre, which is also returned.
func (s *Space) Resolve(c *Collider, prev gamemath.Vec3, mask Layer) (gamemath.Vec3, []Contact) {
	center := c.Center
	min, max := c.Bounds()
	var contacts []Contact
	for _, o := range s.candidates(min, max, mask) {
		if o == c || s.Ignoring(c, o) {
			continue
		}
		var (
			push   gamemath.Vec3
			normal gamemath.Vec3
			ok     bool
		)
		if o.Shape.Kind == ShapeRamp {
			push, normal, ok = resolveRamp(c.Shape, center, prev, o)
		} else {
			omin, omax := o.Bounds()
			push, normal, ok = resolveBox(c.Shape, center, prev, omin, omax)
		}
		if !ok {
			continue
		}
		center = center.Add(push)
		contacts = append(contacts, Contact{Normal: normal, Collider: o})
	}
	if len(contacts) > 0 {
		s.Move(c, center)
	}
	return center, contacts
}

func axisOf(v gamemath.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func unitAxis(axis int, sign float64) gamemath.Vec3 {
	switch axis {
	case 0:
		return gamemath.V3(sign, 0, 0)
	case 1:
		return gamemath.V3(0, sign, 0)
	}
	return gamemath.V3(0, 0, sign)
}

func resolveBox(body Shape, center, prev, omin, omax gamemath.Vec3) (push, normal gamemath.Vec3, ok bool) {
	bmin, bmax := body.bounds(center)
	pmin, pmax := body.bounds(prev)

	best, bestPrev := -1, -1
	var bestOverlap, bestPrevOverlap float64
	for axis := 0; axis < 3; axis++ {
		overlap := math.Min(axisOf(bmax, axis), axisOf(omax, axis)) - math.Max(axisOf(bmin, axis), axisOf(omin, axis))
		if overlap <= 0 {
			return gamemath.Zero, gamemath.Zero, false
		}
		if best < 0 || overlap < bestOverlap {
			best, bestOverlap = axis, overlap
		}
		separated := axisOf(pmin, axis) >= axisOf(omax, axis)-resolveEpsilon ||
			axisOf(pmax, axis) <= axisOf(omin, axis)+resolveEpsilon
		if separated && (bestPrev < 0 || overlap < bestPrevOverlap) {
			bestPrev, bestPrevOverlap = axis, overlap
		}
	}

	axis, overlap := best, bestOverlap
	var sign float64
	if bestPrev >= 0 {
		axis, overlap = bestPrev, bestPrevOverlap
		if axisOf(pmin, axis) >= axisOf(omax, axis)-resolveEpsilon {
			sign = 1
		} else {
			sign = -1
		}
	} else {
		mid := (axisOf(omin, axis) + axisOf(omax, axis)) / 2
		sign = 1
		if axisOf(center, axis) < mid {
			sign = -1
		}
	}
	normal = unitAxis(axis, sign)
	return normal.Scale(overlap), normal, true
}

func resolveRamp(body Shape, center, prev gamemath.Vec3, ramp *Collider) (push, normal gamemath.Vec3, ok bool) {
	omin, omax := ramp.Bounds()
	bmin, bmax := body.bounds(center)
	if bmax.X <= omin.X || bmin.X >= omax.X || bmax.Z <= omin.Z || bmin.Z >= omax.Z ||
		bmax.Y <= omin.Y || bmin.Y >= omax.Y {
		return gamemath.Zero, gamemath.Zero, false
	}

	inFootprint := center.X >= omin.X && center.X <= omax.X && center.Z >= omin.Z && center.Z <= omax.Z
	if !inFootprint {
		// Beside the ramp: treat it as a box as tall as the surface at the
		// nearest footprint point.
		edge := gamemath.V3(
			gamemath.Clamp(center.X, omin.X, omax.X), 0,
			gamemath.Clamp(center.Z, omin.Z, omax.Z),
		)
		top := ramp.Shape.SurfaceY(ramp.Center, edge)
		if bmin.Y >= top {
			return gamemath.Zero, gamemath.Zero, false
		}
		return resolveBox(body, center, prev, omin, omax.WithY(top))
	}

	surface := ramp.Shape.SurfaceY(ramp.Center, center)
	depth := surface - bmin.Y
	if depth <= 0 || depth > bmax.Y-bmin.Y {
		return gamemath.Zero, gamemath.Zero, false
	}
	return gamemath.V3(0, depth, 0), ramp.Shape.SurfaceNormal(), true
}
