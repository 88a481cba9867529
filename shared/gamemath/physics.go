package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates from a to b by t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// ApplyDrag damps velocity the way a linear drag coefficient does over dt.
func ApplyDrag(v Vec3, drag, dt float64) Vec3 {
	if drag <= 0 {
		return v
	}
	return v.Scale(1 / (1 + drag*dt))
}

// ClampPlanarSpeed limits speed to max. With full set the whole 3D vector
// is clamped; otherwise only the horizontal part is and Y is kept.
func ClampPlanarSpeed(v Vec3, max float64, full bool) Vec3 {
	if full {
		return v.ClampLen(max)
	}
	flat := v.Flat()
	if flat.Len() <= max {
		return v
	}
	limited := flat.ClampLen(max)
	return Vec3{limited.X, v.Y, limited.Z}
}

// MoveTowards steps current toward target by at most maxDelta.
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	d := target.Sub(current)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.Scale(maxDelta / dist))
}

// CeilSeconds returns how many whole-second ticks a countdown of d seconds
// announces.
func CeilSeconds(d float64) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d - 1e-9))
}
