package gamemath

import "math"

// Vec3 is a 3D vector in arena space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero    = Vec3{}
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Forward = Vec3{0, 0, 1}
	Right   = Vec3{1, 0, 0}
)

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Mul multiplies componentwise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Normalized returns the unit vector, or Zero for a (near) zero vector.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// WithY replaces the vertical component.
func (v Vec3) WithY(y float64) Vec3 {
	return Vec3{v.X, y, v.Z}
}

func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// ApproxEqual compares componentwise within eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// ClampLen scales v down so its length is at most max.
func (v Vec3) ClampLen(max float64) Vec3 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// ProjectOnPlane removes the component of v along the plane normal n.
func (v Vec3) ProjectOnPlane(n Vec3) Vec3 {
	n = n.Normalized()
	return v.Sub(n.Scale(v.Dot(n)))
}

// AngleDeg returns the unsigned angle between a and b in degrees.
func AngleDeg(a, b Vec3) float64 {
	d := math.Sqrt(a.LenSq() * b.LenSq())
	if d < 1e-12 {
		return 0
	}
	return math.Acos(Clamp(a.Dot(b)/d, -1, 1)) * 180 / math.Pi
}

// RotateAround rotates v around axis by deg degrees.
func RotateAround(v, axis Vec3, deg float64) Vec3 {
	k := axis.Normalized()
	if k.IsZero() {
		return v
	}
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	// Rodrigues' rotation formula
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// LerpVec interpolates between a and b without clamping t.
func LerpVec(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Basis returns the forward, right and up vectors for a yaw/pitch camera in
// degrees. Yaw 0 looks down +Z; positive pitch looks up.
func Basis(yawDeg, pitchDeg float64) (forward, right, up Vec3) {
	yaw := yawDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180
	forward = Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		math.Cos(yaw) * math.Cos(pitch),
	}
	right = Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
	up = forward.Cross(right)
	return forward, right, up
}

// FlatBasis returns the yaw-only forward and right vectors used for
// movement input.
func FlatBasis(yawDeg float64) (forward, right Vec3) {
	forward, right, _ = Basis(yawDeg, 0)
	return forward, right
}
