package gamemath

// SlopeAngle returns the angle in degrees between a surface normal and up.
func SlopeAngle(normal Vec3) float64 {
	return AngleDeg(Up, normal)
}

// IsWalkableSlope reports a tilted surface that is still under maxAngle.
// Flat ground is not a slope.
func IsWalkableSlope(normal Vec3, maxAngle float64) bool {
	angle := SlopeAngle(normal)
	return angle < maxAngle && angle != 0
}

// SlopeMoveDirection projects a move direction onto the slope plane.
func SlopeMoveDirection(dir, normal Vec3) Vec3 {
	return dir.ProjectOnPlane(normal).Normalized()
}

// RampSurfaceY returns the surface height of a ramp at t along its rise
// axis, where t = 0 is the low edge.
func RampSurfaceY(bottom, top, t float64) float64 {
	return bottom + (top-bottom)*Clamp01(t)
}
