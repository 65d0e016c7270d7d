package core

// Ray represents a half-line origin + t*direction, t >= 0
type Ray struct {
	Origin    Vec3
	Direction Vec3 // unit length when built with NewRay
}

// NewRay creates a new ray with a normalized direction, so that the ray
// parameter t is a Euclidean distance
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InvDirection returns the reciprocal direction and the per-axis sign flags
// used by Bounds3.IntersectP. Callers compute these once per query.
func (r Ray) InvDirection() (Vec3, [3]bool) {
	inv := r.Direction.Inverse()
	// The sign is taken from the reciprocal so that +0 and -0 components
	// agree with the infinity they produce.
	return inv, [3]bool{inv.X < 0, inv.Y < 0, inv.Z < 0}
}
