package core

import "math"

// Bounds3 represents an axis-aligned bounding box
type Bounds3 struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// EmptyBounds returns a box that contains nothing. Its corners are inverted
// infinities, so a union with any other box yields that box unchanged.
func EmptyBounds() Bounds3 {
	inf := math.Inf(1)
	return Bounds3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewBounds3 creates a box spanning two points given in any order
func NewBounds3(p1, p2 Vec3) Bounds3 {
	return Bounds3{Min: p1.Min(p2), Max: p1.Max(p2)}
}

// NewBoundsFromPoints creates a box that bounds all given points
func NewBoundsFromPoints(points ...Vec3) Bounds3 {
	b := EmptyBounds()
	for _, p := range points {
		b = UnionPoint(b, p)
	}
	return b
}

// Union returns the smallest box containing both boxes
func Union(a, b Bounds3) Bounds3 {
	return Bounds3{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// UnionPoint returns the smallest box containing the box and the point
func UnionPoint(b Bounds3, p Vec3) Bounds3 {
	return Bounds3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// IsEmpty reports whether Min exceeds Max on any axis
func (b Bounds3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Diagonal returns the vector from Min to Max
func (b Bounds3) Diagonal() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Centroid returns the midpoint of the box
func (b Bounds3) Centroid() Vec3 {
	return b.Min.Multiply(0.5).Add(b.Max.Multiply(0.5))
}

// MaxExtent returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
// Ties resolve to the lower axis.
func (b Bounds3) MaxExtent() int {
	d := b.Diagonal()
	if d.X >= d.Y && d.X >= d.Z {
		return 0
	}
	if d.Y >= d.Z {
		return 1
	}
	return 2
}

// SurfaceArea returns the surface area of the box, zero when empty
func (b Bounds3) SurfaceArea() float64 {
	if b.IsEmpty() {
		return 0
	}
	d := b.Diagonal()
	return 2.0 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Contains reports whether other lies entirely inside b
func (b Bounds3) Contains(other Bounds3) bool {
	return other.Min.X >= b.Min.X && other.Min.Y >= b.Min.Y && other.Min.Z >= b.Min.Z &&
		other.Max.X <= b.Max.X && other.Max.Y <= b.Max.Y && other.Max.Z <= b.Max.Z
}

// IntersectP tests the ray against the box using the slab method.
//
// invDir is the reciprocal of the ray direction and dirIsNeg flags the axes
// on which it is negative; both come from Ray.InvDirection. On a negative
// axis the Max plane is entered first, so the per-axis distances swap.
// A 0*Inf product (ray lying in a slab plane) yields NaN, which the strict
// comparisons below skip, leaving that slab unconstrained.
func (b Bounds3) IntersectP(ray Ray, invDir Vec3, dirIsNeg [3]bool) bool {
	tEnter := math.Inf(-1)
	tExit := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		inv := invDir.Axis(axis)

		tMin := (b.Min.Axis(axis) - origin) * inv
		tMax := (b.Max.Axis(axis) - origin) * inv
		if dirIsNeg[axis] {
			tMin, tMax = tMax, tMin
		}

		if tMin > tEnter {
			tEnter = tMin
		}
		if tMax < tExit {
			tExit = tMax
		}
	}

	return tEnter <= tExit && tExit >= 0
}
