package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Normal vector (U × V, normalized)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: ax + by + cz = d
	W        core.Vec3     // Cached vector for barycentric coordinates
	area     float64
}

// NewQuad creates a new quad from a corner point and two edge vectors.
// The geometric normal follows the right-hand rule on U then V.
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		// w = n / (n · (u × v))
		W:    normal.Multiply(1.0 / normal.Dot(cross)),
		area: cross.Length(),
	}
}

// Intersect tests if a ray intersects with the quad
func (q *Quad) Intersect(ray core.Ray) core.Intersection {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the quad plane
	if math.Abs(denominator) < 1e-8 {
		return core.NoIntersection()
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t <= 0 {
		return core.NoIntersection()
	}

	// Check if hit point is within the quad bounds using barycentric coordinates
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.NoIntersection()
	}

	return hit(q, q.Material, ray, t, q.Normal)
}

// Bounds returns the bounding box of the four corners
func (q *Quad) Bounds() core.Bounds3 {
	return core.NewBoundsFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}

// HasEmit reports whether the quad's material emits light
func (q *Quad) HasEmit() bool {
	return hasEmission(q.Material)
}

// Area returns |U × V|
func (q *Quad) Area() float64 {
	return q.area
}

// Sample picks a uniform point on the quad
func (q *Quad) Sample(sampler core.Sampler) (core.Intersection, float64) {
	s := sampler.Get2D()
	point := q.Corner.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y))
	return surfacePoint(q, q.Material, point, q.Normal), 1.0 / q.area
}
