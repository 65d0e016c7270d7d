package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	e1, e2     core.Vec3     // Cached edges V1-V0 and V2-V0
	normal     core.Vec3     // Cached normal vector
	area       float64
}

// NewTriangle creates a new triangle from three vertices.
// The geometric normal is (V1-V0) × (V2-V0), normalized.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	cross := e1.Cross(e2)

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		e1:       e1,
		e2:       e2,
		normal:   cross.Normalize(),
		area:     0.5 * cross.Length(),
	}
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) core.Intersection {
	const epsilon = 1e-8

	h := ray.Direction.Cross(t.e2)
	a := t.e1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return core.NoIntersection()
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.NoIntersection()
	}

	q := s.Cross(t.e1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.NoIntersection()
	}

	tHit := f * t.e2.Dot(q)
	if tHit <= 0 {
		return core.NoIntersection()
	}

	return hit(t, t.Material, ray, tHit, t.normal)
}

// Bounds returns the axis-aligned bounding box for this triangle
func (t *Triangle) Bounds() core.Bounds3 {
	return core.NewBoundsFromPoints(t.V0, t.V1, t.V2)
}

// HasEmit reports whether the triangle's material emits light
func (t *Triangle) HasEmit() bool {
	return hasEmission(t.Material)
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	return t.area
}

// Normal returns the triangle's geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Sample picks a uniform point on the triangle
func (t *Triangle) Sample(sampler core.Sampler) (core.Intersection, float64) {
	b1, b2 := core.SampleTriangle(sampler.Get2D())
	point := t.V0.Add(t.e1.Multiply(b1)).Add(t.e2.Multiply(b2))
	return surfacePoint(t, t.Material, point, t.normal), 1.0 / t.area
}
