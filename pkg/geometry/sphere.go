package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) core.Intersection {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.NoIntersection()
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		// Origin inside the sphere, use the far root
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return core.NoIntersection()
		}
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)
	return hit(s, s.Material, ray, root, outwardNormal)
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() core.Bounds3 {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewBounds3(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// HasEmit reports whether the sphere's material emits light
func (s *Sphere) HasEmit() bool {
	return hasEmission(s.Material)
}

// Area returns the surface area 4πr²
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Sample picks a uniform point on the sphere surface
func (s *Sphere) Sample(sampler core.Sampler) (core.Intersection, float64) {
	normal := core.SampleOnUnitSphere(sampler.Get2D())
	point := s.Center.Add(normal.Multiply(s.Radius))
	return surfacePoint(s, s.Material, point, normal), 1.0 / s.Area()
}
