package core

import "math"

// Object is a scene primitive that can be bounded, intersected and sampled
type Object interface {
	// Bounds returns the world-space bounding box of the object
	Bounds() Bounds3

	// Intersect returns the nearest hit of the ray with the object, or
	// NoIntersection when the ray misses
	Intersect(ray Ray) Intersection

	// HasEmit reports whether the object's material emits light
	HasEmit() bool

	// Area returns the total surface area of the object
	Area() float64

	// Sample picks a point uniformly on the surface. The returned record
	// carries the point, its outward normal and emission; the returned pdf is
	// with respect to surface area (1/Area for uniform sampling).
	Sample(sampler Sampler) (Intersection, float64)
}

// Material describes how a surface emits and reflects light.
//
// Directions follow one convention throughout: wi points from the surface
// toward the light or next path vertex, wo points from the surface toward
// the viewer. Both are unit vectors and n is the shading normal.
type Material interface {
	HasEmission() bool
	Emission() Vec3

	// Eval returns the BRDF value for the pair of directions
	Eval(wi, wo, n Vec3) Vec3

	// Sample draws an incident direction wi for the given outgoing direction
	Sample(wo, n Vec3, sampler Sampler) Vec3

	// PDF returns the solid-angle density with which Sample produces wi
	PDF(wi, wo, n Vec3) float64
}

// Intersection records the result of a ray query
type Intersection struct {
	Happened bool
	Distance float64 // ray parameter of the hit, +Inf when nothing was hit
	Coords   Vec3    // hit point
	Normal   Vec3    // unit surface normal
	Emit     Vec3    // emitted radiance when the surface is a light
	Object   Object
	Material Material
}

// NoIntersection returns the empty result: not happened, infinite distance
func NoIntersection() Intersection {
	return Intersection{Distance: math.Inf(1)}
}

// HitDistance returns the distance used to order hits. A record that did not
// happen is infinitely far regardless of its Distance field.
func (isect Intersection) HitDistance() float64 {
	if !isect.Happened {
		return math.Inf(1)
	}
	return isect.Distance
}
