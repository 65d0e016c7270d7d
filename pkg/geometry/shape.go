// Package geometry provides the reference primitives of the path tracer.
//
// Every primitive implements core.Object. Intersect reports the nearest hit
// with a strictly positive ray parameter and a normal flipped to face the ray
// origin. Sample draws a point uniformly by area and reports the geometric
// (unflipped) normal together with the material's emission.
package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	_ core.Object = (*Sphere)(nil)
	_ core.Object = (*Triangle)(nil)
	_ core.Object = (*Quad)(nil)
	_ core.Object = (*Mesh)(nil)
	_ core.Object = (*Box)(nil)
)

// faceForward flips the outward normal so that it opposes the ray direction
func faceForward(ray core.Ray, outwardNormal core.Vec3) core.Vec3 {
	if ray.Direction.Dot(outwardNormal) > 0 {
		return outwardNormal.Negate()
	}
	return outwardNormal
}

// emission returns the radiance emitted by material, zero when it is nil or
// does not emit
func emission(material core.Material) core.Vec3 {
	if material == nil || !material.HasEmission() {
		return core.Vec3{}
	}
	return material.Emission()
}

func hasEmission(material core.Material) bool {
	return material != nil && material.HasEmission()
}

// hit assembles the intersection record shared by every primitive
func hit(obj core.Object, material core.Material, ray core.Ray, t float64, outwardNormal core.Vec3) core.Intersection {
	return core.Intersection{
		Happened: true,
		Distance: t,
		Coords:   ray.At(t),
		Normal:   faceForward(ray, outwardNormal),
		Emit:     emission(material),
		Object:   obj,
		Material: material,
	}
}

// surfacePoint assembles the record returned by Sample
func surfacePoint(obj core.Object, material core.Material, point, normal core.Vec3) core.Intersection {
	return core.Intersection{
		Happened: true,
		Coords:   point,
		Normal:   normal,
		Emit:     emission(material),
		Object:   obj,
		Material: material,
	}
}
