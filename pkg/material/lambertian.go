package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// HasEmission reports false; diffuse surfaces only reflect
func (l *Lambertian) HasEmission() bool { return false }

// Emission returns zero radiance
func (l *Lambertian) Emission() core.Vec3 { return core.Vec3{} }

// Eval returns albedo/π for directions above the surface and zero otherwise
func (l *Lambertian) Eval(wi, wo, n core.Vec3) core.Vec3 {
	if wi.Dot(n) <= 0 {
		return core.Vec3{} // Below surface
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// Sample generates a cosine-weighted direction in the hemisphere around n
func (l *Lambertian) Sample(wo, n core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(n, sampler.Get2D()).Normalize()
}

// PDF returns cos(θ)/π, the density of Sample, or zero below the surface
func (l *Lambertian) PDF(wi, wo, n core.Vec3) float64 {
	cosTheta := wi.Dot(n)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}
