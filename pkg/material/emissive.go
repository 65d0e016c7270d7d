package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material.
// Emissive surfaces do not reflect: Eval is zero and PDF is zero, so the
// integrator never continues a path through them.
type Emissive struct {
	Radiance core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Radiance: emission}
}

// HasEmission reports whether any channel emits
func (e *Emissive) HasEmission() bool {
	return !e.Radiance.IsZero()
}

// Emission returns the emitted radiance
func (e *Emissive) Emission() core.Vec3 {
	return e.Radiance
}

// Eval returns zero; lights don't reflect
func (e *Emissive) Eval(wi, wo, n core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Sample returns the normal; the direction carries no weight since PDF is zero
func (e *Emissive) Sample(wo, n core.Vec3, sampler core.Sampler) core.Vec3 {
	return n
}

// PDF is always zero for a non-scattering material
func (e *Emissive) PDF(wi, wo, n core.Vec3) float64 {
	return 0
}
