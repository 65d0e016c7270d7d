// Package integrator contains the light transport algorithms of the renderer.
package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("integrator: invalid config")

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// CastRay returns the radiance arriving along the ray. depth is 0 for
	// camera rays and grows by one per bounce.
	CastRay(ray core.Ray, depth int, sampler core.Sampler) core.Vec3
}

// Scene is what an integrator needs from the world: nearest-hit queries and
// area sampling of the emitters
type Scene interface {
	Intersect(ray core.Ray) core.Intersection
	SampleLight(sampler core.Sampler) (core.Intersection, float64)
}

// Config holds the tunable parameters of the path tracer
type Config struct {
	// RussianRoulette is the survival probability per bounce, in (0, 1]
	RussianRoulette float64
	// ShadowEpsilon is the tolerance when comparing the shadow ray hit
	// distance with the distance to the sampled light point
	ShadowEpsilon float64
	// RayOffset moves continuation ray origins off the surface along the normal
	RayOffset float64
	// MaxDepth is a hard ceiling on the number of bounces; 0 disables it and
	// leaves Russian roulette as the only termination
	MaxDepth int
}

// DefaultConfig returns the standard path tracer settings
func DefaultConfig() Config {
	return Config{
		RussianRoulette: 0.8,
		ShadowEpsilon:   1e-4,
		RayOffset:       1e-4,
		MaxDepth:        64,
	}
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	switch {
	case !(c.RussianRoulette > 0 && c.RussianRoulette <= 1):
		return fmt.Errorf("%w: russian roulette probability %v not in (0, 1]", ErrInvalidConfig, c.RussianRoulette)
	case c.ShadowEpsilon < 0:
		return fmt.Errorf("%w: negative shadow epsilon %v", ErrInvalidConfig, c.ShadowEpsilon)
	case c.RayOffset < 0:
		return fmt.Errorf("%w: negative ray offset %v", ErrInvalidConfig, c.RayOffset)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}
