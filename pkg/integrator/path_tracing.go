package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PathTracer implements unidirectional path tracing with next-event
// estimation and Russian roulette termination
type PathTracer struct {
	scene  Scene
	config Config
}

// NewPathTracer creates a new path tracer over scene
func NewPathTracer(scene Scene, config Config) *PathTracer {
	return &PathTracer{
		scene:  scene,
		config: config,
	}
}

// Config returns the integrator settings
func (pt *PathTracer) Config() Config {
	return pt.config
}

// CastRay computes the radiance arriving along ray.
// Misses are black and hitting an emitter returns its emission; every other
// hit is shaded with one light sample plus one BRDF-sampled bounce.
func (pt *PathTracer) CastRay(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	isect := pt.scene.Intersect(ray)
	if !isect.Happened {
		return core.Vec3{}
	}
	if isEmissive(isect) {
		return isect.Emit
	}
	return pt.shade(ray, isect, depth, sampler)
}

// shade evaluates outgoing radiance at a non-emissive hit
func (pt *PathTracer) shade(ray core.Ray, isect core.Intersection, depth int, sampler core.Sampler) core.Vec3 {
	mat := isect.Material
	if mat == nil {
		return core.Vec3{}
	}

	p := isect.Coords
	n := isect.Normal
	wo := ray.Direction.Negate()

	direct := pt.directLight(p, n, wo, mat, sampler)

	// Hard ceiling first so that a survival probability of 1 still terminates
	if pt.config.MaxDepth > 0 && depth >= pt.config.MaxDepth {
		return direct
	}
	if sampler.Get1D() > pt.config.RussianRoulette {
		return direct
	}

	indirect := pt.indirectLight(p, n, wo, mat, depth, sampler)
	return direct.Add(indirect)
}

// directLight samples one point on the emitters and returns its unoccluded
// contribution
func (pt *PathTracer) directLight(p, n, wo core.Vec3, mat core.Material, sampler core.Sampler) core.Vec3 {
	light, lightPdf := pt.scene.SampleLight(sampler)
	if !light.Happened || lightPdf <= 0 {
		return core.Vec3{}
	}

	origin := pt.offset(p, n, light.Coords.Subtract(p))
	toLight := light.Coords.Subtract(origin)
	dist := toLight.Length()
	if dist <= 0 {
		return core.Vec3{}
	}
	ws := toLight.Multiply(1.0 / dist)

	// Anything closer than the light point by more than the epsilon occludes
	// it; a miss is infinitely far and therefore visible
	shadow := pt.scene.Intersect(core.Ray{Origin: origin, Direction: ws})
	if shadow.HitDistance() < dist-pt.config.ShadowEpsilon {
		return core.Vec3{}
	}

	cosSurface := math.Max(0, ws.Dot(n))
	cosLight := math.Max(0, ws.Negate().Dot(light.Normal))
	if cosSurface == 0 || cosLight == 0 {
		return core.Vec3{}
	}

	brdf := mat.Eval(ws, wo, n)
	return light.Emit.MultiplyVec(brdf).Multiply(cosSurface * cosLight / (dist * dist) / lightPdf)
}

// indirectLight follows one BRDF-sampled bounce. Emitters reached this way
// contribute nothing since direct lighting already accounts for them.
func (pt *PathTracer) indirectLight(p, n, wo core.Vec3, mat core.Material, depth int, sampler core.Sampler) core.Vec3 {
	wi := mat.Sample(wo, n, sampler).Normalize()
	pdf := mat.PDF(wi, wo, n)
	if !(pdf > 0) {
		return core.Vec3{}
	}
	cosine := wi.Dot(n)
	if cosine <= 0 {
		return core.Vec3{}
	}

	bounce := core.Ray{Origin: pt.offset(p, n, wi), Direction: wi}
	next := pt.scene.Intersect(bounce)
	if !next.Happened || isEmissive(next) {
		return core.Vec3{}
	}

	incoming := pt.shade(bounce, next, depth+1, sampler)
	brdf := mat.Eval(wi, wo, n)
	return incoming.MultiplyVec(brdf).Multiply(cosine / pdf / pt.config.RussianRoulette)
}

// offset moves p off the surface along n, on the side dir points to
func (pt *PathTracer) offset(p, n, dir core.Vec3) core.Vec3 {
	if dir.Dot(n) < 0 {
		return p.Subtract(n.Multiply(pt.config.RayOffset))
	}
	return p.Add(n.Multiply(pt.config.RayOffset))
}

func isEmissive(isect core.Intersection) bool {
	return isect.Material != nil && isect.Material.HasEmission()
}
