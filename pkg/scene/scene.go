// Package scene holds the objects of a render together with their BVH and
// the emitter set used for next-event estimation.
package scene

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/bvh"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Options controls scene construction
type Options struct {
	BVH bvh.Options
}

// View is the camera placement a scene recommends
type View struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	VFov   float64   // Vertical field of view in degrees
}

// Scene contains all the elements needed for rendering.
// It is read-only once built and safe for concurrent use.
type Scene struct {
	View View

	objects    []core.Object
	tree       *bvh.Tree
	lights     []core.Object // Emissive objects in input order
	cumulative []float64     // Running sum of light areas
	emitArea   float64
}

// New builds the BVH over objects and caches the emitters and their areas
func New(objects []core.Object, opts Options) *Scene {
	logger := log.New("scene")

	s := &Scene{
		objects: objects,
		tree:    bvh.Build(objects, opts.BVH),
	}

	for _, obj := range objects {
		if !obj.HasEmit() {
			continue
		}
		s.emitArea += obj.Area()
		s.lights = append(s.lights, obj)
		s.cumulative = append(s.cumulative, s.emitArea)
	}

	bounds := s.tree.Bounds()
	if !bounds.IsEmpty() {
		center := bounds.Centroid()
		s.View = View{
			Center: center.Add(core.NewVec3(0, 0, -2*bounds.Diagonal().Length())),
			LookAt: center,
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40,
		}
	}

	logger.Debugf("scene: %d objects, %d lights, emit area %.3f", len(objects), len(s.lights), s.emitArea)
	if len(objects) > 0 && len(s.lights) == 0 {
		logger.Warning("scene has no emissive objects; direct lighting is disabled")
	}
	return s
}

// Intersect returns the nearest intersection of the ray with the scene
func (s *Scene) Intersect(ray core.Ray) core.Intersection {
	return s.tree.Intersect(ray)
}

// SampleLight picks a point on the emitters, choosing each emitter with
// probability proportional to its area. The returned pdf is with respect to
// surface area over the whole emitter set. With several emitters this is
// objectPdf·area/EmitArea() rather than the chosen object's own pdf.
// With no emitters it returns core.NoIntersection() and a zero pdf.
func (s *Scene) SampleLight(sampler core.Sampler) (core.Intersection, float64) {
	if len(s.lights) == 0 || s.emitArea <= 0 {
		return core.NoIntersection(), 0
	}

	p := sampler.Get1D() * s.emitArea
	k := sort.SearchFloat64s(s.cumulative, p)
	if k >= len(s.lights) {
		k = len(s.lights) - 1
	}

	light := s.lights[k]
	isect, pdf := light.Sample(sampler)
	return isect, pdf * light.Area() / s.emitArea
}

// EmitArea returns the total surface area of all emitters
func (s *Scene) EmitArea() float64 {
	return s.emitArea
}

// HasLights reports whether the scene contains any emitter
func (s *Scene) HasLights() bool {
	return len(s.lights) > 0
}

// Lights returns the emissive objects in input order
func (s *Scene) Lights() []core.Object {
	return s.lights
}

// Objects returns all objects in input order
func (s *Scene) Objects() []core.Object {
	return s.objects
}

// Tree returns the scene BVH
func (s *Scene) Tree() *bvh.Tree {
	return s.tree
}

// Bounds returns the bounds of all objects
func (s *Scene) Bounds() core.Bounds3 {
	return s.tree.Bounds()
}

// PrimitiveCount returns the number of primitives, counting each triangle of
// a mesh separately
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, obj := range s.objects {
		if mesh, ok := obj.(interface{ TriangleCount() int }); ok {
			count += mesh.TriangleCount()
		} else {
			count++
		}
	}
	return count
}
