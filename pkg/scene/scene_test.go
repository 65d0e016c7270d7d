package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func emissiveQuad(corner core.Vec3, size float64) *geometry.Quad {
	return geometry.NewQuad(corner, core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), material.NewEmissive(core.NewVec3(1, 1, 1)))
}

func TestSampleLight_NoLights(t *testing.T) {
	white := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s := New([]core.Object{geometry.NewSphere(core.NewVec3(0, 0, 0), 1, white)}, Options{})

	assert.False(t, s.HasLights())
	assert.Equal(t, 0.0, s.EmitArea())

	isect, pdf := s.SampleLight(core.NewSeededSampler(1))
	assert.False(t, isect.Happened)
	assert.Equal(t, 0.0, pdf)
}

func TestSampleLight_EmptyScene(t *testing.T) {
	s := New(nil, Options{})

	isect, pdf := s.SampleLight(core.NewSeededSampler(1))
	assert.False(t, isect.Happened)
	assert.Equal(t, 0.0, pdf)

	hit := s.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	assert.False(t, hit.Happened)
}

func TestSampleLight_SingleEmitterRoundTrip(t *testing.T) {
	// 2x2 emitter at y=5, area 4
	light := emissiveQuad(core.NewVec3(-1, 5, -1), 2)
	white := material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	floor := geometry.NewQuad(core.NewVec3(-10, 0, -10), core.NewVec3(20, 0, 0), core.NewVec3(0, 0, 20), white)

	s := New([]core.Object{floor, light}, Options{})
	require.True(t, s.HasLights())
	require.Equal(t, 4.0, s.EmitArea())

	sampler := core.NewSeededSampler(42)
	for i := 0; i < 10000; i++ {
		isect, pdf := s.SampleLight(sampler)
		require.True(t, isect.Happened)
		require.Equal(t, 0.25, pdf)
		require.Equal(t, core.Object(light), isect.Object)

		// Shooting straight down onto the sampled point finds the emitter
		origin := isect.Coords.Add(core.NewVec3(0, 1, 0))
		hit := s.Intersect(core.NewRay(origin, core.NewVec3(0, -1, 0)))
		require.True(t, hit.Happened)
		assert.Equal(t, core.Object(light), hit.Object)
		assert.InDelta(t, 1.0, hit.Distance, 1e-9)
	}
}

func TestSampleLight_AreaProportionalSelection(t *testing.T) {
	// Areas 1 and 3
	small := emissiveQuad(core.NewVec3(0, 5, 0), 1)
	large := emissiveQuad(core.NewVec3(10, 5, 0), math.Sqrt(3))
	white := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	blocker := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, white)

	s := New([]core.Object{small, blocker, large}, Options{})
	require.Len(t, s.Lights(), 2)
	assert.InDelta(t, 4.0, s.EmitArea(), 1e-12)

	sampler := core.NewSeededSampler(7)
	counts := map[core.Object]int{}
	const n = 40000
	for i := 0; i < n; i++ {
		isect, pdf := s.SampleLight(sampler)
		require.True(t, isect.Happened)
		// Area-measure density over the whole emitter set
		assert.InDelta(t, 0.25, pdf, 1e-12)
		counts[isect.Object]++
	}

	// With several lights the pdf is not the chosen light's own 1/area
	_, smallPdf := small.Sample(sampler)
	_, largePdf := large.Sample(sampler)
	assert.InDelta(t, 1.0, smallPdf, 1e-12)
	assert.InDelta(t, 1.0/3, largePdf, 1e-12)

	assert.Zero(t, counts[blocker])
	assert.InDelta(t, 0.25, float64(counts[small])/n, 0.01)
	assert.InDelta(t, 0.75, float64(counts[large])/n, 0.01)
}

func TestNewCornellScene(t *testing.T) {
	s := NewCornellScene(Options{})

	assert.Len(t, s.Objects(), 8)
	assert.Equal(t, 8, s.Tree().Len())
	require.Len(t, s.Lights(), 1)
	assert.InDelta(t, 130.0*130.0, s.EmitArea(), 1e-9)

	// 5 quads, 1 light quad, 2 boxes
	assert.Equal(t, 8, s.PrimitiveCount())

	bounds := s.Bounds()
	assert.InDelta(t, 0.0, bounds.Min.X, 1e-9)
	assert.InDelta(t, 555.0, bounds.Max.X, 1e-9)
	assert.InDelta(t, 555.0, bounds.Max.Y, 1e-9)

	// Looking straight up from above the tall block hits the light
	isect := s.Intersect(core.NewRay(core.NewVec3(278, 400, 278), core.NewVec3(0, 1, 0)))
	require.True(t, isect.Happened)
	assert.True(t, isect.Object.HasEmit())
	assert.InDelta(t, 154.0, isect.Distance, 1e-9)

	// The light faces down into the box
	sample, _ := s.SampleLight(core.NewSeededSampler(1))
	assert.Less(t, sample.Normal.Y, 0.0)

	assert.Equal(t, core.NewVec3(278, 278, -800), s.View.Center)
}
