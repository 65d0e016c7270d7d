package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	// Weights sum to one, so the three primaries plus black average to 1/4
	avgLum := CalculateAverageLuminance(img)
	if math.Abs(avgLum-0.25) > 1e-4 {
		t.Errorf("Expected average luminance 0.25, got %f", avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	if avgLum := CalculateAverageLuminance(img); math.Abs(avgLum-1) > 1e-4 {
		t.Errorf("Expected average luminance 1, got %f", avgLum)
	}
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Errorf("Expected black for a pixel without samples")
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); got.Subtract(core.NewVec3(0.5, 0.5, 0.5)).Length() > 1e-12 {
		t.Errorf("Expected mean (0.5, 0.5, 0.5), got %v", got)
	}
	if ps.Variance() <= 0 {
		t.Errorf("Expected positive variance, got %f", ps.Variance())
	}
}

func TestRenderStats_Merge(t *testing.T) {
	var total RenderStats
	total.merge(RenderStats{TotalPixels: 4, TotalSamples: 16, MinSamples: 4, MaxSamplesUsed: 4})
	total.merge(RenderStats{TotalPixels: 2, TotalSamples: 4, MinSamples: 2, MaxSamplesUsed: 2})

	if total.TotalPixels != 6 || total.TotalSamples != 20 || total.Tiles != 2 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if total.MinSamples != 2 || total.MaxSamplesUsed != 4 {
		t.Errorf("Unexpected min/max %+v", total)
	}
	if math.Abs(total.AverageSamples-20.0/6.0) > 1e-12 {
		t.Errorf("Unexpected average %f", total.AverageSamples)
	}
}
