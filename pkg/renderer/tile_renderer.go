package renderer

import (
	"context"
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera          *Camera
	integrator      integrator.Integrator
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		integrator:      integratorInst,
		samplesPerPixel: max(1, samplesPerPixel),
	}
}

// RenderTileBounds renders pixels within bounds into the shared pixel stats.
// Cancellation is checked once per row.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) (RenderStats, error) {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MinSamples:  tr.samplesPerPixel,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			for s := 0; s < tr.samplesPerPixel; s++ {
				ray := tr.camera.GetRay(i, j, sampler)
				ps.AddSample(tr.integrator.CastRay(ray, 0, sampler))
			}
			stats.TotalSamples += tr.samplesPerPixel
			stats.MaxSamplesUsed = tr.samplesPerPixel
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats, nil
}
