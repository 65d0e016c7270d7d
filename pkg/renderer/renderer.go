// Package renderer turns an integrator and a camera into an image by
// rendering tiles in parallel.
package renderer

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Config contains the parallel rendering settings
type Config struct {
	SamplesPerPixel int     // Number of camera rays per pixel
	TileSize        int     // Size of each square tile in pixels
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	Seed            int64   // Base seed; tile i uses Seed+i
	Gamma           float64 // Output gamma (values <= 0 disable correction)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 64,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
		Gamma:           2.2,
	}
}

// Renderer renders full images with a worker pool
type Renderer struct {
	camera     *Camera
	config     Config
	tiles      []*Tile
	workerPool *WorkerPool
	logger     log.Logger
}

// NewRenderer creates a renderer for the camera's image size
func NewRenderer(camera *Camera, integratorInst integrator.Integrator, config Config) *Renderer {
	tileRenderer := NewTileRenderer(camera, integratorInst, config.SamplesPerPixel)
	return &Renderer{
		camera:     camera,
		config:     config,
		tiles:      NewTileGrid(camera.Width(), camera.Height(), config.TileSize),
		workerPool: NewWorkerPool(tileRenderer, config.NumWorkers, config.Seed),
		logger:     log.New("renderer"),
	}
}

// Render renders every tile and assembles the final image. When ctx is
// cancelled the remaining tiles are skipped and ctx.Err() is returned.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := r.camera.Width(), r.camera.Height()

	// Shared pixel statistics array (global image coordinates)
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tasks := make([]TileTask, len(r.tiles))
	for i, tile := range r.tiles {
		tasks[i] = TileTask{Tile: tile, TaskID: i, PixelStats: pixelStats}
	}

	r.logger.Infof("rendering %dx%d, %d spp, %d tiles on %d workers",
		width, height, r.config.SamplesPerPixel, len(tasks), r.workerPool.NumWorkers())

	start := time.Now()
	results, err := r.workerPool.Run(ctx, tasks)
	if err != nil {
		r.logger.Warningf("render stopped: %v", err)
		return nil, RenderStats{}, err
	}

	stats := RenderStats{Workers: r.workerPool.NumWorkers()}
	for _, result := range results {
		stats.merge(result.Stats)
	}
	stats.Duration = time.Since(start)

	r.logger.Infof("render completed in %v (%.1f samples/pixel)", stats.Duration, stats.AverageSamples)
	return r.assembleImage(pixelStats), stats, nil
}

// assembleImage converts the accumulated pixel statistics to an image
func (r *Renderer) assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.camera.Width(), r.camera.Height()))
	for y := range pixelStats {
		for x := range pixelStats[y] {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor(), r.config.Gamma))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	if gamma > 0 {
		colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(gamma)
	}
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
