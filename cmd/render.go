package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Render the Cornell box to an image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	bvhOpts, err := cfg.BVHOptions()
	if err != nil {
		return err
	}
	sc := scene.NewCornellScene(scene.Options{BVH: bvhOpts})

	vfov := sc.View.VFov
	if cfg.Render.VFov > 0 {
		vfov = cfg.Render.VFov
	}
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center: sc.View.Center,
		LookAt: sc.View.LookAt,
		Up:     sc.View.Up,
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		VFov:   vfov,
	})

	pt := integrator.NewPathTracer(sc, cfg.IntegratorConfig())
	r := renderer.NewRenderer(camera, pt, cfg.RendererConfig())

	// Stop rendering on Ctrl-C
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := r.Render(renderCtx)
	if err != nil {
		return err
	}

	if err := renderer.SaveImage(cfg.Output.Path, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", cfg.Output.Path)

	displayRenderStats(stats, renderer.CalculateAverageLuminance(img))
	return nil
}

func displayRenderStats(stats renderer.RenderStats, luminance float64) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Samples/pixel", "Tiles", "Workers", "Avg luminance", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.4f", luminance),
		stats.Duration.String(),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
