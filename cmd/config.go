package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/config"
)

// loadConfig reads the --config file, if any, and applies explicitly set
// flags on top of it
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
		logger.Infof("loaded config from %s", path)
	}

	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.Render.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("seed") {
		cfg.Render.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("tile-size") {
		cfg.Render.TileSize = ctx.Int("tile-size")
	}
	if ctx.IsSet("gamma") {
		cfg.Render.Gamma = ctx.Float64("gamma")
	}
	if ctx.IsSet("fov") {
		cfg.Render.VFov = ctx.Float64("fov")
	}
	if ctx.IsSet("rr") {
		cfg.Integrator.RussianRoulette = ctx.Float64("rr")
	}
	if ctx.IsSet("max-depth") {
		cfg.Integrator.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("split") {
		cfg.BVH.Split = ctx.String("split")
	}
	if ctx.IsSet("out") {
		cfg.Output.Path = ctx.String("out")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
