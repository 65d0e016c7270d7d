package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render the Cornell box with a BVH accelerated path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render the scene to an image file",
			Description: `
Render the Cornell box with a path tracer using next event estimation and
Russian roulette. Settings are read from an optional TOML or YAML file and
flags override individual values. The output format (png, bmp, tif/tiff) is
chosen from the file extension.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "TOML or YAML settings file",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "samples per pixel",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base random seed",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = CPU count)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "tile edge in pixels",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees (0 = scene default)",
				},
				cli.StringFlag{
					Name:  "split",
					Value: "naive",
					Usage: "BVH split method (naive, sah)",
				},
				cli.Float64Flag{
					Name:  "rr",
					Value: 0.8,
					Usage: "Russian roulette survival probability",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 64,
					Usage: "bounce ceiling (0 = roulette only)",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 2.2,
					Usage: "output gamma",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:  "bvh",
			Usage: "build the scene BVH and print its statistics",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "split",
					Value: "naive",
					Usage: "BVH split method (naive, sah)",
				},
			},
			Action: cmd.InspectBVH,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
