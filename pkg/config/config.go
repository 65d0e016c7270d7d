// Package config loads render settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/bvh"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	// ErrInvalidConfig is wrapped by every Validate failure
	ErrInvalidConfig = errors.New("config: invalid config")
	// ErrUnknownFormat is returned by Load for unrecognized file extensions
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Config holds every tunable of a render
type Config struct {
	Render     Render     `toml:"render" yaml:"render"`
	Integrator Integrator `toml:"integrator" yaml:"integrator"`
	BVH        BVH        `toml:"bvh" yaml:"bvh"`
	Output     Output     `toml:"output" yaml:"output"`
}

// Render controls the image and the worker pool
type Render struct {
	Width           int     `toml:"width" yaml:"width"`
	Height          int     `toml:"height" yaml:"height"`
	SamplesPerPixel int     `toml:"spp" yaml:"spp"`
	TileSize        int     `toml:"tile_size" yaml:"tile_size"`
	Workers         int     `toml:"workers" yaml:"workers"` // 0 = CPU count
	Seed            int64   `toml:"seed" yaml:"seed"`
	Gamma           float64 `toml:"gamma" yaml:"gamma"`
	VFov            float64 `toml:"fov" yaml:"fov"` // 0 = scene default
}

// Integrator mirrors integrator.Config
type Integrator struct {
	RussianRoulette float64 `toml:"russian_roulette" yaml:"russian_roulette"`
	ShadowEpsilon   float64 `toml:"shadow_epsilon" yaml:"shadow_epsilon"`
	RayOffset       float64 `toml:"ray_offset" yaml:"ray_offset"`
	MaxDepth        int     `toml:"max_depth" yaml:"max_depth"`
}

// BVH selects the acceleration structure build options
type BVH struct {
	Split          string `toml:"split" yaml:"split"`
	MaxPrimsInNode int    `toml:"max_prims_in_node" yaml:"max_prims_in_node"`
}

// Output names the rendered image file
type Output struct {
	Path string `toml:"path" yaml:"path"`
}

// Default returns the settings used when no file or flag overrides them
func Default() Config {
	rc := renderer.DefaultConfig()
	ic := integrator.DefaultConfig()
	bo := bvh.DefaultOptions()

	return Config{
		Render: Render{
			Width:           400,
			Height:          400,
			SamplesPerPixel: rc.SamplesPerPixel,
			TileSize:        rc.TileSize,
			Workers:         rc.NumWorkers,
			Seed:            rc.Seed,
			Gamma:           rc.Gamma,
		},
		Integrator: Integrator{
			RussianRoulette: ic.RussianRoulette,
			ShadowEpsilon:   ic.ShadowEpsilon,
			RayOffset:       ic.RayOffset,
			MaxDepth:        ic.MaxDepth,
		},
		BVH: BVH{
			Split:          bo.SplitMethod.String(),
			MaxPrimsInNode: bo.MaxPrimsInNode,
		},
		Output: Output{Path: "render.png"},
	}
}

// Load reads path on top of Default. The decoder is picked from the file
// extension: .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a config in the format named by ext on top of Default
func Decode(r io.Reader, ext string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document keeps the defaults
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return cfg, nil
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	r := c.Render
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, r.Width, r.Height)
	case r.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, r.SamplesPerPixel)
	case r.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, r.TileSize)
	case r.Workers < 0:
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, r.Workers)
	case r.VFov < 0 || r.VFov >= 180:
		return fmt.Errorf("%w: field of view %v not in [0, 180)", ErrInvalidConfig, r.VFov)
	}

	if err := c.IntegratorConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.BVHOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !renderer.SupportedFormat(filepath.Ext(c.Output.Path)) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, renderer.ErrUnsupportedFormat, c.Output.Path)
	}
	return nil
}

// RendererConfig returns the renderer settings
func (c Config) RendererConfig() renderer.Config {
	return renderer.Config{
		SamplesPerPixel: c.Render.SamplesPerPixel,
		TileSize:        c.Render.TileSize,
		NumWorkers:      c.Render.Workers,
		Seed:            c.Render.Seed,
		Gamma:           c.Render.Gamma,
	}
}

// IntegratorConfig returns the path tracer settings
func (c Config) IntegratorConfig() integrator.Config {
	return integrator.Config{
		RussianRoulette: c.Integrator.RussianRoulette,
		ShadowEpsilon:   c.Integrator.ShadowEpsilon,
		RayOffset:       c.Integrator.RayOffset,
		MaxDepth:        c.Integrator.MaxDepth,
	}
}

// BVHOptions returns the BVH build options
func (c Config) BVHOptions() (bvh.Options, error) {
	split, err := bvh.ParseSplitMethod(c.BVH.Split)
	if err != nil {
		return bvh.Options{}, err
	}
	return bvh.Options{MaxPrimsInNode: c.BVH.MaxPrimsInNode, SplitMethod: split}, nil
}
