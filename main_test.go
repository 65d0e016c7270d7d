package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/bvh"
	"github.com/df07/go-pathtracer/pkg/config"
)

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	args := []string{"go-pathtracer", "render",
		"--width", "8", "--height", "6", "--spp", "1", "--workers", "2", "--out", out}
	require.NoError(t, newApp().Run(args))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestRenderCommand_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "render.toml")
	out := filepath.Join(dir, "frame.bmp")
	contents := "[render]\nwidth = 4\nheight = 4\nspp = 1\n[output]\npath = \"" + filepath.ToSlash(out) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o644))

	args := []string{"go-pathtracer", "render", "--config", cfgPath, "--split", "sah"}
	require.NoError(t, newApp().Run(args))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRenderCommand_InvalidFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	err := newApp().Run([]string{"go-pathtracer", "render", "--rr", "0", "--out", out})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	err = newApp().Run([]string{"go-pathtracer", "render", "--split", "octree", "--out", out})
	assert.ErrorIs(t, err, bvh.ErrUnknownSplitMethod)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBVHCommand(t *testing.T) {
	for _, split := range []string{"naive", "sah"} {
		assert.NoError(t, newApp().Run([]string{"go-pathtracer", "bvh", "--split", split}))
	}
	assert.ErrorIs(t, newApp().Run([]string{"go-pathtracer", "bvh", "--split", "octree"}), bvh.ErrUnknownSplitMethod)
}
