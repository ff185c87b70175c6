package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceFilename(t *testing.T) {
	specs := []struct {
		out   string
		index int
		exp   string
	}{
		{"frame.png", 3, "frame-003.png"},
		{"out/frame.png", 12, "out/frame-012.png"},
		{"frame", 0, "frame-000.png"},
		{"renders.d/frame", 1, "renders.d/frame-001.png"},
	}

	for index, spec := range specs {
		if got := sequenceFilename(spec.out, spec.index); got != spec.exp {
			t.Fatalf("[spec %d] expected %q; got %q", index, spec.exp, got)
		}
	}
}

func TestRenderFrameCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	args := []string{"whitted", "render", "frame",
		"--width", "32", "--height", "24", "--block-height", "5",
		"--rotate", "ccw", "--steps", "2", "--out", out,
	}
	require.NoError(t, NewApp().Run(args))

	img, err := imgio.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestRenderTurntableCommand(t *testing.T) {
	dir := t.TempDir()
	args := []string{"whitted", "render", "turntable",
		"--frames", "3", "--width", "16", "--height", "16",
		"--out", filepath.Join(dir, "spin.png"),
	}
	require.NoError(t, NewApp().Run(args))

	for i := 0; i < 3; i++ {
		_, err := os.Stat(filepath.Join(dir, fmt.Sprintf("spin-%03d.png", i)))
		assert.NoError(t, err)
	}
	_, err := os.Stat(filepath.Join(dir, "spin-003.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderCommandErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	specs := [][]string{
		{"whitted", "render", "frame", "--width", "0", "--out", out},
		{"whitted", "render", "frame", "--rotate", "sideways", "--out", out},
		{"whitted", "render", "frame", "--triangle-normal", "face", "--out", out},
		{"whitted", "render", "frame", "--config", filepath.Join(t.TempDir(), "missing.toml"), "--out", out},
		{"whitted", "render", "turntable", "--frames", "0", "--width", "8", "--height", "8", "--out", out},
	}

	for index, args := range specs {
		if err := NewApp().Run(args); err == nil {
			t.Fatalf("[spec %d] expected an error running %v", index, args)
		}
	}
}

func TestConfigFileWithFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "render.toml")
	out := filepath.Join(dir, "frame.png")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width = 20\nheight = 10\nlog-level = \"error\"\n"), 0o644))

	args := []string{"whitted", "render", "frame", "--config", cfgPath, "--height", "12", "--out", out}
	require.NoError(t, NewApp().Run(args))

	img, err := imgio.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())
}

func TestShowSceneInfoCommand(t *testing.T) {
	require.NoError(t, NewApp().Run([]string{"whitted", "scene", "info", "--triangle-normal", "edge"}))
}

func TestGlobalFlags(t *testing.T) {
	specs := [][]string{
		{"whitted", "-v", "scene", "info"},
		{"whitted", "-vv", "scene", "info"},
		{"whitted", "--version"},
	}

	for index, args := range specs {
		if err := NewApp().Run(args); err != nil {
			t.Fatalf("[spec %d] running %v: %v", index, args, err)
		}
	}
}
