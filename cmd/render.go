package cmd

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/achilleasa/whitted/config"
	"github.com/achilleasa/whitted/renderer"
	"github.com/achilleasa/whitted/scene"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	cfg, sc, r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	rot, err := rotation(cfg)
	if err != nil {
		return err
	}

	// All but the last rotate step are applied up front; Render applies
	// the final one.
	if rot != renderer.NoRotation {
		for step := 1; step < cfg.Steps; step++ {
			sc.Rotate(rot.Angle())
		}
		if cfg.Steps == 0 {
			rot = renderer.NoRotation
		}
	}

	frame, err := r.Render(rot)
	if err != nil {
		return err
	}

	displayFrameStats(r.Stats())
	return saveFrame(frame, cfg.Out)
}

// Render a sequence of frames rotating the scene by one step between frames.
func RenderTurntable(ctx *cli.Context) error {
	cfg, _, r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	rot, err := rotation(cfg)
	if err != nil {
		return err
	}
	if rot == renderer.NoRotation {
		rot = renderer.RotateCW
	}

	numFrames := ctx.Int("frames")
	if numFrames <= 0 {
		return fmt.Errorf("invalid frame count %d", numFrames)
	}

	for frameIndex := 0; frameIndex < numFrames; frameIndex++ {
		frameRot := rot
		if frameIndex == 0 {
			frameRot = renderer.NoRotation
		}

		frame, err := r.Render(frameRot)
		if err != nil {
			return err
		}

		err = saveFrame(frame, sequenceFilename(cfg.Out, frameIndex))
		if err != nil {
			return err
		}
	}

	displayFrameStats(r.Stats())
	return nil
}

func setupRenderer(ctx *cli.Context) (config.Config, *scene.Scene, renderer.Renderer, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cfg, nil, nil, err
	}

	if err = setupLogging(ctx, cfg.LogLevel); err != nil {
		return cfg, nil, nil, err
	}

	sc, err := cfg.Scene()
	if err != nil {
		return cfg, nil, nil, err
	}

	opts := renderer.Options{
		FrameW:      cfg.Width,
		FrameH:      cfg.Height,
		BlockH:      cfg.BlockHeight,
		Supersample: cfg.Supersample,
	}

	r, err := renderer.NewDefault(sc, nil, opts)
	if err != nil {
		return cfg, nil, nil, err
	}

	return cfg, sc, r, nil
}

func rotation(cfg config.Config) (renderer.Rotation, error) {
	cw, ccw, err := cfg.RotationFlags()
	if err != nil {
		return renderer.NoRotation, err
	}
	return renderer.RotationFromFlags(cw, ccw)
}

// Build the filename for a frame in a sequence: frame.png -> frame-003.png.
func sequenceFilename(out string, frameIndex int) string {
	ext := ".png"
	if idx := strings.LastIndex(out, "."); idx > strings.LastIndex(out, "/") {
		ext = out[idx:]
		out = out[:idx]
	}
	return fmt.Sprintf("%s-%03d%s", out, frameIndex, ext)
}

func saveFrame(frame image.Image, filename string) error {
	err := imgio.Save(filename, frame, imgio.PNGEncoder())
	if err != nil {
		return fmt.Errorf("could not write frame to %s: %w", filename, err)
	}

	logger.Noticef("wrote frame to %s", filename)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block rows", "% of frame", "Rays", "Render time"})
	for _, stat := range stats.Blocks {
		table.Append([]string{
			stats.Tracer,
			fmt.Sprintf("%d-%d", stat.BlockY, stat.BlockY+stat.BlockH-1),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Rays),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", stats.TotalRays()), stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics (primary %d, reflection %d, shadow %d, max depth %d)\n%s",
		stats.PrimaryRays, stats.ReflectionRays, stats.ShadowRays, stats.MaxDepth, buf.String())
}
