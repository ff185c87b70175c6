package cmd

import (
	"github.com/achilleasa/whitted/config"
	"github.com/urfave/cli"
)

var defaults = config.Default()

// Flags shared by all commands that build and render the scene.
var SceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "load settings from a TOML file; explicitly set flags override it",
	},
	cli.StringFlag{
		Name:  "triangle-normal",
		Value: defaults.TriangleNormal,
		Usage: "triangle shading normal: vertex (a×b) or edge ((b-a)×(c-a))",
	},
}

// Flags for commands that render frames.
var RenderFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: defaults.Width,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: defaults.Height,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "block-height",
		Value: defaults.BlockHeight,
		Usage: "max rows traced as a single batch (0 traces the whole frame at once)",
	},
	cli.IntFlag{
		Name:  "supersample",
		Value: defaults.Supersample,
		Usage: "render at N times the frame resolution and downscale",
	},
	cli.StringFlag{
		Name:  "rotate",
		Usage: "rotate the scene about the Y axis before rendering (cw or ccw)",
	},
	cli.IntFlag{
		Name:  "steps",
		Value: defaults.Steps,
		Usage: "number of 18 degree rotate steps",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: defaults.Out,
		Usage: "image filename for the rendered frame",
	},
}, SceneFlags...)

// Build the configuration from the optional config file and any explicitly
// set command line flags.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("block-height") {
		cfg.BlockHeight = ctx.Int("block-height")
	}
	if ctx.IsSet("supersample") {
		cfg.Supersample = ctx.Int("supersample")
	}
	if ctx.IsSet("rotate") {
		cfg.Rotate = ctx.String("rotate")
	}
	if ctx.IsSet("steps") {
		cfg.Steps = ctx.Int("steps")
	}
	if ctx.IsSet("out") {
		cfg.Out = ctx.String("out")
	}
	if ctx.IsSet("triangle-normal") {
		cfg.TriangleNormal = ctx.String("triangle-normal")
	}

	return cfg, cfg.Validate()
}
