package cmd

import (
	"github.com/urfave/cli"
)

// Create the command line application.
func NewApp() *cli.App {
	// Free up -v for the verbosity flag.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render the reference scene using recursive ray tracing"
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
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame of the reference scene and write it as a PNG image.
When --rotate is set, the scene is rotated by --steps 18 degree steps about
the Y axis before rendering.`,
					Flags:  RenderFlags,
					Action: RenderFrame,
				},
				{
					Name:  "turntable",
					Usage: "render a sequence of frames rotating the scene between frames",
					Description: `
Render --frames images. The first frame shows the unrotated scene; each
following frame rotates the scene by one more 18 degree step. Frames are
written as <out>-000.png, <out>-001.png, ...`,
					Flags: append([]cli.Flag{
						cli.IntFlag{
							Name:  "frames",
							Value: 20,
							Usage: "number of frames to render",
						},
					}, RenderFlags...),
					Action: RenderTurntable,
				},
			},
		},
		{
			Name:  "scene",
			Usage: "inspect the scene",
			Subcommands: []cli.Command{
				{
					Name:   "info",
					Usage:  "display the scene primitives",
					Flags:  SceneFlags,
					Action: ShowSceneInfo,
				},
			},
		},
	}

	return app
}
