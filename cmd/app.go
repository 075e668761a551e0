package cmd

import (
	"github.com/urfave/cli"
)

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, group := range groups {
		flags = append(flags, group...)
	}
	return flags
}

// NewApp builds the command tree.
func NewApp() *cli.App {
	// The default "version, v" flag collides with the global v flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-interactive-raytracer"
	app.Usage = "render the eend scenes with a recursive ray tracer"
	app.Version = "0.0.1"
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
			Usage: "render full frames",
			Description: `
Render one or more jittered full frames of a catalog scene and average them.
When --eye is set the camera moves there before the first frame.`,
			Flags: withFlags(RenderFlags, OutputFlags, []cli.Flag{
				cli.IntFlag{
					Name:  "frames, f",
					Value: 1,
					Usage: "number of frames to accumulate",
				},
				cli.StringFlag{
					Name:  "eye",
					Usage: "camera position as x,y,z",
				},
			}),
			Action: RenderFrame,
		},
		{
			Name:  "region",
			Usage: "refine a disc of pixels",
			Description: `
Accumulate region samples around a normalized image point. Pixels holding more
samples are traced with more bounces.`,
			Flags: withFlags(RenderFlags, OutputFlags, []cli.Flag{
				cli.Float64Flag{
					Name:  "u",
					Value: 0.5,
					Usage: "horizontal image coordinate in [0,1]",
				},
				cli.Float64Flag{
					Name:  "v",
					Value: 0.5,
					Usage: "vertical image coordinate in [0,1], 0 at the bottom",
				},
				cli.Float64Flag{
					Name:  "radius, r",
					Value: 3,
					Usage: "disc radius in pixels",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: "number of region calls",
				},
			}),
			Action: RenderRegion,
		},
		{
			Name:  "pick",
			Usage: "report whether a normalized image point shows the special object",
			Flags: withFlags(RenderFlags, []cli.Flag{
				cli.Float64Flag{
					Name:  "u",
					Value: 0.5,
					Usage: "horizontal image coordinate in [0,1]",
				},
				cli.Float64Flag{
					Name:  "v",
					Value: 0.5,
					Usage: "vertical image coordinate in [0,1], 0 at the bottom",
				},
			}),
			Action: Pick,
		},
		{
			Name:   "scenes",
			Usage:  "list catalog scenes",
			Action: ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the render context over HTTP",
			Flags: withFlags(RenderFlags, []cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Value: "localhost:8080",
					Usage: "listen address",
				},
			}),
			Action: Serve,
		},
	}
	return app
}
