package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/log"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/urfave/cli"
)

// RenderFlags are shared by every command that builds a render context.
var RenderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "scene, s",
		Value: 0,
		Usage: "catalog scene id",
	},
	cli.IntFlag{
		Name:  "width",
		Value: renderer.DefaultConfig().Width,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: renderer.DefaultConfig().Height,
		Usage: "frame height",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 0,
		Usage: "sampler seed, 0 picks one from the clock",
	},
	cli.Float64Flag{
		Name:  "gamma",
		Value: renderer.DefaultConfig().Gamma,
		Usage: "display gamma",
	},
}

// OutputFlags control image export.
var OutputFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the rendered frame",
	},
	cli.IntFlag{
		Name:  "scale",
		Value: 1,
		Usage: "integer upscaling factor for the written image",
	},
}

func configFromContext(ctx *cli.Context) renderer.Config {
	config := renderer.DefaultConfig()
	config.StartScene = ctx.Int("scene")
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.Seed = ctx.Int64("seed")
	config.Gamma = ctx.Float64("gamma")
	return config
}

func newRaytracer(ctx *cli.Context) (*renderer.Raytracer, error) {
	return renderer.NewRaytracer(configFromContext(ctx), log.Printf("renderer"))
}

// parseVec3 reads a vector written as "x,y,z".
func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", value)
	}

	var coords [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		coords[i] = f
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}
