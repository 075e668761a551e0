package cmd

import (
	"github.com/df07/go-interactive-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve exposes a render context over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := server.NewServer(ctx.String("addr"), configFromContext(ctx))
	if err != nil {
		logger.Error(err)
		return err
	}
	return s.Start()
}
