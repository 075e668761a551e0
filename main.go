package main

import (
	"os"

	"github.com/df07/go-interactive-raytracer/cmd"
)

func main() {
	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
