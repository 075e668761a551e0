package cmd

import (
	"fmt"
	"io"

	"github.com/df07/go-interactive-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the scene catalog.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	writeSceneTable(ctx.App.Writer, scene.Catalog())
	return nil
}

func writeSceneTable(w io.Writer, infos []scene.Info) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range infos {
		table.Append([]string{fmt.Sprintf("%d", info.ID), info.Name, info.Description})
	}
	table.Render()
}
