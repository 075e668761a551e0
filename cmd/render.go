package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"golang.org/x/image/draw"
)

// RenderFrame renders one or more full frames of a catalog scene and writes a PNG.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	rt, err := newRaytracer(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	frames := ctx.Int("frames")
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}

	start := time.Now()
	if eye := ctx.String("eye"); eye != "" {
		pos, err := parseVec3(eye)
		if err != nil {
			return fmt.Errorf("invalid eye: %w", err)
		}
		rt.RenderFrameFrom(pos)
		frames--
	}
	for i := 0; i < frames; i++ {
		rt.RenderFrame()
	}
	logger.Noticef("rendered scene %d (%s) in %s", rt.Scene().ID, rt.Scene().Name, time.Since(start))

	displayFrameStats(rt.FrameBuffer(), time.Since(start))
	return writeImage(rt.FrameBuffer(), ctx.String("out"), ctx.Int("scale"))
}

// RenderRegion accumulates repeated region samples around a normalized point and writes a PNG.
func RenderRegion(ctx *cli.Context) error {
	setupLogging(ctx)

	rt, err := newRaytracer(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	u, v, radius := ctx.Float64("u"), ctx.Float64("v"), ctx.Float64("radius")
	count := ctx.Int("count")

	start := time.Now()
	drawn := 0
	for i := 0; i < count; i++ {
		drawn += rt.AccumulateRegion(u, v, radius)
	}
	logger.Noticef("drew %d region samples around (%.3f, %.3f) in %s", drawn, u, v, time.Since(start))

	displayFrameStats(rt.FrameBuffer(), time.Since(start))
	return writeImage(rt.FrameBuffer(), ctx.String("out"), ctx.Int("scale"))
}

// Pick reports whether the ray through a normalized point hits the scene's special object.
func Pick(ctx *cli.Context) error {
	setupLogging(ctx)

	rt, err := newRaytracer(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	u, v := ctx.Float64("u"), ctx.Float64("v")
	special := rt.Pick(u, v)
	fmt.Fprintf(ctx.App.Writer, "%t\n", special)
	logger.Infof("pick (%.3f, %.3f) on scene %d: %t", u, v, rt.Scene().ID, special)
	return nil
}

// writeImage encodes the frame as PNG, upscaled by an integer factor with nearest neighbour filtering.
func writeImage(fb *renderer.FrameBuffer, filename string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}

	var img image.Image = fb.Image()
	if scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, fb.Width()*scale, fb.Height()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	logger.Noticef("wrote %s (%dx%d)", filename, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func formatFrameStats(stats renderer.RenderStats, luminance float64, elapsed time.Duration) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Sampled", "Samples", "Avg/pixel", "Min", "Max", "Luminance"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.SampledPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.2f", stats.AverageSamples),
		fmt.Sprintf("%d", stats.MinSamples),
		fmt.Sprintf("%d", stats.MaxSamplesUsed),
		fmt.Sprintf("%.4f", luminance),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", elapsed.String()})
	table.Render()
	return buf.String()
}

func displayFrameStats(fb *renderer.FrameBuffer, elapsed time.Duration) {
	luminance := renderer.CalculateAverageLuminance(fb.Image())
	logger.Noticef("frame statistics\n%s", formatFrameStats(fb.Stats(), luminance, elapsed))
}
