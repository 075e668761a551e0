package renderer

import (
	"image"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// bytesPerPixel is the RGBA stride of the display buffer
const bytesPerPixel = 4

// FrameBuffer keeps a running color sum and sample count per pixel, plus the quantized RGBA
// display bytes derived from them. Row 0 is the bottom of the viewport.
type FrameBuffer struct {
	width   int
	height  int
	gamma   float64
	pixels  []PixelStats
	display []byte
}

// NewFrameBuffer creates an empty frame buffer
func NewFrameBuffer(width, height int, gamma float64) *FrameBuffer {
	return &FrameBuffer{
		width:   width,
		height:  height,
		gamma:   gamma,
		pixels:  make([]PixelStats, width*height),
		display: make([]byte, width*height*bytesPerPixel),
	}
}

// Width returns the frame width in pixels
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the frame height in pixels
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Accumulate adds a sample to pixel (x, y) and refreshes that pixel's display bytes.
// Coordinates must be inside the frame.
func (fb *FrameBuffer) Accumulate(x, y int, color core.Vec3) {
	index := y*fb.width + x
	pixel := &fb.pixels[index]
	pixel.AddSample(color)

	c := pixel.GetColor().Clamp(0.0, 1.0).GammaCorrect(fb.gamma)
	offset := index * bytesPerPixel
	fb.display[offset+0] = quantize(c.X)
	fb.display[offset+1] = quantize(c.Y)
	fb.display[offset+2] = quantize(c.Z)
	fb.display[offset+3] = 0xff
}

func quantize(value float64) uint8 {
	return uint8(math.Round(255 * value))
}

// SampleCount returns the number of samples accumulated at (x, y)
func (fb *FrameBuffer) SampleCount(x, y int) int {
	return fb.pixels[y*fb.width+x].SampleCount
}

// Color returns the average linear color at (x, y)
func (fb *FrameBuffer) Color(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x].GetColor()
}

// Clear resets sums, counts and display bytes to zero
func (fb *FrameBuffer) Clear() {
	clear(fb.pixels)
	clear(fb.display)
}

// DisplayBuffer returns the RGBA bytes. The slice is owned by the frame buffer and must not be modified.
func (fb *FrameBuffer) DisplayBuffer() []byte {
	return fb.display
}

// Image copies the display bytes into an image with row 0 at the top
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	rowBytes := fb.width * bytesPerPixel
	for y := 0; y < fb.height; y++ {
		src := fb.display[y*rowBytes : (y+1)*rowBytes]
		dstRow := fb.height - 1 - y
		copy(img.Pix[dstRow*img.Stride:dstRow*img.Stride+rowBytes], src)
	}
	return img
}

// Stats summarizes the sample distribution over the frame
func (fb *FrameBuffer) Stats() RenderStats {
	stats := RenderStats{TotalPixels: len(fb.pixels)}
	if len(fb.pixels) == 0 {
		return stats
	}

	stats.MinSamples = fb.pixels[0].SampleCount
	for _, pixel := range fb.pixels {
		stats.TotalSamples += pixel.SampleCount
		if pixel.SampleCount > 0 {
			stats.SampledPixels++
		}
		stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
		stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}
