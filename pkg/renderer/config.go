package renderer

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	FrameDepth      int     // Bounce depth for full-frame renders
	RegionBaseDepth int     // Bounce depth for the first region samples of a pixel
	RegionDepthStep int     // Region samples per pixel needed for each extra bounce
	TMin            float64 // Closest accepted hit distance
	Gamma           float64 // Display gamma; 1 leaves the linear average untouched
	Seed            int64   // Sampler seed; 0 seeds from the clock
	StartScene      int     // Catalog scene loaded on creation
}

// DefaultConfig returns the settings of the interactive viewer
func DefaultConfig() Config {
	return Config{
		Width:           250,
		Height:          250,
		FrameDepth:      4,
		RegionBaseDepth: 3,
		RegionDepthStep: 5,
		TMin:            integrator.DefaultTMin,
		Gamma:           1.0,
		Seed:            0,
		StartScene:      0,
	}
}

// Validate reports settings the renderer cannot work with
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("image must be at least 2x2 pixels, got %dx%d", c.Width, c.Height)
	}
	if c.RegionDepthStep < 1 {
		return fmt.Errorf("region depth step must be positive, got %d", c.RegionDepthStep)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %f", c.Gamma)
	}
	return nil
}
