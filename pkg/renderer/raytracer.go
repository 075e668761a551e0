package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// Raytracer is the render context: the active scene and camera, the frame buffer and the sampler.
// It is not safe for concurrent use.
type Raytracer struct {
	config     Config
	scene      *scene.Scene
	camera     *geometry.Camera
	frame      *FrameBuffer
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NewRaytracer creates a render context with config.StartScene loaded
func NewRaytracer(config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if logger == nil {
		logger = discardLogger{}
	}

	rt := &Raytracer{
		config:     config,
		frame:      NewFrameBuffer(config.Width, config.Height, config.Gamma),
		integrator: integrator.NewRecursiveIntegrator(config.TMin),
		sampler:    core.NewSeededSampler(config.Seed),
		logger:     logger,
	}
	if err := rt.LoadScene(config.StartScene); err != nil {
		return nil, err
	}
	return rt, nil
}

// Config returns the render settings
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Scene returns the active scene
func (rt *Raytracer) Scene() *scene.Scene {
	return rt.scene
}

// Camera returns the active camera
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// FrameBuffer returns the accumulation buffer
func (rt *Raytracer) FrameBuffer() *FrameBuffer {
	return rt.frame
}

// LoadScene replaces the scene, camera pose and background with a catalog entry.
// On error the previous scene stays active. Accumulated samples are kept.
func (rt *Raytracer) LoadScene(id int) error {
	s, err := scene.New(id)
	if err != nil {
		return err
	}
	rt.SetScene(s)
	rt.logger.Printf("Loaded scene %d (%s): %d primitives\n", s.ID, s.Name, s.GetPrimitiveCount())
	return nil
}

// SetScene makes s the active scene and moves the camera to its pose
func (rt *Raytracer) SetScene(s *scene.Scene) {
	rt.scene = s
	rt.camera = s.NewCamera()
}

// RenderFrame draws one jittered sample through every pixel
func (rt *Raytracer) RenderFrame() {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := (float64(x) + rt.sampler.Get1D()) / float64(width-1)
			v := (float64(y) + rt.sampler.Get1D()) / float64(height-1)
			ray := rt.camera.GetRay(u, v)
			rt.frame.Accumulate(x, y, rt.integrator.RayColor(ray, rt.scene, rt.sampler, rt.config.FrameDepth))
		}
	}

	rt.logger.Printf("Frame rendered in %v\n", time.Since(start))
}

// RenderFrameFrom clears the accumulation, moves the camera to eye and renders a frame
func (rt *Raytracer) RenderFrameFrom(eye core.Vec3) {
	rt.ResetAccumulation()
	rt.camera.SetPosition(eye)
	rt.RenderFrame()
}

// AccumulateRegion adds jittered samples on a disc of integer pixel offsets around (u, v).
// Pixels that already hold more samples are traced with more bounces. Samples falling outside
// the frame are dropped. It returns the number of samples drawn.
func (rt *Raytracer) AccumulateRegion(u, v, radius float64) int {
	width, height := rt.config.Width, rt.config.Height
	drawn := 0

	for rx := int(-radius); float64(rx) <= radius; rx++ {
		for ry := int(-radius); float64(ry) <= radius; ry++ {
			if math.Sqrt(float64(rx*rx+ry*ry)) > radius {
				continue
			}

			u2 := u + (float64(rx)+rt.sampler.Get1D())/float64(width)
			v2 := v + (float64(ry)+rt.sampler.Get1D())/float64(height)
			ray := rt.camera.GetRay(u2, v2)

			x := int(u2 * float64(width))
			y := int(v2 * float64(height))
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}

			depth := rt.regionDepth(rt.frame.SampleCount(x, y))
			rt.frame.Accumulate(x, y, rt.integrator.RayColor(ray, rt.scene, rt.sampler, depth))
			drawn++
		}
	}

	return drawn
}

// regionDepth grows the bounce budget with the samples a pixel already holds
func (rt *Raytracer) regionDepth(count int) int {
	return rt.config.RegionBaseDepth + count/rt.config.RegionDepthStep
}

// Pick casts one camera ray and reports whether the nearest hit belongs to the special object
func (rt *Raytracer) Pick(u, v float64) bool {
	ray := rt.camera.GetRay(u, v)
	hit, isHit := rt.scene.World.Hit(ray, rt.config.TMin, math.Inf(1))
	return isHit && hit.SpecialObject
}

// ResetAccumulation zeroes every per-pixel sum, count and display byte
func (rt *Raytracer) ResetAccumulation() {
	rt.frame.Clear()
}

// DisplayBuffer returns the quantized RGBA bytes, bottom row first
func (rt *Raytracer) DisplayBuffer() []byte {
	return rt.frame.DisplayBuffer()
}
