package integrator

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3
}
