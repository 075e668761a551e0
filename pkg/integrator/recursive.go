package integrator

import (
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// DefaultTMin keeps scattered rays from re-hitting the surface they leave
const DefaultTMin = 0.001

// RecursiveIntegrator adds each surface's emission to its attenuated scattered radiance,
// recursing until the bounce budget runs out or a surface stops scattering.
type RecursiveIntegrator struct {
	TMin float64
}

// NewRecursiveIntegrator creates an integrator that ignores hits closer than tMin
func NewRecursiveIntegrator(tMin float64) *RecursiveIntegrator {
	return &RecursiveIntegrator{TMin: tMin}
}

// RayColor computes the color for a single ray
func (ri *RecursiveIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := scene.World.Hit(ray, ri.TMin, math.Inf(1))
	if !isHit {
		return scene.Background
	}

	emitted := hit.Material.Emitted()

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Path ends at an emitter or absorber
		return emitted
	}

	incoming := ri.RayColor(scatter.Scattered, scene, sampler, depth-1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
