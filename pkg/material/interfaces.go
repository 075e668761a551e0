package material

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Material describes how light leaves a surface: what it emits and how it scatters incoming rays
type Material interface {
	// Emitted returns the light emitted by the surface
	Emitted() core.Vec3

	// Scatter returns the attenuation and bounced ray for rayIn at hit.
	// A false result means the path ends here (the surface only emits or absorbs).
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point         core.Vec3 // Point of intersection
	Normal        core.Vec3 // Surface normal; not guaranteed to face the ray
	T             float64   // Parameter t along the ray
	Material      Material  // Material of the hit object, shared with other primitives
	SpecialObject bool      // Whether the hit belongs to the scene's designated special object
}

// NonEmissive provides the default black emission for materials that only scatter
type NonEmissive struct{}

// Emitted returns black
func (NonEmissive) Emitted() core.Vec3 {
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// diffuseDirection returns normal + a random unit vector, falling back to the normal when degenerate
func diffuseDirection(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := normal.Add(core.RandomUnitVector(sampler))
	if direction.NearZero() {
		return normal
	}
	return direction
}
