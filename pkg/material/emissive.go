package material

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Light is a pure emitter: it never scatters, so paths end on it
type Light struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewLight creates a new light material
func NewLight(emission core.Vec3) *Light {
	return &Light{Emission: emission}
}

// Emitted returns the light color
func (l *Light) Emitted() core.Vec3 {
	return l.Emission
}

// Scatter always fails for lights
func (l *Light) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Unlit emits its albedo and also passes the incoming ray on unchanged, attenuated by the albedo.
// The integrator therefore counts the surface both as an emitter and as a reflector.
type Unlit struct {
	Albedo core.Vec3
}

// NewUnlit creates a new unlit material
func NewUnlit(albedo core.Vec3) *Unlit {
	return &Unlit{Albedo: albedo}
}

// Emitted returns the albedo
func (u *Unlit) Emitted() core.Vec3 {
	return u.Albedo
}

// Scatter continues the incoming direction from the hit point
func (u *Unlit) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, rayIn.Direction),
		Attenuation: u.Albedo,
	}, true
}

// Special glows with its color and also bounces light diffusely, tinted by the same color
type Special struct {
	Color core.Vec3
}

// NewSpecial creates a new special material
func NewSpecial(color core.Vec3) *Special {
	return &Special{Color: color}
}

// Emitted returns the material color
func (s *Special) Emitted() core.Vec3 {
	return s.Color
}

// Scatter follows the lambertian scattering law
func (s *Special) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: s.Color,
	}, true
}
