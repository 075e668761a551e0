package material

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	NonEmissive
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scattered := core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler))

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
