package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// triangleEpsilon bounds the determinant below which a ray counts as parallel
const triangleEpsilon = 1e-6

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return t
}

// Normal returns the unit normal edge1 × edge2. It is never flipped toward the viewer.
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in (or parallel to) the plane of the triangle
	if det > -triangleEpsilon && det < triangleEpsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	return &material.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		Normal:   t.normal,
		Material: t.Material,
	}, true
}
