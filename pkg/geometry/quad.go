package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Quad is a four-sided polygon split into the triangles (p0, p1, p2) and (p2, p3, p0)
type Quad struct {
	First, Second *Triangle
}

// NewQuad creates a quad from four vertices in winding order
func NewQuad(p0, p1, p2, p3 core.Vec3, material material.Material) *Quad {
	return &Quad{
		First:  NewTriangle(p0, p1, p2, material),
		Second: NewTriangle(p2, p3, p0, material),
	}
}

// Hit reports the first triangle that is hit, trying First before Second
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if hit, ok := q.First.Hit(ray, tMin, tMax); ok {
		return hit, true
	}
	return q.Second.Hit(ray, tMin, tMax)
}
