package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Translate moves a wrapped shape by Offset
type Translate struct {
	Object Shape
	Offset core.Vec3
}

// NewTranslate wraps object so that it appears moved by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, ok := t.Object.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// Rotate turns a wrapped shape by Degrees around Axis (right-handed, counterclockwise
// when looking down the axis toward the origin).
type Rotate struct {
	Object  Shape
	Axis    core.Vec3
	Degrees float64

	forward r3.Rotation
	inverse r3.Rotation
}

// NewRotateZ rotates object around the z axis
func NewRotateZ(object Shape, degrees float64) *Rotate {
	return NewRotate(object, core.NewVec3(0, 0, 1), degrees)
}

// NewRotate rotates object around an arbitrary axis through the origin
func NewRotate(object Shape, axis core.Vec3, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180.0
	return &Rotate{
		Object:  object,
		Axis:    axis,
		Degrees: degrees,
		forward: r3.NewRotation(radians, toR3(axis)),
		inverse: r3.NewRotation(-radians, toR3(axis)),
	}
}

// Hit rotates the ray into object space, then rotates the hit point and normal back
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := core.NewRay(r.toLocal(ray.Origin), r.toLocal(ray.Direction))

	hit, ok := r.Object.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

func (r *Rotate) toLocal(v core.Vec3) core.Vec3 {
	return fromR3(r.inverse.Rotate(toR3(v)))
}

func (r *Rotate) toWorld(v core.Vec3) core.Vec3 {
	return fromR3(r.forward.Rotate(toR3(v)))
}

func toR3(v core.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
