package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Axis names a coordinate axis
type Axis int

const (
	AxisZ Axis = iota // default: the rectangle lies in an XY plane
	AxisX
	AxisY
)

// Rect is an axis-aligned rectangle lying in the plane perpendicular to Axis through Center.
// HalfWidth and HalfHeight extend along the two remaining axes, in (x, y, z) cyclic order.
type Rect struct {
	Center     core.Vec3
	HalfWidth  float64
	HalfHeight float64
	Axis       Axis
	Material   material.Material
}

// NewRectXY creates a rectangle in the plane z = center.Z
func NewRectXY(center core.Vec3, halfWidth, halfHeight float64, material material.Material) *Rect {
	return NewRect(AxisZ, center, halfWidth, halfHeight, material)
}

// NewRect creates a rectangle perpendicular to axis
func NewRect(axis Axis, center core.Vec3, halfWidth, halfHeight float64, material material.Material) *Rect {
	return &Rect{
		Center:     center,
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		Axis:       axis,
		Material:   material,
	}
}

// axes returns the plane axis followed by the width and height axes
func (r *Rect) axes() (int, int, int) {
	switch r.Axis {
	case AxisX:
		return 0, 1, 2
	case AxisY:
		return 1, 2, 0
	default:
		return 2, 0, 1
	}
}

// Normal returns the fixed plane normal
func (r *Rect) Normal() core.Vec3 {
	var n [3]float64
	plane, _, _ := r.axes()
	n[plane] = 1
	return core.NewVec3(n[0], n[1], n[2])
}

// Hit solves for the plane crossing and bounds-checks the in-plane coordinates
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	plane, wAxis, hAxis := r.axes()

	dir := component(ray.Direction, plane)
	if dir == 0 {
		return nil, false
	}

	t := (component(r.Center, plane) - component(ray.Origin, plane)) / dir
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	a, b := component(point, wAxis), component(point, hAxis)
	ca, cb := component(r.Center, wAxis), component(r.Center, hAxis)
	if ca+r.HalfWidth < a || ca-r.HalfWidth > a || cb+r.HalfHeight < b || cb-r.HalfHeight > b {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    point,
		Normal:   r.Normal(),
		Material: r.Material,
	}, true
}

func component(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
