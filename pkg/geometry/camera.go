package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Camera generates rays through a square, 2-unit tall viewport at unit focal length
type Camera struct {
	eye    core.Vec3
	lookAt core.Vec3
	up     core.Vec3

	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera at eye looking at lookAt. up must not be parallel to the view direction.
func NewCamera(eye, lookAt, up core.Vec3) *Camera {
	c := &Camera{eye: eye, lookAt: lookAt, up: up}
	c.update()
	return c
}

// update recomputes the viewport basis from eye, lookAt and up
func (c *Camera) update() {
	const (
		aspectRatio    = 1.0
		viewportHeight = 2.0
		viewportWidth  = aspectRatio * viewportHeight
	)

	w := c.eye.Subtract(c.lookAt).Normalize()
	u := c.up.Cross(w).Normalize()
	v := w.Cross(u)

	c.origin = c.eye
	c.horizontal = u.Multiply(viewportWidth)
	c.vertical = v.Multiply(viewportHeight)
	c.lowerLeftCorner = c.origin.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(w)
}

// SetPosition moves the eye
func (c *Camera) SetPosition(eye core.Vec3) {
	c.eye = eye
	c.update()
}

// SetLookAt changes the target
func (c *Camera) SetLookAt(lookAt core.Vec3) {
	c.lookAt = lookAt
	c.update()
}

// Position returns the eye position
func (c *Camera) Position() core.Vec3 {
	return c.eye
}

// LookAt returns the target
func (c *Camera) LookAt() core.Vec3 {
	return c.lookAt
}

// GetRay generates a ray for screen coordinates (s, t), nominally in [0, 1].
// Values outside that range are allowed and point outside the viewport.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
