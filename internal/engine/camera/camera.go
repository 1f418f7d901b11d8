// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	FOV    float32 // vertical field of view, degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *Camera {
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: math.Vec3{Z: -1},
		Up:     math.Vec3{Y: 1},
	}
}

// Resize sets the aspect ratio for a viewport of width x height pixels.
// It reports false and leaves the camera unchanged for an empty viewport.
func (c *Camera) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.Aspect = float32(width) / float32(height)
	return true
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	fovY := float32(float64(c.FOV) * gomath.Pi / 180)
	return math.Perspective(fovY, c.Aspect, c.Near, c.Far)
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Depth returns the distance of p along the view direction.
func (c *Camera) Depth(p math.Vec3) float32 {
	return p.Sub(c.Position).Dot(c.Forward())
}
