package scene

import "github.com/Faultbox/hauntedhouse/pkg/math"

// Transform places a node relative to its parent. Rotation holds Euler
// angles in radians applied in X, Y, Z order.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// Identity returns a transform with unit scale and no offset.
func Identity() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Matrix returns the local matrix T * R * S.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Position, t.Rotation, t.Scale)
}

// UniformScale sets the same scale on every axis.
func (t *Transform) UniformScale(s float32) {
	t.Scale = math.Vec3{X: s, Y: s, Z: s}
}
