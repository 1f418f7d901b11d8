package shadow

import (
	gomath "math"

	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// DirectionalLightMatrix computes the view-projection of a directional
// light's orthographic shadow camera, looking from its position at its target.
func DirectionalLightMatrix(light *lighting.DirectionalLight) math.Mat4 {
	s := light.Shadow
	view := math.LookAt(light.Position, light.Target, upFor(light.Direction()))
	proj := math.Ortho(s.Left, s.Right, s.Bottom, s.Top, s.Near, s.Far)
	return proj.Mul(view)
}

// cubeFaces lists view direction and up vector per face in GL order
// (+X, -X, +Y, -Y, +Z, -Z).
var cubeFaces = [6]struct {
	dir, up math.Vec3
}{
	{math.Vec3{X: 1}, math.Vec3{Y: -1}},
	{math.Vec3{X: -1}, math.Vec3{Y: -1}},
	{math.Vec3{Y: 1}, math.Vec3{Z: 1}},
	{math.Vec3{Y: -1}, math.Vec3{Z: -1}},
	{math.Vec3{Z: 1}, math.Vec3{Y: -1}},
	{math.Vec3{Z: -1}, math.Vec3{Y: -1}},
}

// CubeFaceMatrices returns the six 90 degree view-projections used to render
// a point light's cube shadow map, in GL cube face order.
func CubeFaceMatrices(pos math.Vec3, near, far float32) [6]math.Mat4 {
	proj := math.Perspective(gomath.Pi/2, 1, near, far)
	var out [6]math.Mat4
	for i, f := range cubeFaces {
		out[i] = proj.Mul(math.LookAt(pos, pos.Add(f.dir), f.up))
	}
	return out
}

// upFor returns an up vector that is not parallel to dir.
func upFor(dir math.Vec3) math.Vec3 {
	if abs32(dir.Y) > 0.99 {
		return math.Vec3{Z: 1}
	}
	return math.Vec3{Y: 1}
}

// abs32 returns the absolute value of a float32.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
