package lighting

import "github.com/Faultbox/hauntedhouse/pkg/math"

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Color     [3]float32 // linear RGB
	Intensity float32
}

// Radiance returns colour scaled by intensity.
func (a AmbientLight) Radiance() [3]float32 {
	return scale(a.Color, a.Intensity)
}

// DirectionalShadow holds the orthographic shadow camera of a directional light.
type DirectionalShadow struct {
	MapSize                  int
	Left, Right, Bottom, Top float32
	Near, Far                float32
}

// DirectionalLight shines parallel rays from Position towards Target.
type DirectionalLight struct {
	Color      [3]float32 // linear RGB
	Intensity  float32
	Position   math.Vec3
	Target     math.Vec3
	CastShadow bool
	Shadow     DirectionalShadow
}

// NewDirectionalLight returns a light at position aimed at the origin with a
// 512 texel, +-5 unit shadow camera.
func NewDirectionalLight(color [3]float32, intensity float32, position math.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Intensity: intensity,
		Position:  position,
		Shadow: DirectionalShadow{
			MapSize: 512,
			Left:    -5, Right: 5, Bottom: -5, Top: 5,
			Near: 0.5, Far: 500,
		},
	}
}

// Direction returns the unit vector pointing from the target towards the light.
func (d *DirectionalLight) Direction() math.Vec3 {
	return d.Position.Sub(d.Target).Normalize()
}

// Radiance returns colour scaled by intensity.
func (d *DirectionalLight) Radiance() [3]float32 {
	return scale(d.Color, d.Intensity)
}

func scale(c [3]float32, s float32) [3]float32 {
	return [3]float32{c[0] * s, c[1] * s, c[2] * s}
}
