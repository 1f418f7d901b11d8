package scene

import "github.com/Faultbox/hauntedhouse/pkg/math"

// Sky holds the parameters of the Preetham daylight model drawn on a cube
// around the camera.
type Sky struct {
	Turbidity       float32
	Rayleigh        float32
	MieCoefficient  float32
	MieDirectionalG float32
	SunPosition     math.Vec3
	Scale           float32
}

// DefaultSky returns a clear midday sky.
func DefaultSky() *Sky {
	return &Sky{
		Turbidity:       2,
		Rayleigh:        1,
		MieCoefficient:  0.005,
		MieDirectionalG: 0.8,
		SunPosition:     math.Vec3{Y: 1},
		Scale:           1,
	}
}

// SunDirection returns the normalised direction towards the sun.
func (s *Sky) SunDirection() math.Vec3 {
	return s.SunPosition.Normalize()
}
