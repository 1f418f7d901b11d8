package scene

import gomath "math"

// FogExp2 is exponential squared distance fog.
type FogExp2 struct {
	Color   [3]float32 // linear RGB
	Density float32
}

// Factor returns how much fog colour replaces the surface colour at a view
// depth, in [0, 1].
func (f FogExp2) Factor(depth float32) float32 {
	d := float64(f.Density) * float64(depth)
	return float32(1 - gomath.Exp(-d*d))
}
