package world

import (
	gomath "math"

	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// Trajectory describes the closed orbit of a ghost light around the house.
type Trajectory struct {
	AngularSpeed float64 // radians per second
	Radius       float64
	SpeedSign    float64 // +1 counter-clockwise seen from above, -1 clockwise
}

// Sample returns the light position at elapsed time t in seconds.
// The result depends only on t and the trajectory constants.
func (tr Trajectory) Sample(t float64) math.Vec3 {
	angle := tr.SpeedSign * t * tr.AngularSpeed
	return math.Vec3{
		X: float32(gomath.Cos(angle) * tr.Radius),
		Y: float32(gomath.Sin(angle) * gomath.Sin(angle*2.34) * gomath.Sin(angle*3.45)),
		Z: float32(gomath.Sin(angle) * tr.Radius),
	}
}

// Ghost is a coloured point light following a trajectory.
type Ghost struct {
	Name       string
	Color      string
	Intensity  float32
	Trajectory Trajectory
}

// DefaultGhosts returns the three ghosts circling the house.
func DefaultGhosts() []Ghost {
	return []Ghost{
		{Name: "ghost1", Color: "#8800ff", Intensity: 6, Trajectory: Trajectory{AngularSpeed: 0.5, Radius: 4, SpeedSign: 1}},
		{Name: "ghost2", Color: "#ff0088", Intensity: 6, Trajectory: Trajectory{AngularSpeed: 0.38, Radius: 5, SpeedSign: -1}},
		{Name: "ghost3", Color: "#ff0000", Intensity: 6, Trajectory: Trajectory{AngularSpeed: 0.23, Radius: 6, SpeedSign: 1}},
	}
}
