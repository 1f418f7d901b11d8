package world

import (
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/hauntedhouse/pkg/math"
)

const (
	// graveMaxLift is the upper bound of the random vertical offset.
	graveMaxLift = 0.4
	// graveTilt scales the centred random rotation to [-0.2, 0.2] radians.
	graveTilt = 0.4
)

// GraveTransform is where a single grave marker sits and how it leans.
type GraveTransform struct {
	Position math.Vec3
	Rotation math.Vec3
}

// PlaceGraves scatters n grave markers over the annulus between innerRadius
// and outerRadius around the origin. Angle and radius are sampled
// independently, so markers bunch slightly towards the inner ring.
//
// A non-positive n yields an empty slice. The function draws exactly six
// values from rng per grave and touches nothing else.
func PlaceGraves(rng *rand.Rand, n int, innerRadius, outerRadius float32) []GraveTransform {
	if n <= 0 {
		return []GraveTransform{}
	}

	graves := make([]GraveTransform, n)
	span := float64(outerRadius - innerRadius)

	for i := range graves {
		angle := rng.Float64() * gomath.Pi * 2
		radius := float64(innerRadius) + rng.Float64()*span

		graves[i] = GraveTransform{
			Position: math.Vec3{
				X: float32(gomath.Sin(angle) * radius),
				Y: float32(rng.Float64() * graveMaxLift),
				Z: float32(gomath.Cos(angle) * radius),
			},
			Rotation: math.Vec3{
				X: float32((rng.Float64() - 0.5) * graveTilt),
				Y: float32((rng.Float64() - 0.5) * graveTilt),
				Z: float32((rng.Float64() - 0.5) * graveTilt),
			},
		}
	}

	return graves
}

// NewRand returns a random source for scene generation. A zero seed picks
// one from the wall clock.
func NewRand(seed uint64, now func() int64) *rand.Rand {
	if seed == 0 {
		seed = uint64(now())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
