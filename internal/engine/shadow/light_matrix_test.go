package shadow

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

const epsilon = 0.001

func approxEqual(a, b float32) bool {
	return float32(gomath.Abs(float64(a-b))) < epsilon
}

// clipW is the homogeneous w of p after projection by m.
func clipW(m math.Mat4, p math.Vec3) float32 {
	return m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
}

func sun() *lighting.DirectionalLight {
	l := lighting.NewDirectionalLight([3]float32{1, 1, 1}, 1, math.Vec3{X: 10, Y: 10, Z: 10})
	l.Shadow = lighting.DirectionalShadow{
		MapSize: 256,
		Left:    -8, Right: 8, Bottom: -8, Top: 8,
		Near: 1, Far: 20,
	}
	return l
}

func TestDirectionalLightMatrixCentersTarget(t *testing.T) {
	m := DirectionalLightMatrix(sun())
	p := m.TransformPoint([3]float32{0, 0, 0})

	if !approxEqual(p[0], 0) || !approxEqual(p[1], 0) {
		t.Errorf("expected target at clip centre, got %v", p)
	}
	// Target sits sqrt(300) ~ 17.32 units away, inside [1, 20].
	want := float32(2*(gomath.Sqrt(300)-1)/19 - 1)
	if !approxEqual(p[2], want) {
		t.Errorf("expected depth %v, got %v", want, p[2])
	}
}

func TestDirectionalLightMatrixBounds(t *testing.T) {
	l := sun()
	m := DirectionalLightMatrix(l)

	// A point 8 units along the light's right axis hits the frustum edge.
	dir := l.Direction()
	right := dir.Scale(-1).Cross(math.Vec3{Y: 1}).Normalize()
	edge := right.Scale(8)
	p := m.TransformPoint([3]float32{edge.X, edge.Y, edge.Z})
	if !approxEqual(abs32(p[0]), 1) || !approxEqual(p[1], 0) {
		t.Errorf("expected x edge of the shadow frustum, got %v", p)
	}
}

func TestDirectionalLightMatrixVerticalLight(t *testing.T) {
	l := sun()
	l.Position = math.Vec3{Y: 10}
	m := DirectionalLightMatrix(l)
	for _, v := range m {
		if gomath.IsNaN(float64(v)) {
			t.Fatal("expected finite matrix for a light straight overhead")
		}
	}
}

func TestCubeFaceMatrices(t *testing.T) {
	pos := math.Vec3{X: 4, Y: 0.5, Z: -1}
	faces := CubeFaceMatrices(pos, 0.5, 10)

	for i, f := range cubeFaces {
		target := pos.Add(f.dir.Scale(5))
		p := faces[i].TransformPoint([3]float32{target.X, target.Y, target.Z})
		if !approxEqual(p[0], 0) || !approxEqual(p[1], 0) {
			t.Errorf("face %d: expected point on the face axis at centre, got %v", i, p)
		}
		if p[2] <= -1 || p[2] >= 1 {
			t.Errorf("face %d: expected depth inside clip range, got %v", i, p[2])
		}

		// A point behind the face direction must not land inside the face.
		behind := pos.Sub(f.dir.Scale(5))
		if w := clipW(faces[i], behind); w > 0 {
			t.Errorf("face %d: expected point behind the light to be clipped (w=%v)", i, w)
		}
	}
}
