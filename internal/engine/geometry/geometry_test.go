package geometry

import (
	"math"
	"testing"
)

const epsilon = 0.0001

func approxEqual(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < epsilon
}

// faceNormal returns the unnormalised geometric normal of triangle i.
func faceNormal(g *Geometry, i int) [3]float32 {
	a := g.Vertices[g.Indices[i*3]].Position
	b := g.Vertices[g.Indices[i*3+1]].Position
	c := g.Vertices[g.Indices[i*3+2]].Position
	u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return [3]float32{u[1]*v[2] - u[2]*v[1], u[2]*v[0] - u[0]*v[2], u[0]*v[1] - u[1]*v[0]}
}

// checkWinding asserts every triangle faces the same way as its vertex normals.
func checkWinding(t *testing.T, g *Geometry) {
	t.Helper()
	for i := 0; i < g.TriangleCount(); i++ {
		fn := faceNormal(g, i)
		n := g.Vertices[g.Indices[i*3]].Normal
		if fn[0]*n[0]+fn[1]*n[1]+fn[2]*n[2] <= 0 {
			t.Fatalf("%s triangle %d is wound against its normal", g.Name, i)
		}
	}
}

func checkIndices(t *testing.T, g *Geometry) {
	t.Helper()
	if len(g.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("index %d = %d out of range (%d vertices)", i, idx, len(g.Vertices))
		}
	}
}

func TestPlane(t *testing.T) {
	tests := []struct {
		name       string
		segX, segY int
		vertices   int
		triangles  int
	}{
		{"single", 1, 1, 4, 2},
		{"floor", 100, 100, 101 * 101, 100 * 100 * 2},
		{"clamped", 0, -2, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Plane(20, 20, tt.segX, tt.segY)
			if len(g.Vertices) != tt.vertices {
				t.Errorf("expected %d vertices, got %d", tt.vertices, len(g.Vertices))
			}
			if g.TriangleCount() != tt.triangles {
				t.Errorf("expected %d triangles, got %d", tt.triangles, g.TriangleCount())
			}
			checkIndices(t, g)
			checkWinding(t, g)
		})
	}
}

func TestPlaneLayout(t *testing.T) {
	g := Plane(2.2, 2.2, 1, 1)

	if !approxEqual(g.Bounds.Min[0], -1.1) || !approxEqual(g.Bounds.Max[1], 1.1) {
		t.Errorf("unexpected bounds %+v", g.Bounds)
	}
	if g.Bounds.Min[2] != 0 || g.Bounds.Max[2] != 0 {
		t.Errorf("plane should lie in z=0, got %+v", g.Bounds)
	}

	// First vertex is top-left with uv (0, 1).
	v := g.Vertices[0]
	if !approxEqual(v.Position[0], -1.1) || !approxEqual(v.Position[1], 1.1) {
		t.Errorf("expected top-left first vertex, got %v", v.Position)
	}
	if v.TexCoord != [2]float32{0, 1} {
		t.Errorf("expected uv (0, 1), got %v", v.TexCoord)
	}
}

func TestBox(t *testing.T) {
	g := Box(4, 2.5, 4)

	if len(g.Vertices) != 24 {
		t.Errorf("expected 24 vertices, got %d", len(g.Vertices))
	}
	if len(g.Indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(g.Indices))
	}
	checkIndices(t, g)
	checkWinding(t, g)

	want := Bounds{Min: [3]float32{-2, -1.25, -2}, Max: [3]float32{2, 1.25, 2}}
	for i := 0; i < 3; i++ {
		if !approxEqual(g.Bounds.Min[i], want.Min[i]) || !approxEqual(g.Bounds.Max[i], want.Max[i]) {
			t.Fatalf("expected bounds %+v, got %+v", want, g.Bounds)
		}
	}
}

func TestCone(t *testing.T) {
	g := Cone(3.5, 1.5, 4)

	// Side: 2 rings of 5, cap: 4 centres + ring of 5.
	if len(g.Vertices) != 19 {
		t.Errorf("expected 19 vertices, got %d", len(g.Vertices))
	}
	if g.TriangleCount() != 8 {
		t.Errorf("expected 8 triangles, got %d", g.TriangleCount())
	}
	checkIndices(t, g)
	checkWinding(t, g)

	if !approxEqual(g.Bounds.Max[1], 0.75) || !approxEqual(g.Bounds.Min[1], -0.75) {
		t.Errorf("expected y range [-0.75, 0.75], got %+v", g.Bounds)
	}
	if !approxEqual(g.Bounds.Max[0], 3.5) || !approxEqual(g.Bounds.Max[2], 3.5) {
		t.Errorf("expected base corners on the axes at radius 3.5, got %+v", g.Bounds)
	}
}

func TestSphere(t *testing.T) {
	g := Sphere(1, 16, 16)

	if len(g.Vertices) != 17*17 {
		t.Errorf("expected %d vertices, got %d", 17*17, len(g.Vertices))
	}
	// Pole rows contribute one triangle per segment.
	want := 16*16*2 - 2*16
	if g.TriangleCount() != want {
		t.Errorf("expected %d triangles, got %d", want, g.TriangleCount())
	}
	checkIndices(t, g)
	checkWinding(t, g)

	for i, v := range g.Vertices {
		p := v.Position
		r := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
		if !approxEqual(r, 1) {
			t.Fatalf("vertex %d at distance %f from centre", i, r)
		}
	}
}

func TestBoundsCenter(t *testing.T) {
	b := Bounds{Min: [3]float32{-1, 0, 2}, Max: [3]float32{3, 4, 2}}
	if c := b.Center(); c != [3]float32{1, 2, 2} {
		t.Errorf("expected (1, 2, 2), got %v", c)
	}
}
