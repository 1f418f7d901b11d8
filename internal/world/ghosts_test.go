package world

import (
	"math"
	"testing"
)

func TestTrajectoryAtZero(t *testing.T) {
	for _, g := range DefaultGhosts() {
		p := g.Trajectory.Sample(0)
		if p.X != float32(g.Trajectory.Radius) || p.Y != 0 || p.Z != 0 {
			t.Errorf("%s: expected (%v, 0, 0), got %+v", g.Name, g.Trajectory.Radius, p)
		}
	}
}

func TestTrajectoryIdempotent(t *testing.T) {
	tr := Trajectory{AngularSpeed: 0.38, Radius: 5, SpeedSign: -1}
	for _, at := range []float64{0.016, 1, 12.5, 3600} {
		if a, b := tr.Sample(at), tr.Sample(at); a != b {
			t.Errorf("t=%v: %+v != %+v", at, a, b)
		}
	}
}

func TestTrajectoryBounds(t *testing.T) {
	for _, g := range DefaultGhosts() {
		tr := g.Trajectory
		for i := 0; i < 5000; i++ {
			at := float64(i) * 0.037
			p := tr.Sample(at)
			if p.Y < -1 || p.Y > 1 {
				t.Fatalf("%s t=%v: y=%v outside [-1, 1]", g.Name, at, p.Y)
			}
			r := math.Hypot(float64(p.X), float64(p.Z))
			if math.Abs(r-tr.Radius) > 1e-4 {
				t.Fatalf("%s t=%v: horizontal radius %v, want %v", g.Name, at, r, tr.Radius)
			}
		}
	}
}

func TestTrajectoryDirection(t *testing.T) {
	ccw := Trajectory{AngularSpeed: 1, Radius: 2, SpeedSign: 1}.Sample(math.Pi / 2)
	cw := Trajectory{AngularSpeed: 1, Radius: 2, SpeedSign: -1}.Sample(math.Pi / 2)

	if math.Abs(float64(ccw.Z)-2) > 1e-5 {
		t.Errorf("expected z=2 for positive sign, got %v", ccw.Z)
	}
	if math.Abs(float64(cw.Z)+2) > 1e-5 {
		t.Errorf("expected z=-2 for negative sign, got %v", cw.Z)
	}
}

func TestDefaultGhosts(t *testing.T) {
	ghosts := DefaultGhosts()
	if len(ghosts) != 3 {
		t.Fatalf("expected 3 ghosts, got %d", len(ghosts))
	}

	want := []struct {
		color string
		speed float64
		r     float64
		sign  float64
	}{
		{"#8800ff", 0.5, 4, 1},
		{"#ff0088", 0.38, 5, -1},
		{"#ff0000", 0.23, 6, 1},
	}
	for i, w := range want {
		g := ghosts[i]
		if g.Color != w.color || g.Intensity != 6 {
			t.Errorf("ghost %d: got colour %s intensity %v", i, g.Color, g.Intensity)
		}
		tr := g.Trajectory
		if tr.AngularSpeed != w.speed || tr.Radius != w.r || tr.SpeedSign != w.sign {
			t.Errorf("ghost %d: got trajectory %+v", i, tr)
		}
	}
}
