package ui

import (
	"testing"

	"github.com/Faultbox/hauntedhouse/internal/engine/material"
)

func TestPixelRatio(t *testing.T) {
	tests := []struct {
		name          string
		device, limit float32
		want          float32
	}{
		{"standard display", 1, 2, 1},
		{"below one", 0.5, 2, 1},
		{"fractional scaling", 1.25, 2, 2},
		{"retina", 2, 2, 2},
		{"dense phone", 3, 2, 2},
		{"raised limit", 3, 4, 3},
		{"fractional limit", 1.5, 1.5, 1.5},
		{"limit below one", 2, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelRatio(tt.device, tt.limit); got != tt.want {
				t.Errorf("PixelRatio(%v, %v) = %v, want %v", tt.device, tt.limit, got, tt.want)
			}
		})
	}
}

func TestRenderSize(t *testing.T) {
	tests := []struct {
		w, h, ratio float32
		wantW       int32
		wantH       int32
	}{
		{1280, 720, 1, 1280, 720},
		{1280, 720, 2, 2560, 1440},
		{640.5, 360.4, 2, 1281, 721},
		{0, 0, 2, 1, 1},
	}

	for _, tt := range tests {
		w, h := RenderSize(tt.w, tt.h, tt.ratio)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("RenderSize(%v, %v, %v) = %dx%d, want %dx%d", tt.w, tt.h, tt.ratio, w, h, tt.wantW, tt.wantH)
		}
	}
}

type recorder struct {
	drags [][3]float32
	zooms []float32
}

func (r *recorder) HandleDrag(dx, dy, h float32) { r.drags = append(r.drags, [3]float32{dx, dy, h}) }
func (r *recorder) HandleZoom(delta float32)     { r.zooms = append(r.zooms, delta) }

func TestOrbitInputDrag(t *testing.T) {
	var in OrbitInput
	rec := &recorder{}

	frames := []Pointer{
		{X: 10, Y: 10},
		{X: 10, Y: 10, Down: true},
		{X: 15, Y: 8, Down: true},
		{X: 15, Y: 8, Down: true},
		{X: 20, Y: 8, Down: true, Captured: true},
		{X: 30, Y: 8},
		{X: 40, Y: 8},
	}
	for _, p := range frames {
		in.Apply(p, 720, rec)
	}

	want := [][3]float32{{5, -2, 720}, {5, 0, 720}}
	if len(rec.drags) != len(want) {
		t.Fatalf("got %d drags, want %d: %v", len(rec.drags), len(want), rec.drags)
	}
	for i := range want {
		if rec.drags[i] != want[i] {
			t.Errorf("drag %d = %v, want %v", i, rec.drags[i], want[i])
		}
	}
	if in.Dragging() {
		t.Error("expected the drag to end on release")
	}
}

func TestOrbitInputIgnoresPanelPress(t *testing.T) {
	var in OrbitInput
	rec := &recorder{}

	in.Apply(Pointer{X: 0, Y: 0, Down: true, Captured: true}, 720, rec)
	in.Apply(Pointer{X: 50, Y: 0, Down: true}, 720, rec)

	if len(rec.drags) != 0 {
		t.Errorf("expected no drags for a press that began on a panel, got %v", rec.drags)
	}
}

func TestOrbitInputWheel(t *testing.T) {
	var in OrbitInput
	rec := &recorder{}

	in.Apply(Pointer{Wheel: 1}, 720, rec)
	in.Apply(Pointer{Wheel: -2, Captured: true}, 720, rec)
	in.Apply(Pointer{}, 720, rec)

	if len(rec.zooms) != 1 || rec.zooms[0] != 1 {
		t.Errorf("zooms = %v, want [1]", rec.zooms)
	}
}

func TestDisplacementSliders(t *testing.T) {
	m := material.NewStandard("floor")
	sliders := DisplacementSliders("floor", m)

	if len(sliders) != 2 {
		t.Fatalf("got %d sliders, want 2", len(sliders))
	}
	scale, bias := sliders[0], sliders[1]
	if scale.Label != "floorDisplacementScale" || bias.Label != "floorDisplacementBias" {
		t.Errorf("labels = %q, %q", scale.Label, bias.Label)
	}
	if scale.Min != 0 || scale.Max != 1 || bias.Min != -1 || bias.Max != 1 {
		t.Errorf("ranges = [%v,%v] [%v,%v]", scale.Min, scale.Max, bias.Min, bias.Max)
	}

	scale.Set(0.25)
	if got := scale.Get(); got != 0.25 {
		t.Errorf("scale = %v, want 0.25", got)
	}
	bias.Set(-3)
	if got := bias.Get(); got != -1 {
		t.Errorf("bias = %v, want clamped -1", got)
	}
	if m.DisplacementBias != -1 {
		t.Error("expected the slider to write through to the material")
	}
}
