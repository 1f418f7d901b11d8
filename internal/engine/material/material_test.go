package material

import (
	"math"
	"testing"

	"github.com/Faultbox/hauntedhouse/internal/engine/texture"
)

const epsilon = 1e-6

func TestNewStandardDefaults(t *testing.T) {
	m := NewStandard("walls")
	if m.Color != [3]float32{1, 1, 1} {
		t.Errorf("expected white, got %v", m.Color)
	}
	if m.Roughness != 1 || m.Metalness != 0 {
		t.Errorf("expected roughness 1 metalness 0, got %v %v", m.Roughness, m.Metalness)
	}
	if m.Side != FrontSide || m.Transparent {
		t.Error("expected opaque front-sided material")
	}
}

func TestSetDisplacementScale(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0.3, 0.3},
		{-0.5, 0},
		{1.7, 1},
		{0.12345, 0.123},
		{0.9996, 1},
		{float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		m := NewStandard("floor")
		m.SetDisplacementScale(tt.in)
		if math.Abs(float64(m.DisplacementScale-tt.want)) > epsilon {
			t.Errorf("SetDisplacementScale(%v) = %v, want %v", tt.in, m.DisplacementScale, tt.want)
		}
	}
}

func TestSetDisplacementBias(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-0.2, -0.2},
		{-3, -1},
		{2, 1},
		{0.0004, 0},
		{-0.0006, -0.001},
	}

	for _, tt := range tests {
		m := NewStandard("floor")
		m.SetDisplacementBias(tt.in)
		if math.Abs(float64(m.DisplacementBias-tt.want)) > epsilon {
			t.Errorf("SetDisplacementBias(%v) = %v, want %v", tt.in, m.DisplacementBias, tt.want)
		}
	}
}

func TestTexturesDeduplicatesARM(t *testing.T) {
	m := NewStandard("grave")
	m.Map = texture.Color("grave/diff.webp")
	m.SetARM(texture.New("grave/arm.webp"))
	m.NormalMap = texture.New("grave/nor.webp")

	got := m.Textures()
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct textures, got %d", len(got))
	}
	if got[1] != m.AOMap || m.AOMap != m.RoughnessMap || m.RoughnessMap != m.MetalnessMap {
		t.Error("expected ARM texture shared by ao, roughness and metalness slots")
	}
	if m.Texture(SlotDisplacement) != nil {
		t.Error("expected empty displacement slot")
	}
}
