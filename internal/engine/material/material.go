// Package material describes how mesh surfaces are shaded.
package material

import (
	"math"

	"github.com/Faultbox/hauntedhouse/internal/engine/texture"
)

// Side selects which triangle faces are rendered.
type Side int

const (
	FrontSide Side = iota
	DoubleSide
)

// Slot indexes a texture binding of a Standard material.
type Slot int

const (
	SlotMap Slot = iota
	SlotAlpha
	SlotAO
	SlotRoughness
	SlotMetalness
	SlotNormal
	SlotDisplacement
	SlotCount
)

// Standard is a metallic-roughness material. Texture slots are optional;
// ambient occlusion is read from the red channel, roughness from green,
// metalness from blue and alpha from green, so a single ARM image can fill
// three slots.
type Standard struct {
	Name  string
	Color [3]float32 // linear RGB

	Map             *texture.Texture
	AlphaMap        *texture.Texture
	AOMap           *texture.Texture
	RoughnessMap    *texture.Texture
	MetalnessMap    *texture.Texture
	NormalMap       *texture.Texture
	DisplacementMap *texture.Texture

	Roughness         float32
	Metalness         float32
	AOMapIntensity    float32
	NormalScale       float32
	DisplacementScale float32
	DisplacementBias  float32

	Transparent bool
	Side        Side
}

// NewStandard returns a white, fully rough, non-metallic material.
func NewStandard(name string) *Standard {
	return &Standard{
		Name:              name,
		Color:             [3]float32{1, 1, 1},
		Roughness:         1,
		Metalness:         0,
		AOMapIntensity:    1,
		NormalScale:       1,
		DisplacementScale: 1,
	}
}

// Texture returns the texture bound to slot, or nil.
func (m *Standard) Texture(slot Slot) *texture.Texture {
	switch slot {
	case SlotMap:
		return m.Map
	case SlotAlpha:
		return m.AlphaMap
	case SlotAO:
		return m.AOMap
	case SlotRoughness:
		return m.RoughnessMap
	case SlotMetalness:
		return m.MetalnessMap
	case SlotNormal:
		return m.NormalMap
	case SlotDisplacement:
		return m.DisplacementMap
	}
	return nil
}

// Textures returns every bound texture, in slot order, without duplicates.
func (m *Standard) Textures() []*texture.Texture {
	var out []*texture.Texture
	seen := make(map[*texture.Texture]bool)
	for s := Slot(0); s < SlotCount; s++ {
		t := m.Texture(s)
		if t == nil || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// SetARM binds one packed ambient-occlusion/roughness/metalness texture to
// the three slots that read it.
func (m *Standard) SetARM(t *texture.Texture) {
	m.AOMap = t
	m.RoughnessMap = t
	m.MetalnessMap = t
}

// Displacement limits exposed to the debug panel.
const (
	DisplacementScaleMin = 0
	DisplacementScaleMax = 1
	DisplacementBiasMin  = -1
	DisplacementBiasMax  = 1
	DisplacementStep     = 0.001
)

// SetDisplacementScale clamps v to [0, 1] on a 0.001 grid and stores it.
func (m *Standard) SetDisplacementScale(v float32) {
	m.DisplacementScale = quantize(v, DisplacementScaleMin, DisplacementScaleMax)
}

// SetDisplacementBias clamps v to [-1, 1] on a 0.001 grid and stores it.
func (m *Standard) SetDisplacementBias(v float32) {
	m.DisplacementBias = quantize(v, DisplacementBiasMin, DisplacementBiasMax)
}

func quantize(v, lo, hi float32) float32 {
	if v != v {
		return lo
	}
	v = min(max(v, lo), hi)
	steps := math.Round(float64(v-lo) / DisplacementStep)
	return float32(float64(lo) + steps*DisplacementStep)
}
