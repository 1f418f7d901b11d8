package lighting

import (
	gomath "math"

	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// MaxShadowedPointLights is the number of cube shadow maps the shaders sample.
const MaxShadowedPointLights = 4

// PointShadow configures the cube shadow map of a point light.
type PointShadow struct {
	MapSize int
	Near    float32
	Far     float32
}

// PointLight is an omnidirectional light. Its position is owned by the scene
// node it is attached to.
type PointLight struct {
	Color      [3]float32 // linear RGB
	Intensity  float32
	Distance   float32 // cutoff distance, 0 for none
	Decay      float32
	CastShadow bool
	Shadow     PointShadow
}

// NewPointLight returns a light with physically based inverse-square decay
// and a 512 texel shadow cube spanning 0.5 to 500 units.
func NewPointLight(color [3]float32, intensity float32) *PointLight {
	return &PointLight{
		Color:     color,
		Intensity: intensity,
		Decay:     2,
		Shadow:    PointShadow{MapSize: 512, Near: 0.5, Far: 500},
	}
}

// Attenuation returns the distance falloff at d units from the light.
func (p *PointLight) Attenuation(d float32) float32 {
	falloff := 1 / max(pow(d, p.Decay), 0.01)
	if p.Distance > 0 {
		r := d / p.Distance
		w := max(0, min(1, 1-r*r*r*r))
		falloff *= w * w
	}
	return falloff
}

// GPULight is a point light resolved to world space for upload.
type GPULight struct {
	Position    math.Vec3
	Radiance    [3]float32 // colour times intensity
	Distance    float32
	Decay       float32
	ShadowIndex int // cube map slot, -1 when not shadowed
	ShadowSize  int
	ShadowNear  float32
	ShadowFar   float32
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights  []GPULight
	Count   int
	shadows int
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]GPULight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
	b.shadows = 0
}

// AddLight adds a light at a world position and assigns it a shadow slot
// when it casts shadows and a slot is free.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light *PointLight, position math.Vec3) bool {
	if b.Count >= MaxPointLights {
		return false
	}
	entry := GPULight{
		Position:    position,
		Radiance:    scale(light.Color, light.Intensity),
		Distance:    light.Distance,
		Decay:       light.Decay,
		ShadowIndex: -1,
		ShadowSize:  light.Shadow.MapSize,
		ShadowNear:  light.Shadow.Near,
		ShadowFar:   light.Shadow.Far,
	}
	if light.CastShadow && b.shadows < MaxShadowedPointLights {
		entry.ShadowIndex = b.shadows
		b.shadows++
	}
	b.Lights = append(b.Lights, entry)
	b.Count++
	return true
}

// ShadowCount returns how many lights were given a shadow slot.
func (b *PointLightBuffer) ShadowCount() int {
	return b.shadows
}

// GetPositions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *PointLightBuffer) GetPositions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Position.X
		result[i*3+1] = light.Position.Y
		result[i*3+2] = light.Position.Z
	}
	return result
}

// GetRadiances returns colour times intensity as a flat float32 slice.
// Format: [r0, g0, b0, r1, g1, b1, ...]
func (b *PointLightBuffer) GetRadiances() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Radiance[0]
		result[i*3+1] = light.Radiance[1]
		result[i*3+2] = light.Radiance[2]
	}
	return result
}

// GetDistances returns cutoff distances as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetDistances() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Distance
	}
	return result
}

// GetDecays returns decay exponents as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetDecays() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Decay
	}
	return result
}

// GetShadowIndices returns cube map slots, -1 for unshadowed lights.
func (b *PointLightBuffer) GetShadowIndices() []int32 {
	result := make([]int32, MaxPointLights)
	for i := range result {
		result[i] = -1
	}
	for i, light := range b.Lights {
		result[i] = int32(light.ShadowIndex)
	}
	return result
}

// GetShadowFars returns the shadow camera far plane per light.
func (b *PointLightBuffer) GetShadowFars() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.ShadowFar
	}
	return result
}

func pow(x, y float32) float32 {
	if y == 2 {
		return x * x
	}
	return float32(gomath.Pow(float64(x), float64(y)))
}
