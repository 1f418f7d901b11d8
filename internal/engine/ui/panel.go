package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/hauntedhouse/internal/engine/material"
)

// Slider binds a float parameter to a panel slider.
type Slider struct {
	Label    string
	Min, Max float32
	Get      func() float32
	Set      func(float32)
}

// DisplacementSliders returns the sliders tuning a material's displacement.
// Values pass through the material setters, which clamp and quantise them.
func DisplacementSliders(prefix string, m *material.Standard) []Slider {
	return []Slider{
		{
			Label: prefix + "DisplacementScale",
			Min:   material.DisplacementScaleMin,
			Max:   material.DisplacementScaleMax,
			Get:   func() float32 { return m.DisplacementScale },
			Set:   m.SetDisplacementScale,
		},
		{
			Label: prefix + "DisplacementBias",
			Min:   material.DisplacementBiasMin,
			Max:   material.DisplacementBiasMax,
			Get:   func() float32 { return m.DisplacementBias },
			Set:   m.SetDisplacementBias,
		},
	}
}

// PanelStats is the read-only information shown under the sliders.
type PanelStats struct {
	FPS       float32
	Triangles int
	Lights    int
}

// Panel is the debug window in the top right corner.
type Panel struct {
	Visible bool
	Sliders []Slider

	hovered bool
}

// NewPanel returns a visible panel with the given sliders.
func NewPanel(sliders ...Slider) *Panel {
	return &Panel{Visible: true, Sliders: sliders}
}

// Draw renders the panel into a viewport of the given logical width.
func (p *Panel) Draw(viewportWidth float32, stats PanelStats) {
	p.hovered = false
	if !p.Visible {
		return
	}

	const panelWidth = 300
	imgui.SetNextWindowPos(imgui.NewVec2(viewportWidth-panelWidth-10, 10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0))
	imgui.SetNextWindowBgAlpha(0.8)
	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("Controls", nil, flags) {
		for _, s := range p.Sliders {
			v := s.Get()
			imgui.SetNextItemWidth(140)
			if imgui.SliderFloatV(s.Label, &v, s.Min, s.Max, "%.3f", imgui.SliderFlagsNone) {
				s.Set(v)
			}
		}
		imgui.Separator()
		imgui.TextDisabled(fmt.Sprintf("%.0f FPS  %d tris  %d lights", stats.FPS, stats.Triangles, stats.Lights))
		p.hovered = imgui.IsWindowHovered()
	}
	imgui.End()
}

// Hovered reports whether the pointer was over the panel last frame.
func (p *Panel) Hovered() bool {
	return p.hovered
}

// DrawScene draws the rendered frame as a full-window background image.
func DrawScene(textureID uint32, width, height float32) {
	if textureID == 0 {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(width, height))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageV(*texRef,
			imgui.NewVec2(width, height),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// DrawToast shows a short message centred at the bottom of the viewport.
func DrawToast(msg string, width, height float32) {
	msgWidth := float32(360)
	imgui.SetNextWindowPos(imgui.NewVec2((width-msgWidth)/2, height-60))
	imgui.SetNextWindowSize(imgui.NewVec2(msgWidth, 0))
	imgui.SetNextWindowBgAlpha(0.8)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize
	if imgui.BeginV("##Toast", nil, flags) {
		imgui.TextColored(imgui.NewVec4(0.2, 1.0, 0.2, 1.0), msg)
	}
	imgui.End()
}
