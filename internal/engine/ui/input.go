package ui

import "github.com/AllenDang/cimgui-go/imgui"

// Pointer is the mouse state sampled for one frame.
type Pointer struct {
	X, Y  float32
	Down  bool    // primary button held
	Wheel float32 // notches scrolled this frame, positive away from the user
	// Captured is set when the pointer is over, or interacting with, a panel.
	Captured bool
}

// SamplePointer reads the pointer state from ImGui. captured reports
// whether a panel owns the pointer this frame.
func SamplePointer(captured bool) Pointer {
	pos := imgui.MousePos()
	return Pointer{
		X:        pos.X,
		Y:        pos.Y,
		Down:     imgui.IsMouseDown(imgui.MouseButtonLeft),
		Wheel:    imgui.CurrentIO().MouseWheel(),
		Captured: captured || imgui.IsAnyItemActive(),
	}
}

// Orbiter receives camera gestures.
type Orbiter interface {
	HandleDrag(deltaX, deltaY, viewportHeight float32)
	HandleZoom(delta float32)
}

// OrbitInput turns pointer samples into orbit gestures. A drag starts only
// when the button goes down over the scene, and then follows the pointer
// until release even across panels.
type OrbitInput struct {
	lastX, lastY float32
	dragging     bool
	wasDown      bool
}

// Apply feeds one frame of pointer state to target.
func (o *OrbitInput) Apply(p Pointer, viewportHeight float32, target Orbiter) {
	pressed := p.Down && !o.wasDown
	o.wasDown = p.Down

	switch {
	case pressed && !p.Captured:
		o.dragging = true
	case !p.Down:
		o.dragging = false
	case o.dragging:
		if dx, dy := p.X-o.lastX, p.Y-o.lastY; dx != 0 || dy != 0 {
			target.HandleDrag(dx, dy, viewportHeight)
		}
	}
	o.lastX, o.lastY = p.X, p.Y

	if p.Wheel != 0 && !p.Captured {
		target.HandleZoom(p.Wheel)
	}
}

// Dragging reports whether a drag is in progress.
func (o *OrbitInput) Dragging() bool {
	return o.dragging
}
