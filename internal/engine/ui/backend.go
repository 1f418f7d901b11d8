// Package ui hosts the window, the debug panel and pointer input on top of
// the ImGui SDL backend.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hauntedhouse/internal/logger"
)

// Backend wraps the ImGui SDL backend: it owns the window, the GL context
// and the event loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the window and initialises OpenGL.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})

	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.log.Info("window created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("gl_renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return b, nil
}

// Run starts the main loop, calling frame once per displayed frame until
// the window is closed.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// DisplaySize returns the window size in logical pixels.
func DisplaySize() (width, height float32) {
	size := imgui.CurrentIO().DisplaySize()
	return size.X, size.Y
}

// FramebufferScale returns how many framebuffer pixels back one logical
// pixel, the display's device pixel ratio.
func FramebufferScale() float32 {
	scale := imgui.CurrentIO().DisplayFramebufferScale()
	return max(scale.X, scale.Y)
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// Display reads the current window metrics from ImGui.
type Display struct{}

// Size returns the window size in logical pixels.
func (Display) Size() (width, height float32) {
	return DisplaySize()
}

// PixelRatio returns the device pixel ratio of the window.
func (Display) PixelRatio() float32 {
	return FramebufferScale()
}
