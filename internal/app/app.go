// Package app runs the haunted house scene: it owns the world, the camera
// and the renderer and advances them once per displayed frame.
package app

import (
	"errors"
	"fmt"
	"image"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/hauntedhouse/internal/config"
	"github.com/Faultbox/hauntedhouse/internal/engine/audio"
	"github.com/Faultbox/hauntedhouse/internal/engine/camera"
	"github.com/Faultbox/hauntedhouse/internal/engine/debug"
	"github.com/Faultbox/hauntedhouse/internal/engine/scene"
	"github.com/Faultbox/hauntedhouse/internal/engine/ui"
	"github.com/Faultbox/hauntedhouse/internal/logger"
	"github.com/Faultbox/hauntedhouse/internal/world"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// toastSeconds is how long status messages stay on screen.
const toastSeconds = 2

// Renderer draws a scene into an offscreen target.
type Renderer interface {
	Render(sc *scene.Scene, cam *camera.Camera) uint32
	Resize(width, height int32)
	CaptureImage() *image.RGBA
	Stats() (meshes, lights int)
}

// Viewport reports the window the frame is presented in.
type Viewport interface {
	Size() (width, height float32)
	PixelRatio() float32
}

// App is a running scene.
type App struct {
	cfg *config.Config
	log *zap.Logger

	clock    *Clock
	world    *world.World
	camera   *camera.Camera
	controls *camera.OrbitControls
	renderer Renderer
	viewport Viewport

	orbit       ui.OrbitInput
	panel       *ui.Panel
	audio       *audio.Ambient
	screenshots *debug.Screenshots

	fps       fpsCounter
	triangles int

	// Logical window size and render target size of the current frame
	width, height    float32
	renderW, renderH int32

	toast      string
	toastUntil float64
}

// New wires a built world to a renderer. The camera starts at (0, 10, 10)
// orbiting the origin.
func New(cfg *config.Config, w *world.World, r Renderer, vp Viewport) *App {
	g := cfg.Graphics
	cam := camera.NewPerspective(g.FOV, float32(g.Width)/float32(g.Height), g.Near, g.Far)
	cam.Position = math.Vec3{X: 0, Y: 10, Z: 10}

	panel := ui.NewPanel(ui.DisplacementSliders("floor", w.Floor)...)
	panel.Visible = cfg.Debug.ShowPanel

	return &App{
		cfg:         cfg,
		log:         logger.Named("app"),
		clock:       NewClock(nil),
		world:       w,
		camera:      cam,
		controls:    camera.NewOrbitControls(cam, math.Vec3{}),
		renderer:    r,
		viewport:    vp,
		panel:       panel,
		screenshots: debug.NewScreenshots(cfg.Debug.ScreenshotDir, "hauntedhouse"),
		triangles:   w.Scene.Stats().Triangles,
	}
}

// WorldOptions maps the scene settings of cfg to build options.
func WorldOptions(cfg *config.Config) world.Options {
	opts := world.DefaultOptions()
	opts.GraveCount = cfg.Scene.GraveCount
	opts.GraveInnerRadius = float32(cfg.Scene.GraveInnerRadius)
	opts.GraveOuterRadius = float32(cfg.Scene.GraveOuterRadius)
	opts.FloorDisplacementScale = cfg.Scene.FloorDisplacementScale
	opts.FloorDisplacementBias = cfg.Scene.FloorDisplacementBias
	opts.FogDensity = cfg.Scene.FogDensity
	if size := int(cfg.Graphics.ShadowMapSize); size > 0 {
		opts.SunShadowMapSize = size
		opts.GhostShadowMapSize = size
	}
	return opts
}

// AttachAudio hands the ambient player to the app, which then owns it.
func (a *App) AttachAudio(amb *audio.Ambient) {
	a.audio = amb
}

// Camera returns the scene camera.
func (a *App) Camera() *camera.Camera {
	return a.camera
}

// Frame draws one frame. It is the render callback of the UI backend.
func (a *App) Frame() {
	p := ui.SamplePointer(a.panel.Hovered())
	t, tex := a.advance(p)

	a.handleKeys(t)

	ui.DrawScene(tex, a.width, a.height)

	if a.fps.tick(t) {
		a.log.Debug("fps", zap.Float32("fps", a.fps.fps))
	}
	_, lights := a.renderer.Stats()
	a.panel.Draw(a.width, ui.PanelStats{
		FPS:       a.fps.fps,
		Triangles: a.triangles,
		Lights:    lights,
	})

	if a.toast != "" && t < a.toastUntil {
		ui.DrawToast(a.toast, a.width, a.height)
	}
}

// advance runs the scene part of a frame: viewport sync, ghost animation,
// camera input and the render itself. It returns the elapsed time and the
// texture holding the frame.
func (a *App) advance(p ui.Pointer) (float64, uint32) {
	a.syncViewport()

	t := a.clock.Elapsed()
	a.world.Animate(t)

	a.orbit.Apply(p, a.height, a.controls)
	a.controls.Update()

	return t, a.renderer.Render(a.world.Scene, a.camera)
}

// syncViewport follows window size and pixel ratio changes, resizing the
// camera projection and the render target. The scene is not touched.
// It reports whether anything was resized.
func (a *App) syncViewport() bool {
	w, h := a.viewport.Size()
	if w <= 0 || h <= 0 {
		// minimised
		return false
	}
	a.width, a.height = w, h

	ratio := ui.PixelRatio(a.viewport.PixelRatio(), a.cfg.Graphics.MaxPixelRatio)
	rw, rh := ui.RenderSize(w, h, ratio)
	if rw == a.renderW && rh == a.renderH {
		return false
	}

	a.camera.Resize(int(rw), int(rh))
	a.renderer.Resize(rw, rh)
	a.renderW, a.renderH = rw, rh

	a.log.Debug("viewport resized",
		zap.Float32("width", w),
		zap.Float32("height", h),
		zap.Float32("pixel_ratio", ratio),
		zap.Float32("aspect", a.camera.Aspect),
	)
	return true
}

func (a *App) handleKeys(t float64) {
	// F12 = screenshot of the rendered scene
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.screenshot(t)
	}
	// M = toggle ambient audio
	if ui.IsKeyPressed(imgui.KeyM) {
		a.toggleAudio(t)
	}
	// H = toggle debug panel
	if ui.IsKeyPressed(imgui.KeyH) {
		a.panel.Visible = !a.panel.Visible
	}
}

// toggleAudio mutes or restores the ambient track. Without a player it
// does nothing.
func (a *App) toggleAudio(t float64) {
	if a.audio == nil {
		return
	}
	if a.audio.ToggleMute() {
		a.notify(t, "Audio muted")
		return
	}
	a.notify(t, fmt.Sprintf("Audio on (%.0f%%)", a.audio.Volume()*100))
}

// screenshot saves the last rendered frame and reports the result on screen.
func (a *App) screenshot(t float64) {
	var (
		path string
		err  error
	)
	if img := a.renderer.CaptureImage(); img != nil {
		path, err = a.screenshots.Save(img)
	} else {
		err = errors.New("nothing rendered yet")
	}
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		a.notify(t, fmt.Sprintf("Screenshot failed: %v", err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
	a.notify(t, "Saved "+path)
}

func (a *App) notify(t float64, msg string) {
	a.toast = msg
	a.toastUntil = t + toastSeconds
}

// Close stops audio playback.
func (a *App) Close() {
	if a.audio != nil {
		a.audio.Close()
	}
	a.log.Info("app closed")
}
