package camera

import (
	gomath "math"

	"github.com/Faultbox/hauntedhouse/pkg/math"
)

const pitchLimit = gomath.Pi/2 - 0.000001

// OrbitControls orbits a camera around a target point. Drag and zoom input
// is accumulated and applied by Update, easing out over several frames
// when damping is enabled.
type OrbitControls struct {
	Camera *Camera
	Target math.Vec3

	// Spherical coordinates of the camera around Target
	Distance float32
	Pitch    float32 // elevation above the horizon, radians
	Yaw      float32 // rotation around +Y, radians; 0 looks down -Z from +Z

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	RotateSpeed float32
	ZoomSpeed   float32

	EnableDamping bool
	DampingFactor float32

	yawDelta   float32
	pitchDelta float32
	zoomScale  float32
}

// NewOrbitControls attaches controls to cam, deriving the spherical
// coordinates from the camera's current position around target.
func NewOrbitControls(cam *Camera, target math.Vec3) *OrbitControls {
	c := &OrbitControls{
		Camera:        cam,
		Target:        target,
		MinDistance:   0.5,
		MaxDistance:   40,
		MinPitch:      -pitchLimit,
		MaxPitch:      pitchLimit,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		EnableDamping: true,
		DampingFactor: 0.05,
		zoomScale:     1,
	}
	c.syncFromCamera()
	c.apply()
	return c
}

func (c *OrbitControls) syncFromCamera() {
	offset := c.Camera.Position.Sub(c.Target)
	c.Distance = offset.Length()
	if c.Distance == 0 {
		c.Distance = 1
		c.Pitch, c.Yaw = 0, 0
		return
	}
	c.Pitch = float32(gomath.Asin(float64(offset.Y / c.Distance)))
	c.Yaw = float32(gomath.Atan2(float64(offset.X), float64(offset.Z)))
}

// Offset returns the camera position relative to the target.
func (c *OrbitControls) Offset() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))
	return math.Vec3{X: x, Y: y, Z: z}
}

// HandleDrag queues a rotation for a pointer drag of deltaX, deltaY pixels
// over a viewport viewportHeight pixels tall. Dragging the full height
// turns the camera once around.
func (c *OrbitControls) HandleDrag(deltaX, deltaY, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	k := 2 * gomath.Pi / viewportHeight * c.RotateSpeed
	c.yawDelta -= deltaX * k
	c.pitchDelta += deltaY * k
}

// HandleZoom queues a dolly for wheel delta notches; positive moves closer.
func (c *OrbitControls) HandleZoom(delta float32) {
	c.zoomScale *= float32(gomath.Pow(0.95, float64(delta*c.ZoomSpeed)))
}

// Update applies queued input and moves the camera. It reports whether
// the camera moved.
func (c *OrbitControls) Update() bool {
	before := c.Camera.Position

	if c.EnableDamping {
		c.Yaw += c.yawDelta * c.DampingFactor
		c.Pitch += c.pitchDelta * c.DampingFactor
		c.yawDelta *= 1 - c.DampingFactor
		c.pitchDelta *= 1 - c.DampingFactor
	} else {
		c.Yaw += c.yawDelta
		c.Pitch += c.pitchDelta
		c.yawDelta, c.pitchDelta = 0, 0
	}

	c.Pitch = min(max(c.Pitch, c.MinPitch), c.MaxPitch)
	c.Yaw = wrapAngle(c.Yaw)

	c.Distance = min(max(c.Distance*c.zoomScale, c.MinDistance), c.MaxDistance)
	c.zoomScale = 1

	c.apply()
	return c.Camera.Position.Distance(before) > 1e-6
}

func (c *OrbitControls) apply() {
	c.Camera.Target = c.Target
	c.Camera.Position = c.Target.Add(c.Offset())
}

func wrapAngle(a float32) float32 {
	const twoPi = 2 * gomath.Pi
	if a > gomath.Pi || a < -gomath.Pi {
		a = float32(gomath.Remainder(float64(a), twoPi))
	}
	return a
}
