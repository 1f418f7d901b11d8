// Package config handles application configuration loading and management.
package config

import "fmt"

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"`
	Shadows       bool    `yaml:"shadows"`
	ShadowMapSize int32   `yaml:"shadow_map_size"`
	FOV           float32 `yaml:"fov"` // Vertical field of view, degrees
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
}

// SceneConfig holds the tunables of the haunted house scene.
type SceneConfig struct {
	Seed                   int64   `yaml:"seed"` // 0 seeds from the clock at startup
	GraveCount             int     `yaml:"grave_count"`
	GraveInnerRadius       float64 `yaml:"grave_inner_radius"`
	GraveOuterRadius       float64 `yaml:"grave_outer_radius"`
	FloorDisplacementScale float32 `yaml:"floor_displacement_scale"`
	FloorDisplacementBias  float32 `yaml:"floor_displacement_bias"`
	FogDensity             float32 `yaml:"fog_density"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	Root string `yaml:"root"` // Directory containing floor/, brick/, roof/, ...
}

// AudioConfig holds ambient audio settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	AmbientTrack string  `yaml:"ambient_track"` // WAV file, relative to the asset root
	Volume       float64 `yaml:"volume"`
	Muted        bool    `yaml:"muted"` // start muted; M toggles
}

// Active reports whether an ambient player should be opened at all.
func (a AudioConfig) Active() bool {
	return a.Enabled && a.AmbientTrack != ""
}

// DebugConfig holds debug tooling settings.
type DebugConfig struct {
	ShowPanel     bool   `yaml:"show_panel"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			MaxPixelRatio: 2,
			Shadows:       true,
			ShadowMapSize: 256,
			FOV:           75,
			Near:          0.1,
			Far:           1000,
		},
		Scene: SceneConfig{
			Seed:                   0,
			GraveCount:             30,
			GraveInnerRadius:       3,
			GraveOuterRadius:       7,
			FloorDisplacementScale: 0.3,
			FloorDisplacementBias:  -0.2,
			FogDensity:             0.1,
		},
		Assets: AssetsConfig{
			Root: "assets",
		},
		Audio: AudioConfig{
			Enabled:      true,
			AmbientTrack: "",
			Volume:       0.6,
			Muted:        false,
		},
		Debug: DebugConfig{
			ShowPanel:     true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the application cannot start with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("graphics: invalid clip range [%g, %g]", c.Graphics.Near, c.Graphics.Far)
	}
	if c.Scene.GraveCount < 0 {
		return fmt.Errorf("scene: negative grave count %d", c.Scene.GraveCount)
	}
	if c.Scene.GraveInnerRadius < 0 || c.Scene.GraveOuterRadius < c.Scene.GraveInnerRadius {
		return fmt.Errorf("scene: invalid grave annulus [%g, %g]", c.Scene.GraveInnerRadius, c.Scene.GraveOuterRadius)
	}
	return nil
}
