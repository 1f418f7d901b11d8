// Package main is the entry point for the haunted house scene.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/hauntedhouse/internal/app"
	"github.com/Faultbox/hauntedhouse/internal/config"
	"github.com/Faultbox/hauntedhouse/internal/engine/audio"
	"github.com/Faultbox/hauntedhouse/internal/engine/renderer"
	"github.com/Faultbox/hauntedhouse/internal/engine/texture"
	"github.com/Faultbox/hauntedhouse/internal/engine/ui"
	"github.com/Faultbox/hauntedhouse/internal/logger"
	"github.com/Faultbox/hauntedhouse/internal/world"
)

const title = "Haunted House"

// maxTextureSize caps decoded texture dimensions.
const maxTextureSize = 2048

func init() {
	// SDL and OpenGL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fatal(fmt.Errorf("config: %w", err))
	}

	if config.InitRequested() {
		path, err := cfg.Save()
		if err != nil {
			fatal(fmt.Errorf("saving config: %w", err))
		}
		fmt.Println("config written to", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Haunted House ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("fatal error", zap.Error(err))
		logger.Sync()
		fatal(err)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	backend, err := ui.NewBackend(title, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	textures := texture.NewLoader(cfg.Assets.Root, maxTextureSize)
	defer textures.Destroy()

	// Renderer needs the GL context created with the window
	r, err := renderer.New(renderer.Config{
		Width:   int32(cfg.Graphics.Width),
		Height:  int32(cfg.Graphics.Height),
		Samples: 4,
		Shadows: cfg.Graphics.Shadows,
	}, textures)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Destroy()

	rng := world.NewRand(uint64(cfg.Scene.Seed), func() int64 { return time.Now().UnixNano() })
	w := world.Build(app.WorldOptions(cfg), rng)

	a := app.New(cfg, w, r, ui.Display{})
	defer a.Close()

	if cfg.Audio.Active() {
		amb := audio.New(cfg.Audio.Volume, cfg.Audio.Muted)
		if err := amb.Play(os.DirFS(cfg.Assets.Root), cfg.Audio.AmbientTrack); err != nil {
			// The scene works without sound.
			logger.Warn("ambient audio disabled", zap.Error(err))
		}
		a.AttachAudio(amb)
	}

	backend.Run(a.Frame)

	if n := textures.Failed(); n > 0 {
		logger.Warn("some textures could not be loaded", zap.Int("count", n))
	}
	return nil
}

// fatal reports err in a message box as well as on stderr, then exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	dialog.Message("%v", err).Title(title).Error()
	os.Exit(1)
}
