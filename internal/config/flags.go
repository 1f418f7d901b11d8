package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagSeed      = flag.Int64("seed", 0, "Grave placement seed (0 = random)")
	flagAssets    = flag.String("assets", "", "Asset root directory")
	flagNoShadows = flag.Bool("no-shadows", false, "Disable shadow mapping")
	flagNoAudio   = flag.Bool("no-audio", false, "Disable ambient audio")
	flagInit      = flag.Bool("init-config", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// InitRequested reports whether --init-config was given.
func InitRequested() bool {
	return *flagInit
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowPanel = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagAssets != "" {
		cfg.Assets.Root = *flagAssets
	}
	if *flagNoShadows {
		cfg.Graphics.Shadows = false
	}
	if *flagNoAudio {
		cfg.Audio.Enabled = false
	}
}
