package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagRotation   = flag.Float64("rotation", 0, "Initial rotation in degrees")
	flagY          = flag.Float64("y", 0, "Initial vertical translation")
	flagNoPanel    = flag.Bool("no-panel", false, "Hide the slider panel (keyboard only)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	// Zero is a meaningful starting value, so only explicit flags count.
	if set["rotation"] {
		cfg.Controls.RotationDegrees = float32(*flagRotation)
	}
	if set["y"] {
		cfg.Controls.TranslationY = float32(*flagY)
	}
	if *flagNoPanel {
		cfg.Debug.ShowPanel = false
	}
}
