// Package config handles demo configuration loading and validation.
package config

import "fmt"

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Light    LightConfig    `yaml:"light"`
	Controls ControlsConfig `yaml:"controls"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Fullscreen  bool       `yaml:"fullscreen"`
	VSync       bool       `yaml:"vsync"`
	MSAASamples int        `yaml:"msaa_samples"`
	ClearColor  [4]float32 `yaml:"clear_color"`
}

// SceneConfig holds the fixed camera and object parameters.
type SceneConfig struct {
	FieldOfViewDegrees float32    `yaml:"fov_degrees"`
	ZNear              float32    `yaml:"z_near"`
	ZFar               float32    `yaml:"z_far"`
	Camera             [3]float32 `yaml:"camera"`
	Target             [3]float32 `yaml:"target"`
	Up                 [3]float32 `yaml:"up"`
	Color              [4]float32 `yaml:"color"`
}

// LightConfig describes the directional light. When UseAngles is set the
// direction is derived from Azimuth and Elevation instead of Direction.
type LightConfig struct {
	Direction [3]float32 `yaml:"direction"`
	UseAngles bool       `yaml:"use_angles"`
	Azimuth   float32    `yaml:"azimuth"`
	Elevation float32    `yaml:"elevation"`
}

// ControlsConfig holds slider ranges, keyboard steps and starting values.
type ControlsConfig struct {
	RotationDegrees float32 `yaml:"rotation_degrees"`
	TranslationY    float32 `yaml:"translation_y"`

	RotationMin float32 `yaml:"rotation_min"`
	RotationMax float32 `yaml:"rotation_max"`
	YMin        float32 `yaml:"y_min"`
	YMax        float32 `yaml:"y_max"`

	// Keyboard nudges; Shift multiplies by 10
	RotationStep float32 `yaml:"rotation_step"`
	YStep        float32 `yaml:"y_step"`
}

// DebugConfig holds debugging helpers.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowPanel     bool   `yaml:"show_panel"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's stock scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       1280,
			Height:      720,
			Fullscreen:  false,
			VSync:       true,
			MSAASamples: 4,
			ClearColor:  [4]float32{0, 0, 0, 0},
		},
		Scene: SceneConfig{
			FieldOfViewDegrees: 60,
			ZNear:              1,
			ZFar:               2000,
			Camera:             [3]float32{100, 150, 200},
			Target:             [3]float32{0, 35, 0},
			Up:                 [3]float32{0, 1, 0},
			Color:              [4]float32{1, 0.1, 0.5, 1},
		},
		Light: LightConfig{
			Direction: [3]float32{0.5, 0.7, 1},
		},
		Controls: ControlsConfig{
			RotationDegrees: 0,
			TranslationY:    0,
			RotationMin:     -360,
			RotationMax:     360,
			YMin:            -200,
			YMax:            200,
			RotationStep:    1,
			YStep:           1,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
			ShowPanel:     true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that would produce a broken scene.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("graphics: invalid window size %dx%d", g.Width, g.Height)
	}
	if g.MSAASamples < 0 {
		return fmt.Errorf("graphics: msaa_samples must not be negative, got %d", g.MSAASamples)
	}

	s := c.Scene
	if s.FieldOfViewDegrees <= 0 || s.FieldOfViewDegrees >= 180 {
		return fmt.Errorf("scene: fov_degrees must be in (0, 180), got %g", s.FieldOfViewDegrees)
	}
	if s.ZNear <= 0 {
		return fmt.Errorf("scene: z_near must be positive, got %g", s.ZNear)
	}
	if s.ZFar <= s.ZNear {
		return fmt.Errorf("scene: z_far (%g) must be greater than z_near (%g)", s.ZFar, s.ZNear)
	}
	if s.Camera == s.Target {
		return fmt.Errorf("scene: camera and target coincide at %v", s.Camera)
	}
	if s.Up == ([3]float32{}) {
		return fmt.Errorf("scene: up vector is zero")
	}
	if parallel(sub3(s.Target, s.Camera), s.Up) {
		return fmt.Errorf("scene: up %v is parallel to the view direction", s.Up)
	}

	if !c.Light.UseAngles && c.Light.Direction == ([3]float32{}) {
		return fmt.Errorf("light: direction is zero")
	}

	k := c.Controls
	if k.RotationMin >= k.RotationMax {
		return fmt.Errorf("controls: rotation_min (%g) must be below rotation_max (%g)", k.RotationMin, k.RotationMax)
	}
	if k.YMin >= k.YMax {
		return fmt.Errorf("controls: y_min (%g) must be below y_max (%g)", k.YMin, k.YMax)
	}
	if k.RotationStep < 0 || k.YStep < 0 {
		return fmt.Errorf("controls: steps must not be negative")
	}
	return nil
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// parallel reports whether a and b have a zero cross product, which
// leaves a look-at basis undefined.
func parallel(a, b [3]float32) bool {
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	return x == 0 && y == 0 && z == 0
}
