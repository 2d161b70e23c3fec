// Package demo implements the directional lighting demo: one lit mesh,
// two sliders, and a redraw whenever either slider moves.
package demo

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/dirlight/internal/config"
	"github.com/Faultbox/dirlight/internal/engine/camera"
	"github.com/Faultbox/dirlight/internal/engine/debug"
	"github.com/Faultbox/dirlight/internal/engine/input"
	"github.com/Faultbox/dirlight/internal/engine/lighting"
	"github.com/Faultbox/dirlight/internal/engine/model"
	"github.com/Faultbox/dirlight/internal/engine/renderer"
	"github.com/Faultbox/dirlight/internal/engine/ui2d"
	"github.com/Faultbox/dirlight/internal/engine/window"
	"github.com/Faultbox/dirlight/internal/logger"
	"github.com/Faultbox/dirlight/pkg/math"
)

const (
	title = "Directional Lighting"

	// How long Wait blocks before checking again. Nothing animates, so
	// this only bounds shutdown latency.
	waitTimeoutMs = 500

	panelW = 280
	panelH = 200
)

// App is the demo instance.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	ui          *ui2d.Context
	screenshots *debug.ScreenshotCapture

	controls *Controls
	camera   *camera.LookAtCamera
	light    lighting.Directional

	running    bool
	dirty      bool
	showPanel  bool
	screenshot bool

	// Window size in screen coordinates; drives the aspect ratio and UI.
	winW, winH int
}

// New creates the window, GPU resources and UI. A missing graphics context
// is reported as an error and nothing is left open.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:       cfg,
		log:       logger.Named("demo"),
		camera:    CameraFromConfig(cfg.Scene),
		showPanel: cfg.Debug.ShowPanel,
	}

	if cfg.Light.UseAngles {
		a.light = lighting.FromAngles(cfg.Light.Azimuth, cfg.Light.Elevation)
	} else {
		a.light = lighting.NewDirectional(cfg.Light.Direction)
	}

	a.controls = NewControls(Limits{
		RotationMin: cfg.Controls.RotationMin,
		RotationMax: cfg.Controls.RotationMax,
		YMin:        cfg.Controls.YMin,
		YMax:        cfg.Controls.YMax,
	}, cfg.Controls.RotationDegrees, cfg.Controls.TranslationY)

	a.log.Info("initializing demo",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Float32("rotation_deg", a.controls.State().RotationDegrees()),
		zap.Float32("y", a.controls.State().Translation.Y),
	)

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:       title,
		Width:       cfg.Graphics.Width,
		Height:      cfg.Graphics.Height,
		Fullscreen:  cfg.Graphics.Fullscreen,
		VSync:       cfg.Graphics.VSync,
		MSAASamples: cfg.Graphics.MSAASamples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	a.winW, a.winH = a.window.GetSize()
	drawW, drawH := a.window.GetDrawableSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:      drawW,
		Height:     drawH,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Geometry is uploaded once and lives as long as the process.
	mesh := model.LetterMesh()
	if err := a.renderer.Upload(mesh); err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}
	bounds := mesh.Bounds()
	center := bounds.Center()
	a.log.Debug("letter mesh uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Float32s("min", bounds.Min[:]),
		zap.Float32s("max", bounds.Max[:]),
		zap.Float32s("center", center[:]),
	)

	a.ui, err = ui2d.NewContext(a.winW, a.winH)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create UI: %w", err)
	}

	a.input = input.New()
	a.screenshots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "dirlight")

	a.log.Info("demo initialized successfully")
	return a, nil
}

// Run draws once and then redraws only in response to input.
func (a *App) Run() error {
	a.running = true

	a.log.Info("starting event loop")
	a.drawFrame()

	for a.running {
		if a.input.Wait(waitTimeoutMs) {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		if a.dirty {
			a.drawFrame()
		}
	}

	return nil
}

// Close cleans up demo resources.
func (a *App) Close() {
	a.log.Info("closing demo")

	if a.ui != nil {
		a.ui.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// handleEvent applies one input event and marks the frame dirty when
// anything visible changed.
func (a *App) handleEvent(event input.Event) {
	uiIn := a.ui.Input()

	switch event.Type {
	case input.EventWindowResize:
		a.winW, a.winH = a.window.GetSize()
		drawW, drawH := a.window.GetDrawableSize()
		a.renderer.Resize(drawW, drawH)
		a.ui.Resize(a.winW, a.winH)
		a.dirty = true

	case input.EventWindowExposed:
		a.dirty = true

	case input.EventMouseMove:
		uiIn.MouseMove(float32(event.MouseX), float32(event.MouseY))
		a.dirty = a.dirty || a.showPanel

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			uiIn.MouseDown(float32(event.MouseX), float32(event.MouseY))
			a.dirty = a.dirty || a.showPanel
		}

	case input.EventMouseUp:
		if event.Button == sdl.BUTTON_LEFT {
			uiIn.MouseUp(float32(event.MouseX), float32(event.MouseY))
			a.dirty = a.dirty || a.showPanel
		}

	case input.EventKeyDown:
		a.handleKey(event)
	}
}

// handleKey maps keyboard shortcuts onto the same controls as the sliders.
func (a *App) handleKey(event input.Event) {
	rotStep := a.cfg.Controls.RotationStep
	yStep := a.cfg.Controls.YStep
	if event.Shift {
		rotStep *= 10
		yStep *= 10
	}

	changed := false
	switch event.Key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_LEFT:
		changed = a.controls.NudgeRotation(-rotStep)
	case sdl.SCANCODE_RIGHT:
		changed = a.controls.NudgeRotation(rotStep)
	case sdl.SCANCODE_UP:
		changed = a.controls.NudgeY(yStep)
	case sdl.SCANCODE_DOWN:
		changed = a.controls.NudgeY(-yStep)
	case sdl.SCANCODE_R:
		changed = a.controls.Reset()
	case sdl.SCANCODE_TAB:
		a.showPanel = !a.showPanel
		changed = true
	case sdl.SCANCODE_F12:
		a.screenshot = true
		changed = true
	}

	if changed {
		a.logState("keyboard")
		a.dirty = true
	}
}

// drawFrame renders the scene and the panel, then presents. If the panel
// moved a slider, the frame is drawn again so the mesh matches the sliders
// in the presented image.
func (a *App) drawFrame() {
	for pass := 0; pass < 2; pass++ {
		a.renderer.Begin()
		a.drawScene()
		if !a.drawPanel() {
			break
		}
		a.logState("slider")
	}

	if a.screenshot {
		a.screenshot = false
		a.captureScreenshot()
	}

	st := a.controls.State()
	a.window.SetTitle(fmt.Sprintf("%s - rotation %.0f, y %.0f", title, st.RotationDegrees(), st.Translation.Y))

	a.window.SwapBuffers()
	a.dirty = false
}

// drawScene draws the letter with the current transforms.
func (a *App) drawScene() {
	aspect := float32(1)
	if a.winH > 0 {
		aspect = float32(a.winW) / float32(a.winH)
	}

	f := ComputeFrame(a.camera, a.controls.State(), aspect)
	a.renderer.DrawMesh(renderer.Uniforms{
		WorldViewProjection:   f.WorldViewProjection,
		WorldInverseTranspose: f.WorldInverseTranspose,
		Color:                 a.cfg.Scene.Color,
		ReverseLightDirection: a.light.Reverse(),
	})
}

// drawPanel draws the slider panel. Returns true if a slider changed the
// state.
func (a *App) drawPanel() bool {
	if !a.showPanel {
		return false
	}

	st := a.controls.State()
	lim := a.controls.Limits()
	changed := false

	a.ui.Begin()
	screenW, _ := a.ui.GetScreenSize()
	x := screenW - panelW - 10
	if a.ui.BeginWindow("controls", x, 10, panelW, panelH, title) {
		if v, ok := a.ui.Slider("rotation", "rotation", 0, st.RotationDegrees(),
			lim.RotationMin, lim.RotationMax, a.cfg.Controls.RotationStep); ok {
			changed = a.controls.SetRotationDegrees(v) || changed
		}

		if v, ok := a.ui.Slider("y", "y", 0, st.Translation.Y,
			lim.YMin, lim.YMax, a.cfg.Controls.YStep); ok {
			changed = a.controls.SetTranslationY(v) || changed
		}

		a.ui.Separator()
		a.ui.Row(16)
		n := a.frontFaceNormal()
		a.ui.LabelColored(fmt.Sprintf("front face light %.2f", a.light.Intensity(n)),
			ui2d.FromArray(a.light.Shade(a.cfg.Scene.Color, n)).Lighten(0.35))
		a.ui.Row(16)
		a.ui.Label("arrows nudge, Tab hides")

		a.ui.Row(24)
		if a.ui.Button("reset", 0, "Reset") {
			changed = a.controls.Reset() || changed
		}
		a.ui.EndWindow()
	}
	a.ui.End()

	return changed
}

// frontFaceNormal is the letter's front face normal after the current
// rotation, as the vertex shader passes it to the fragment shader.
func (a *App) frontFaceNormal() math.Vec3 {
	f := ComputeFrame(a.camera, a.controls.State(), 1)
	return f.WorldInverseTranspose.TransformDirection(math.Vec3{Z: 1})
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) logState(source string) {
	st := a.controls.State()
	a.log.Debug("state changed",
		zap.String("source", source),
		zap.Float32("rotation_rad", st.RotationRadians),
		zap.Float32("y", st.Translation.Y),
	)
}
