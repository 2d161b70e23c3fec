package ui2d

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

// newTestContext builds a Context whose renderer only batches vertices,
// so widgets can run without a GL context.
func newTestContext() *Context {
	return &Context{
		renderer: &Renderer{
			screenWidth:  800,
			screenHeight: 600,
			font:         newFontAtlas(basicfont.Face7x13),
		},
		input:   &InputState{},
		windows: make(map[string]*WindowState),
	}
}

// frame runs one UI frame with a 300x200 window at the origin.
func frame(c *Context, widgets func()) {
	c.input.Update()
	c.renderer.Begin()
	if c.BeginWindow("panel", 0, 0, 300, 200, "test") {
		widgets()
		c.EndWindow()
	}
	c.input.EndFrame()
}

// The first widget in the test window sits at x=8, width 284. A slider's
// label is 13px tall, so its track spans y 47..67.
const (
	trackLeft  = 8
	trackMid   = 8 + 142
	trackY     = 57
	belowTrack = 150
)

func TestSliderInteraction(t *testing.T) {
	type step struct {
		input       func(in *InputState)
		wantValue   float32
		wantChanged bool
		wantActive  bool
	}

	tests := []struct {
		name  string
		start float32
		steps []step
	}{
		{
			name:  "quick click jumps to cursor",
			start: -360,
			steps: []step{
				{func(in *InputState) { in.MouseDown(trackMid, trackY); in.MouseUp(trackMid, trackY) }, 0, true, false},
			},
		},
		{
			name:  "held press jumps and starts drag",
			start: -360,
			steps: []step{
				{func(in *InputState) { in.MouseDown(trackMid, trackY) }, 0, true, true},
			},
		},
		{
			name:  "drag follows mouse outside track then releases",
			start: 100,
			steps: []step{
				{func(in *InputState) { in.MouseDown(trackMid, trackY) }, 0, true, true},
				{func(in *InputState) { in.MouseMove(trackLeft+71, belowTrack) }, -180, true, true},
				{func(in *InputState) { in.MouseMove(-50, belowTrack) }, -360, true, true},
				{func(in *InputState) { in.MouseUp(-50, belowTrack) }, -360, false, false},
			},
		},
		{
			name:  "press outside track is ignored",
			start: 42,
			steps: []step{
				{func(in *InputState) { in.MouseDown(trackMid, belowTrack) }, 42, false, false},
				{func(in *InputState) { in.MouseMove(trackMid, trackY) }, 42, false, false},
			},
		},
		{
			name:  "hover without press changes nothing",
			start: 42,
			steps: []step{
				{func(in *InputState) { in.MouseMove(trackMid, trackY) }, 42, false, false},
			},
		},
		{
			name:  "click on current value reports no change",
			start: 0,
			steps: []step{
				{func(in *InputState) { in.MouseDown(trackMid, trackY); in.MouseUp(trackMid, trackY) }, 0, false, false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext()
			value := tt.start

			for i, s := range tt.steps {
				s.input(c.input)

				var got float32
				var changed bool
				frame(c, func() {
					got, changed = c.Slider("rot", "rotation", 0, value, -360, 360, 1)
				})

				if got != s.wantValue || changed != s.wantChanged {
					t.Errorf("step %d: Slider() = (%v, %v), want (%v, %v)", i, got, changed, s.wantValue, s.wantChanged)
				}
				if active := c.activeWidget == "panel_rot"; active != s.wantActive {
					t.Errorf("step %d: slider active = %v, want %v", i, active, s.wantActive)
				}
				value = got
			}
		})
	}
}

func TestSliderConsumesPress(t *testing.T) {
	c := newTestContext()
	c.input.MouseDown(trackMid, trackY)

	var clicked bool
	frame(c, func() {
		c.Slider("rot", "rotation", 0, -360, -360, 360, 1)
		// A second widget drawn at the same cursor row must not see the press.
		c.cursorY = 30
		clicked = c.Button("ok", 0, "OK")
	})

	if clicked {
		t.Error("press handled by the slider also clicked a later widget")
	}
}

func TestButtonClick(t *testing.T) {
	// Without a Row the button is 28px tall starting at y=30.
	tests := []struct {
		name  string
		input func(in *InputState)
		want  bool
	}{
		{"press inside", func(in *InputState) { in.MouseDown(100, 40) }, true},
		{"quick click inside", func(in *InputState) { in.MouseDown(100, 40); in.MouseUp(100, 40) }, true},
		{"press outside", func(in *InputState) { in.MouseDown(100, 120) }, false},
		{"hover only", func(in *InputState) { in.MouseMove(100, 40) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext()
			tt.input(c.input)

			var clicked bool
			frame(c, func() { clicked = c.Button("reset", 0, "Reset") })
			if clicked != tt.want {
				t.Errorf("Button() = %v, want %v", clicked, tt.want)
			}
		})
	}
}

func TestButtonClicksOncePerPress(t *testing.T) {
	c := newTestContext()
	c.input.MouseDown(100, 40)

	clicks := 0
	for i := 0; i < 3; i++ {
		frame(c, func() {
			if c.Button("reset", 0, "Reset") {
				clicks++
			}
		})
	}
	if clicks != 1 {
		t.Errorf("held press clicked %d times, want 1", clicks)
	}

	c.input.MouseUp(100, 40)
	frame(c, func() { c.Button("reset", 0, "Reset") })
	if c.activeWidget != "" {
		t.Errorf("activeWidget = %q after release, want empty", c.activeWidget)
	}
}
