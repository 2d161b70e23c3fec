package ui2d

import (
	"fmt"
	"math"
)

// labelScale draws the 7x13 font at native size.
const labelScale = float32(1.0)

// Context is the main UI context that manages rendering and input.
type Context struct {
	renderer *Renderer
	input    *InputState

	// Widget currently holding the mouse
	activeWidget string

	// Window state
	windows map[string]*WindowState

	// Current window being drawn
	currentWindow *WindowState

	// Layout state
	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID     string
	X, Y   float32
	W, H   float32
	Open   bool
	Moving bool
	// Set once the user drags the window; BeginWindow then stops
	// overriding the position
	Dragged bool
}

// NewContext creates a new UI context.
func NewContext(width, height int) (*Context, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Context{
		renderer: r,
		input:    &InputState{},
		windows:  make(map[string]*WindowState),
	}, nil
}

// Close releases resources.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Close()
	}
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.renderer.Resize(width, height)
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.renderer.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.renderer.End()
	c.input.EndFrame()
}

// BeginWindow starts a new window.
// Returns false if the window is closed.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string) bool {
	// Get or create window state
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{
			ID:   id,
			X:    x,
			Y:    y,
			W:    w,
			H:    h,
			Open: true,
		}
		c.windows[id] = ws
	} else if !ws.Moving && !ws.Dragged {
		// Update position from parameters (allows anchoring on resize)
		ws.X = x
		ws.Y = y
		ws.W = w
		ws.H = h
	}

	if !ws.Open {
		return false
	}

	c.currentWindow = ws

	// Handle window dragging (title bar is top 22 pixels)
	titleBarH := float32(22)
	titleBarRect := Rect{ws.X, ws.Y, ws.W, titleBarH}

	if c.input.MouseLeftPressed && titleBarRect.Contains(c.input.MouseX, c.input.MouseY) {
		ws.Moving = true
		ws.Dragged = true
		c.activeWidget = id + "_titlebar"
	}

	if ws.Moving && c.input.MouseLeftDown {
		ws.X += c.input.MouseDeltaX
		ws.Y += c.input.MouseDeltaY
	}

	if c.input.MouseLeftReleased {
		ws.Moving = false
		if c.activeWidget == id+"_titlebar" {
			c.activeWidget = ""
		}
	}

	// Draw window
	c.renderer.DrawPanel(ws.X, ws.Y, ws.W, ws.H, ColorPanelBg, ColorPanelBorder)

	// Draw title bar
	c.renderer.DrawRect(ws.X+1, ws.Y+1, ws.W-2, titleBarH-1, ColorButtonNormal)

	// Draw title text
	scale := labelScale
	_, textH := c.renderer.MeasureText(title, scale)
	textY := ws.Y + (titleBarH-textH)/2
	c.renderer.DrawText(ws.X+8, textY, title, scale, ColorText)

	// Set cursor for content (below title bar, with padding)
	c.cursorX = ws.X + 8
	c.cursorY = ws.Y + titleBarH + 8
	c.rowH = 0

	return true
}

// EndWindow ends the current window.
func (c *Context) EndWindow() {
	c.currentWindow = nil
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	c.cursorX = c.currentWindow.X + 8
	c.cursorY += c.rowH + 4
	c.rowH = height
}

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.currentWindow == nil {
		return false
	}

	x := c.cursorX
	y := c.cursorY
	h := c.rowH
	if h == 0 {
		h = 28
	}
	if width == 0 {
		width = c.currentWindow.W - 16
	}

	fullID := c.currentWindow.ID + "_" + id
	rect := Rect{x, y, width, h}

	// Check interaction - click on press for better responsiveness
	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false

	if hovered {
		if c.input.MouseLeftPressed {
			c.activeWidget = fullID
			clicked = true // Click immediately on press
			// Consume the press so only one widget gets it
			c.input.MouseLeftPressed = false
		}
	}

	// Clear active state on release
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	// Draw button
	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}

	c.renderer.DrawRect(x, y, width, h, color)
	c.renderer.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	// Draw button label centered
	scale := labelScale
	textW, textH := c.renderer.MeasureText(label, scale)
	textX := x + (width-textW)/2
	textY := y + (h-textH)/2
	c.renderer.DrawText(textX, textY, label, scale, ColorText)

	// Advance cursor
	c.cursorX += width + 4

	return clicked
}

// Label draws a text label.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a text label with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	if c.currentWindow == nil {
		return
	}

	scale := labelScale
	c.renderer.DrawText(c.cursorX, c.cursorY, text, scale, color)

	// Advance cursor
	w, _ := c.renderer.MeasureText(text, scale)
	c.cursorX += w + 4
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.cursorY += c.rowH + 4
	c.rowH = 0
	x := c.currentWindow.X + 8
	w := c.currentWindow.W - 16
	c.renderer.DrawRect(x, c.cursorY, w, 1, ColorPanelBorder)
	c.cursorY += 8
	c.cursorX = x
}

// Slider draws a horizontal slider and returns the new value and whether
// it changed this frame. Pressing anywhere on the track jumps the value
// there; dragging keeps following the mouse even outside the track.
// Values snap to step when step > 0.
func (c *Context) Slider(id string, label string, width float32, value, min, max, step float32) (float32, bool) {
	if c.currentWindow == nil {
		return value, false
	}

	x := c.cursorX
	y := c.cursorY
	h := c.rowH
	if h == 0 {
		h = 20
	}
	if width == 0 {
		width = c.currentWindow.W - 16
	}

	fullID := c.currentWindow.ID + "_" + id

	// Label sits above the track
	_, textH := c.renderer.MeasureText(label, labelScale)
	c.renderer.DrawText(x, y, label, labelScale, ColorText)

	trackY := y + textH + 4
	rect := Rect{x, trackY, width, h}
	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)

	newValue := value
	if hovered && c.input.MouseLeftPressed {
		// A press jumps to the cursor even if the button was already
		// released before this frame
		c.activeWidget = fullID
		c.input.MouseLeftPressed = false
		newValue = SliderValueAt(c.input.MouseX, x, width, min, max, step)
	}

	if c.activeWidget == fullID {
		if c.input.MouseLeftDown {
			newValue = SliderValueAt(c.input.MouseX, x, width, min, max, step)
		} else {
			c.activeWidget = ""
		}
	}

	valueText := formatSliderValue(newValue, step)
	valueW, _ := c.renderer.MeasureText(valueText, labelScale)
	c.renderer.DrawText(x+width-valueW, y, valueText, labelScale, ColorTextDim)

	// Track
	bg := ColorInputBg
	if hovered || c.activeWidget == fullID {
		bg = ColorButtonHover
	}
	c.renderer.DrawRect(x, trackY, width, h, bg)
	c.renderer.DrawRectOutline(x, trackY, width, h, 1, ColorPanelBorder)

	// Fill and knob
	frac := SliderFraction(newValue, min, max)
	if fill := (width - 2) * frac; fill > 0 {
		c.renderer.DrawRect(x+1, trackY+1, fill, h-2, ColorButtonActive)
	}
	knobW := float32(8)
	knobX := x + (width-knobW)*frac
	knob := ColorHighlight
	if c.activeWidget == fullID {
		knob = knob.Lighten(0.3)
	}
	c.renderer.DrawRect(knobX, trackY, knobW, h, knob)

	// Advance cursor
	c.cursorX = c.currentWindow.X + 8
	c.cursorY = trackY + h + 4
	c.rowH = 0

	return newValue, newValue != value
}

// SliderFraction maps value in [min, max] to [0, 1].
func SliderFraction(value, min, max float32) float32 {
	if max <= min {
		return 0
	}
	f := (value - min) / (max - min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// SliderValueAt maps a mouse X position over a track at x with the given
// width to a value in [min, max], snapped to step when step > 0.
func SliderValueAt(mouseX, x, width, min, max, step float32) float32 {
	if width <= 0 || max <= min {
		return min
	}
	f := (mouseX - x) / width
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	v := min + f*(max-min)
	if step > 0 {
		v = min + float32(math.Round(float64((v-min)/step)))*step
		if v > max {
			v = max
		}
	}
	return v
}

func formatSliderValue(v, step float32) string {
	if step >= 1 && step == float32(math.Trunc(float64(step))) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.renderer.GetScreenSize()
	return float32(w), float32(h)
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
