package ui2d

// InputState holds the current input state for the UI.
type InputState struct {
	// Mouse state
	MouseX      float32
	MouseY      float32
	MouseDeltaX float32
	MouseDeltaY float32

	// Mouse buttons (current frame)
	MouseLeftDown bool

	// Mouse buttons (pressed/released this frame)
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// Press seen since the last Update, so a click that goes down and up
	// between two frames is not lost
	pressLatched bool

	// Previous frame state for edge detection
	prevMouseLeft bool
	prevMouseX    float32
	prevMouseY    float32
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	// Calculate deltas
	i.MouseDeltaX = i.MouseX - i.prevMouseX
	i.MouseDeltaY = i.MouseY - i.prevMouseY

	// Detect press/release edges
	i.MouseLeftPressed = (i.MouseLeftDown && !i.prevMouseLeft) || i.pressLatched
	i.MouseLeftReleased = !i.MouseLeftDown && (i.prevMouseLeft || i.pressLatched)
	i.pressLatched = false

	// Store current state for next frame
	i.prevMouseLeft = i.MouseLeftDown
	i.prevMouseX = i.MouseX
	i.prevMouseY = i.MouseY
}

// MouseMove records the cursor position.
func (i *InputState) MouseMove(x, y float32) {
	i.MouseX = x
	i.MouseY = y
}

// MouseDown records a left button press at x, y.
func (i *InputState) MouseDown(x, y float32) {
	i.MouseMove(x, y)
	i.MouseLeftDown = true
	i.pressLatched = true
}

// MouseUp records a left button release at x, y.
func (i *InputState) MouseUp(x, y float32) {
	i.MouseMove(x, y)
	i.MouseLeftDown = false
}

// EndFrame clears per-frame input state.
// Call this at the end of each frame.
func (i *InputState) EndFrame() {
	i.MouseLeftPressed = false
	i.MouseLeftReleased = false
}
