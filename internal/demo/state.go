package demo

import "github.com/Faultbox/dirlight/pkg/math"

// State is the mutable UI state: the letter's rotation around Y and its
// translation. Only the Y component of the translation is user-controlled.
type State struct {
	RotationRadians float32
	Translation     math.Vec3
}

// RotationDegrees returns the rotation as shown on the slider.
func (s State) RotationDegrees() float32 {
	return math.RadToDeg(s.RotationRadians)
}

// Limits are the slider ranges.
type Limits struct {
	RotationMin, RotationMax float32 // degrees
	YMin, YMax               float32
}

// Controls owns the UI state and keeps it inside the slider ranges.
// Every setter reports whether the state actually changed, which is what
// triggers a redraw.
type Controls struct {
	state   State
	initial State
	limits  Limits
}

// NewControls creates controls starting at the given rotation (degrees) and
// Y translation, clamped to limits.
func NewControls(limits Limits, rotationDegrees, y float32) *Controls {
	c := &Controls{limits: limits}
	c.SetRotationDegrees(rotationDegrees)
	c.SetTranslationY(y)
	c.initial = c.state
	return c
}

// State returns a copy of the current state.
func (c *Controls) State() State {
	return c.state
}

// Limits returns the slider ranges.
func (c *Controls) Limits() Limits {
	return c.limits
}

// SetRotationDegrees sets the rotation from a slider value in degrees.
func (c *Controls) SetRotationDegrees(deg float32) bool {
	deg = math.Clamp(deg, c.limits.RotationMin, c.limits.RotationMax)
	rad := math.DegToRad(deg)
	if rad == c.state.RotationRadians {
		return false
	}
	c.state.RotationRadians = rad
	return true
}

// SetTranslationY sets the vertical translation.
func (c *Controls) SetTranslationY(y float32) bool {
	y = math.Clamp(y, c.limits.YMin, c.limits.YMax)
	if y == c.state.Translation.Y {
		return false
	}
	c.state.Translation.Y = y
	return true
}

// NudgeRotation adds delta degrees to the rotation.
func (c *Controls) NudgeRotation(delta float32) bool {
	return c.SetRotationDegrees(c.state.RotationDegrees() + delta)
}

// NudgeY adds delta to the vertical translation.
func (c *Controls) NudgeY(delta float32) bool {
	return c.SetTranslationY(c.state.Translation.Y + delta)
}

// Reset restores the starting state.
func (c *Controls) Reset() bool {
	if c.state == c.initial {
		return false
	}
	c.state = c.initial
	return true
}
