// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for demo use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventWindowExposed
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Shift  bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events []Event
	quit   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Wait blocks until at least one event arrives or timeoutMs elapses, then
// drains anything else that is pending. A timeout leaves Events empty.
// Returns true if the demo should quit.
func (i *Input) Wait(timeoutMs int) bool {
	i.events = i.events[:0]
	i.quit = false

	first := sdl.WaitEventTimeout(timeoutMs)
	if first == nil {
		return false
	}
	i.handle(first)

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return i.quit
}

// handle converts one SDL event.
func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		i.quit = true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		case sdl.WINDOWEVENT_EXPOSED:
			i.events = append(i.events, Event{Type: EventWindowExposed})
		}

	case *sdl.KeyboardEvent:
		shift := e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0
		if e.Type == sdl.KEYDOWN {
			i.events = append(i.events, Event{
				Type:  EventKeyDown,
				Key:   e.Keysym.Scancode,
				Shift: shift,
			})
		} else if e.Type == sdl.KEYUP {
			i.events = append(i.events, Event{
				Type:  EventKeyUp,
				Key:   e.Keysym.Scancode,
				Shift: shift,
			})
		}

	case *sdl.MouseMotionEvent:
		i.events = append(i.events, Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		})

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.events = append(i.events, Event{
				Type:   EventMouseDown,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		} else if e.Type == sdl.MOUSEBUTTONUP {
			i.events = append(i.events, Event{
				Type:   EventMouseUp,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		}
	}
}

// Events returns the events from the last Wait.
func (i *Input) Events() []Event {
	return i.events
}
