// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Shift  bool
	Width  int
	Height int
	WheelY float32 // notches; positive scrolls content up (wheel away from user)
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to stage events.
// Returns true if the stage should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.translate(event) {
			return true
		}
	}
	return false
}

// translate appends the stage event for e, if any, and reports a quit.
func (i *Input) translate(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		ev := Event{
			Key:   e.Keysym.Scancode,
			Shift: e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0,
		}
		switch e.Type {
		case sdl.KEYDOWN:
			ev.Type = EventKeyDown
		case sdl.KEYUP:
			ev.Type = EventKeyUp
		default:
			return false
		}
		i.events = append(i.events, ev)

	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			y = -y
		}
		i.events = append(i.events, Event{Type: EventWheel, WheelY: y})
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Wheel sums the wheel notches received this frame.
func (i *Input) Wheel() float32 {
	var y float32
	for _, e := range i.events {
		if e.Type == EventWheel {
			y += e.WheelY
		}
	}
	return y
}
