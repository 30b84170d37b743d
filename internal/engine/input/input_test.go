package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func feed(i *Input, events ...sdl.Event) bool {
	i.events = i.events[:0]
	for _, e := range events {
		if i.translate(e) {
			return true
		}
	}
	return false
}

func TestWheelSumsNotches(t *testing.T) {
	in := New()
	feed(in,
		&sdl.MouseWheelEvent{Y: 1},
		&sdl.MouseWheelEvent{Y: 2},
		&sdl.MouseWheelEvent{Y: 1, Direction: uint32(sdl.MOUSEWHEEL_FLIPPED)},
	)
	if got := in.Wheel(); got != 2 {
		t.Errorf("Wheel() = %v, want 2", got)
	}
}

func TestKeyDownWithShift(t *testing.T) {
	in := New()
	feed(in,
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_T, Mod: uint16(sdl.KMOD_LSHIFT)}},
		&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
	)

	if !in.IsKeyPressed(sdl.SCANCODE_T) {
		t.Error("T not reported as pressed")
	}
	if in.IsKeyPressed(sdl.SCANCODE_SPACE) {
		t.Error("key up reported as pressed")
	}
	if ev := in.Events()[0]; !ev.Shift {
		t.Error("left shift not detected")
	}
}

func TestResizeAndQuit(t *testing.T) {
	in := New()
	quit := feed(in,
		&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 390, Data2: 844},
		&sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED},
		&sdl.QuitEvent{},
	)
	if !quit {
		t.Fatal("quit event not reported")
	}

	events := in.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want resize and quit", len(events))
	}
	if events[0].Type != EventWindowResize || events[0].Width != 390 || events[0].Height != 844 {
		t.Errorf("resize event = %+v", events[0])
	}
	if events[1].Type != EventQuit {
		t.Errorf("second event = %+v, want quit", events[1])
	}
}
