package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/control"
)

type fakeKeyboard struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
	down     map[ebiten.Key]bool
}

func (f fakeKeyboard) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f fakeKeyboard) JustReleased(k ebiten.Key) bool { return f.released[k] }
func (f fakeKeyboard) Pressed(k ebiten.Key) bool      { return f.down[k] }

func TestInputPoll(t *testing.T) {
	c := control.New()
	in := &Input{kb: fakeKeyboard{pressed: map[ebiten.Key]bool{ebiten.KeyD: true, ebiten.KeySpace: true}}}
	in.Poll(c)
	if !c.Held(control.Right) || !c.Held(control.Up) {
		t.Fatalf("expected right and up held, got %v", c.Keys())
	}

	// A repeating Space releases up instead of pressing it again.
	in.kb = fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeyD: true, ebiten.KeySpace: true}}
	for i := 0; i < repeatDelay+repeatInterval; i++ {
		in.Poll(c)
		in.Repeat(c)
	}
	if c.Held(control.Up) {
		t.Fatalf("expected space repeat to release up")
	}
	if !c.Held(control.Right) {
		t.Fatalf("expected right still held")
	}

	in.kb = fakeKeyboard{released: map[ebiten.Key]bool{ebiten.KeyD: true}}
	in.Poll(c)
	if c.Held(control.Right) {
		t.Fatalf("expected right released")
	}
}

func TestInputActions(t *testing.T) {
	tests := []struct {
		name     string
		key      ebiten.Key
		expected Actions
	}{
		{"enter", ebiten.KeyEnter, Actions{Confirm: true}},
		{"p", ebiten.KeyP, Actions{Pause: true}},
		{"escape", ebiten.KeyEscape, Actions{Pause: true}},
		{"f3", ebiten.KeyF3, Actions{Debug: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{kb: fakeKeyboard{pressed: map[ebiten.Key]bool{tt.key: true}}}
			if got := in.Poll(control.New()); got != tt.expected {
				t.Fatalf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestRepeatCountsTicks(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int
		expected bool
	}{
		{"at_delay", repeatDelay, true},
		{"one_short", repeatDelay + repeatInterval - 1, true},
		{"first_repeat", repeatDelay + repeatInterval, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := control.New()
			in := &Input{kb: fakeKeyboard{pressed: map[ebiten.Key]bool{ebiten.KeySpace: true}}}
			in.Poll(c)
			in.kb = fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeySpace: true}}
			// Many rendered frames per tick must not speed up the repeat.
			for i := 0; i < tt.ticks; i++ {
				in.Poll(c)
				in.Poll(c)
				in.Repeat(c)
			}
			if got := c.Held(control.Up); got != tt.expected {
				t.Fatalf("after %d ticks expected up held=%v, got %v", tt.ticks, tt.expected, got)
			}
		})
	}
}

func TestRepeatResetsOnRelease(t *testing.T) {
	c := control.New()
	in := &Input{kb: fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeySpace: true}}}
	for i := 0; i < repeatDelay; i++ {
		in.Repeat(c)
	}
	in.kb = fakeKeyboard{}
	in.Repeat(c)
	if _, ok := in.held[ebiten.KeySpace]; ok {
		t.Fatalf("expected the hold counter cleared on release")
	}
}

func TestRepeating(t *testing.T) {
	tests := []struct {
		held     int
		expected bool
	}{
		{0, false},
		{1, false},
		{repeatDelay, false},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
		{repeatDelay + 2*repeatInterval, true},
	}
	for _, tt := range tests {
		if got := repeating(tt.held); got != tt.expected {
			t.Errorf("repeating(%d): expected %v, got %v", tt.held, tt.expected, got)
		}
	}
}
