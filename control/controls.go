// Package control tracks held directions and plays back scripted input.
package control

import (
	"slices"
	"sync"

	"github.com/jakecoffman/cp"
)

type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// Horizontal reports whether d moves along x.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Axis is the unit vector for d in canvas space (y grows downward).
func (d Direction) Axis() cp.Vector {
	switch d {
	case Left:
		return cp.Vector{X: -1, Y: 0}
	case Right:
		return cp.Vector{X: 1, Y: 0}
	case Up:
		return cp.Vector{X: 0, Y: -1}
	case Down:
		return cp.Vector{X: 0, Y: 1}
	}
	return cp.Vector{}
}

// ParseDirection accepts the lowercase direction names.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	}
	return None, false
}

var keyMap = map[string]Direction{
	"ArrowLeft":  Left,
	"KeyA":       Left,
	"ArrowRight": Right,
	"KeyD":       Right,
	"ArrowUp":    Up,
	"KeyW":       Up,
	"Space":      Up,
	"ArrowDown":  Down,
	"KeyS":       Down,
}

var fireKeys = map[string]bool{
	"KeyX":        true,
	"KeyF":        true,
	"ControlLeft": true,
}

// Controls is the live key state. Input hosts feed it from their event source
// while the simulation reads it once per tick, so access is locked.
type Controls struct {
	mu         sync.Mutex
	keys       []Direction
	horizontal Direction
	fire       bool

	macro     []MacroStep
	remaining int
}

func New() *Controls {
	return &Controls{horizontal: Right}
}

// KeyDown handles a key press by physical key name. A repeating Space press
// releases up so holding it does not chain jumps.
func (c *Controls) KeyDown(key string, repeat bool) {
	if fireKeys[key] {
		if !repeat {
			c.mu.Lock()
			c.fire = true
			c.mu.Unlock()
		}
		return
	}
	d, ok := keyMap[key]
	if !ok {
		return
	}
	if repeat && key == "Space" {
		c.Release(Up)
		return
	}
	c.Press(d)
}

func (c *Controls) KeyUp(key string) {
	if d, ok := keyMap[key]; ok {
		c.Release(d)
	}
}

// Press adds d to the held list once and records it as the horizontal bias
// when it is left or right.
func (c *Controls) Press(d Direction) {
	if d == None {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if d.Horizontal() {
		c.horizontal = d
	}
	if !slices.Contains(c.keys, d) {
		c.keys = append(c.keys, d)
	}
}

func (c *Controls) Release(d Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := slices.Index(c.keys, d); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
}

// Keys returns a copy of the held directions in press order.
func (c *Controls) Keys() []Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.keys)
}

func (c *Controls) Held(d Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Contains(c.keys, d)
}

// Horizontal is the most recent left or right press.
func (c *Controls) Horizontal() Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.horizontal
}

// ConsumeFire returns true once per fire key press.
func (c *Controls) ConsumeFire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := c.fire
	c.fire = false
	return f
}

// Clear drops every held key and any running macro.
func (c *Controls) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = c.keys[:0]
	c.fire = false
	c.macro = nil
	c.remaining = 0
}
