package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/control"
)

// Held keys start repeating after repeatDelay simulation ticks, then every
// repeatInterval ticks, like a desktop keyboard.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

type keyBinding struct {
	key  ebiten.Key
	name string
}

// keyBindings maps ebiten keys onto the physical key names Controls expects.
var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, "ArrowLeft"},
	{ebiten.KeyA, "KeyA"},
	{ebiten.KeyArrowRight, "ArrowRight"},
	{ebiten.KeyD, "KeyD"},
	{ebiten.KeyArrowUp, "ArrowUp"},
	{ebiten.KeyW, "KeyW"},
	{ebiten.KeySpace, "Space"},
	{ebiten.KeyArrowDown, "ArrowDown"},
	{ebiten.KeyS, "KeyS"},
	{ebiten.KeyX, "KeyX"},
	{ebiten.KeyF, "KeyF"},
	{ebiten.KeyControlLeft, "ControlLeft"},
}

type keyboard interface {
	JustPressed(ebiten.Key) bool
	JustReleased(ebiten.Key) bool
	Pressed(ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeyboard) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }

// Actions are the window-level commands read this frame.
type Actions struct {
	Confirm bool
	Pause   bool
	Debug   bool
}

// Input turns keyboard edges into Controls key events. Repeats are counted
// in simulation ticks, not rendered frames.
type Input struct {
	kb   keyboard
	held map[ebiten.Key]int
}

func NewInput() *Input {
	return &Input{kb: ebitenKeyboard{}}
}

// Poll forwards this frame's key edges to c.
func (in *Input) Poll(c *control.Controls) Actions {
	for _, b := range keyBindings {
		switch {
		case in.kb.JustPressed(b.key):
			c.KeyDown(b.name, false)
		case in.kb.JustReleased(b.key):
			c.KeyUp(b.name)
		}
	}
	return Actions{
		Confirm: in.kb.JustPressed(ebiten.KeyEnter),
		Pause:   in.kb.JustPressed(ebiten.KeyP) || in.kb.JustPressed(ebiten.KeyEscape),
		Debug:   in.kb.JustPressed(ebiten.KeyF3),
	}
}

// Repeat advances the hold counters by one simulation tick and forwards
// any key repeats to c.
func (in *Input) Repeat(c *control.Controls) {
	if in.held == nil {
		in.held = make(map[ebiten.Key]int)
	}
	for _, b := range keyBindings {
		if !in.kb.Pressed(b.key) {
			delete(in.held, b.key)
			continue
		}
		in.held[b.key]++
		if repeating(in.held[b.key]) {
			c.KeyDown(b.name, true)
		}
	}
}

func repeating(held int) bool {
	return held > repeatDelay && (held-repeatDelay)%repeatInterval == 0
}
