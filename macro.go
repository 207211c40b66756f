package main

import (
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/prefabs"
)

// demo replays a scripted macro at the start of every attempt.
type demo struct {
	steps []control.MacroStep
}

func loadDemo(name string) (*demo, error) {
	if name == "" {
		return &demo{}, nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	steps, err := control.CompileMacro(src)
	if err != nil {
		return nil, err
	}
	return &demo{steps: steps}, nil
}

// apply starts the macro when an attempt has just been loaded. Loading an
// attempt clears the controls, so this runs after the session update.
func (d *demo) apply(s *game.Session, controls *control.Controls) bool {
	if len(d.steps) == 0 || s.Screen() != game.ScreenPlaying || s.Game().Ticks() != 0 {
		return false
	}
	controls.LoadMacros(d.steps)
	return true
}
