// Package game runs the simulation: the player controller, the per-tick
// orchestration of world and entities, and the screen flow around attempts.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sound"
	"github.com/milk9111/platformer/sprite"
)

// Options are the collaborators shared by the controller, the game and the
// session. Zero fields fall back to the embedded defaults.
type Options struct {
	Physics  *prefabs.PhysicsSpec
	Lookup   sprite.Lookup
	Sounds   sound.Player
	Controls *control.Controls
	Logger   *log.Logger
}

func (o Options) withDefaults() (Options, error) {
	if o.Physics == nil {
		spec, err := prefabs.LoadPhysicsSpec()
		if err != nil {
			return o, fmt.Errorf("game: physics: %w", err)
		}
		o.Physics = spec
	}
	if o.Lookup == nil {
		atlas, err := prefabs.LoadAtlas()
		if err != nil {
			return o, fmt.Errorf("game: atlas: %w", err)
		}
		o.Lookup = atlas
	}
	if o.Sounds == nil {
		o.Sounds = sound.Nop{}
	}
	if o.Controls == nil {
		o.Controls = control.New()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o, nil
}
