package entity

import (
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
)

type EnemyKind int

const (
	Goomba EnemyKind = iota
	Koopa
)

func (k EnemyKind) String() string {
	if k == Koopa {
		return "koopa"
	}
	return "goomba"
}

func ParseEnemyKind(s string) (EnemyKind, bool) {
	switch s {
	case "goomba":
		return Goomba, true
	case "koopa":
		return Koopa, true
	}
	return Goomba, false
}

const (
	koopaHeight = 24
	// DeathTicks is how long a killed enemy lingers before removal.
	DeathTicks = 30
)

// Enemy patrols the visible tiles, reflecting off walls and falling off
// ledges. It wakes once it scrolls onto the canvas.
type Enemy struct {
	Body
	Kind      EnemyKind
	Direction control.Direction
	Speed     float64

	facing     control.Direction
	dead       bool
	deathTicks int
}

func NewEnemy(kind EnemyKind, x, y float64) *Enemy {
	e := &Enemy{
		Body:      NewBody(x, y, common.TileSize, common.TileSize),
		Kind:      kind,
		Direction: control.Left,
		Speed:     1,
		facing:    control.Left,
	}
	if kind == Koopa {
		e.Height = koopaHeight
		e.Y -= koopaHeight - common.TileSize
	}
	e.Active = false
	return e
}

func (e *Enemy) Dead() bool { return e.dead }

// Kill stops the patrol and starts the death countdown. Killing twice is a
// no-op.
func (e *Enemy) Kill() bool {
	if e.dead {
		return false
	}
	e.dead = true
	e.deathTicks = DeathTicks
	e.Sprite.ClearAnimation()
	return true
}

// Expired reports whether the enemy should be removed from the world: its
// death delay ran out or it left the canvas on the left.
func (e *Enemy) Expired() bool {
	if e.X+e.Width <= 0 {
		return true
	}
	return e.dead && e.deathTicks <= 0
}

// StompedBy decides contact with a falling body: true when the body's bottom
// edge is strictly above the enemy's vertical midpoint.
func (e *Enemy) StompedBy(r common.Rect) bool {
	return r.Bottom() < e.MidY()
}

// Think runs one AI tick against the visible tiles.
func (e *Enemy) Think(tiles []*Tile) {
	if e.dead {
		if e.deathTicks > 0 {
			e.deathTicks--
		}
		return
	}
	if !e.Active {
		if e.X < common.BaseWidth {
			e.Activate()
		} else {
			return
		}
	}

	c := collision.Probe(e.Rect, tiles)
	if c.HasLeft {
		e.facing = control.Right
	}
	if c.HasRight {
		e.facing = control.Left
	}
	e.Direction = e.facing
	if !c.HasBottom {
		e.Direction = control.Down
	}

	axis := e.Direction.Axis()
	e.Translate(axis.X*e.Speed/2, axis.Y*e.Speed)
	if c.HasBottom {
		e.Y = c.Bottom.Y - e.Height
	}
	e.Sprite.Animate()
}
