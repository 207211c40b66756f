package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
)

const (
	fireballSize   = 8
	fireballSpeedX = 2
	fireballSpeedY = 0.5
)

// Fireball bounces along floors and dies against walls.
type Fireball struct {
	Body
	Vertical   control.Direction
	Horizontal control.Direction

	limit float64
}

func NewFireball(x, y float64, dir control.Direction) *Fireball {
	return &Fireball{
		Body:       NewBody(x, y, fireballSize, fireballSize),
		Vertical:   control.Down,
		Horizontal: dir,
		limit:      y,
	}
}

// Step moves the fireball one tick. It returns true when it hit a wall on
// this tick.
func (f *Fireball) Step(tiles []*Tile) (hitWall bool) {
	if !f.Active {
		return false
	}
	c := collision.Probe(f.Rect, tiles)
	if c.HasBottom {
		f.Vertical = control.Up
	}
	if c.HasTop || f.limit >= f.Y {
		f.Vertical = control.Down
	}
	if c.HasLeft || c.HasRight {
		f.Deactivate()
		return true
	}

	v := cp.Vector{X: f.Horizontal.Axis().X * fireballSpeedX, Y: f.Vertical.Axis().Y * fireballSpeedY}
	f.Translate(v.X, v.Y)
	if f.X+f.Width <= 0 || f.X >= common.BaseWidth || f.Y > common.BaseHeight {
		f.Deactivate()
	}
	f.Sprite.Animate()
	return false
}
