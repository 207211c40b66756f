package game

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/world"
)

// Camera keeps the player left of a follow line by scrolling the world
// instead.
type Camera struct {
	threshold float64
}

// NewCamera places the follow line at fraction of the canvas width.
func NewCamera(fraction float64) *Camera {
	if fraction <= 0 || fraction >= 1 {
		fraction = 1.0 / 3
	}
	return &Camera{threshold: common.BaseWidth * fraction}
}

func (c *Camera) Threshold() float64 { return c.threshold }

// Follow scrolls w one step and pins the player back to the follow line when
// the player crossed it and the map is not at its end. It returns the
// horizontal shift applied to the world.
func (c *Camera) Follow(p *entity.Player, w *world.World) float64 {
	if p.X <= c.threshold || w.Limit() {
		return 0
	}
	w.Move()
	p.X = c.threshold
	return -common.ScrollSpeed
}
