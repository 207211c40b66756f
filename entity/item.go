package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
)

type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemCoin
	ItemMushroom
	ItemFireFlower
	ItemStar
	ItemBigCoin
)

func (k ItemKind) String() string {
	switch k {
	case ItemCoin:
		return "coin"
	case ItemMushroom:
		return "mushroom"
	case ItemFireFlower:
		return "fire-flower"
	case ItemStar:
		return "star"
	case ItemBigCoin:
		return "big-coin"
	}
	return "none"
}

// PowerUp reports whether collecting k changes the player's tier.
func (k ItemKind) PowerUp() bool {
	return k == ItemMushroom || k == ItemFireFlower || k == ItemStar
}

const (
	coinPop      = -4.0
	coinGravity  = 0.2
	starBounce   = -3.0
	starGravity  = 0.2
	walkerFactor = 0.5
)

// Item is a consumable: popped coins, power-ups and big coins.
type Item struct {
	Body
	Kind      ItemKind
	Vel       cp.Vector
	Direction control.Direction

	limit float64
}

func NewItem(kind ItemKind, x, y float64) *Item {
	it := &Item{
		Body:      NewBody(x, y, common.TileSize, common.TileSize),
		Kind:      kind,
		Direction: control.Right,
		limit:     y,
	}
	if kind == ItemCoin {
		it.Vel = cp.Vector{X: 0, Y: coinPop}
	}
	return it
}

// Collectible reports whether touching the item consumes it. Popped coins are
// credited on release.
func (it *Item) Collectible() bool {
	return it.Active && it.Kind != ItemCoin
}

// Step runs one tick of the item's own motion against the visible tiles.
func (it *Item) Step(tiles []*Tile) {
	if !it.Active {
		return
	}
	switch it.Kind {
	case ItemCoin:
		it.Y += it.Vel.Y
		it.Vel.Y += coinGravity
		if it.Y >= it.limit {
			it.Y = it.limit
			it.Vel = cp.Vector{}
			it.Sprite.ClearAnimation()
			it.Deactivate()
			return
		}
	case ItemMushroom:
		it.walk(tiles)
	case ItemStar:
		it.bounce(tiles)
	}
	if it.Y > common.BaseHeight || it.X+it.Width <= 0 {
		it.Deactivate()
		return
	}
	it.Sprite.Animate()
}

func (it *Item) walk(tiles []*Tile) {
	c := collision.Probe(it.Rect, tiles)
	dir := it.Direction
	if c.HasLeft {
		it.Direction = control.Right
		dir = control.Right
	}
	if c.HasRight {
		it.Direction = control.Left
		dir = control.Left
	}
	if !c.HasBottom {
		dir = control.Down
	}
	axis := dir.Axis()
	it.Translate(axis.X*walkerFactor, axis.Y)
	if c.HasBottom {
		it.Y = c.Bottom.Y - it.Height
	}
}

func (it *Item) bounce(tiles []*Tile) {
	c := collision.Probe(it.Rect, tiles)
	if c.HasLeft {
		it.Direction = control.Right
	}
	if c.HasRight {
		it.Direction = control.Left
	}
	if c.HasBottom && it.Vel.Y >= 0 {
		it.Y = c.Bottom.Y - it.Height
		it.Vel.Y = starBounce
	}
	if c.HasTop && it.Vel.Y < 0 {
		it.Vel.Y = 0
	}
	it.Vel.X = it.Direction.Axis().X * walkerFactor
	it.Translate(it.Vel.X, it.Vel.Y)
	it.Vel.Y += starGravity
}
