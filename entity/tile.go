package entity

import (
	"github.com/milk9111/platformer/common"
)

type TileKind int

const (
	TileSolid TileKind = iota
	TileBrick
	TileLucky
	TilePipe
)

func (k TileKind) String() string {
	switch k {
	case TileBrick:
		return "brick"
	case TileLucky:
		return "lucky"
	case TilePipe:
		return "pipe"
	}
	return "solid"
}

// Transport is a pipe's destination.
type Transport struct {
	Map       string
	Direction string
	Column    int
	Row       int
}

const (
	TransportIn  = "in"
	TransportOut = "out"
)

const (
	luckyRebound = -2.0
	luckyGravity = 0.5
	brokenY      = -100
)

type Tile struct {
	Body
	Kind      TileKind
	Item      ItemKind
	Transport *Transport

	restY    float64
	vy       float64
	bouncing bool
}

func NewTile(kind TileKind, x, y float64) *Tile {
	w, h := float64(common.TileSize), float64(common.TileSize)
	if kind == TilePipe {
		w, h = 2*common.TileSize, 2*common.TileSize
	}
	return &Tile{Body: NewBody(x, y, w, h), Kind: kind, restY: y}
}

func NewLuckyBlock(x, y float64, item ItemKind) *Tile {
	t := NewTile(TileLucky, x, y)
	t.Item = item
	return t
}

func NewPipe(x, y float64, transport *Transport) *Tile {
	t := NewTile(TilePipe, x, y)
	t.Transport = transport
	return t
}

// Break moves a brick out of play.
func (t *Tile) Break() {
	t.Y = brokenY
}

// Broken reports whether Break already ran.
func (t *Tile) Broken() bool {
	return t.Y == brokenY
}

// Open spends a lucky block and starts its rebound. It returns the held item,
// or ItemNone when the block was already spent.
func (t *Tile) Open() ItemKind {
	if t.Kind != TileLucky || !t.Active {
		return ItemNone
	}
	t.Active = false
	t.vy = luckyRebound
	t.bouncing = true
	return t.Item
}

func (t *Tile) Bouncing() bool { return t.bouncing }

// RestY is where the tile settles after a rebound.
func (t *Tile) RestY() float64 { return t.restY }

// UpgradeItem turns a held mushroom into a fire flower.
func (t *Tile) UpgradeItem() {
	if t.Kind == TileLucky && t.Active && t.Item == ItemMushroom {
		t.Item = ItemFireFlower
	}
}

func (t *Tile) Update() {
	if t.bouncing {
		t.Y += t.vy
		t.vy += luckyGravity
		if t.Y >= t.restY {
			t.Y = t.restY
			t.vy = 0
			t.bouncing = false
		}
	}
	t.Sprite.Animate()
}
