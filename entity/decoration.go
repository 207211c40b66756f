package entity

import "github.com/milk9111/platformer/common"

// Decoration is a non-colliding background item such as a cloud or bush.
type Decoration struct {
	Body
	Name string
	Type string
}

func NewDecoration(name, typ string, x, y float64) *Decoration {
	return &Decoration{Body: NewBody(x, y, common.TileSize, common.TileSize), Name: name, Type: typ}
}

func (d *Decoration) Update() {
	d.Sprite.Animate()
}
