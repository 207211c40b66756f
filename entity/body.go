// Package entity defines the world objects. Every object embeds Body and opts
// into behavior through small interfaces instead of a type hierarchy.
package entity

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/sprite"
)

// Body is a positioned, sized, animated box. Active gates update and draw for
// entities that come and go; tiles use it to mark an unused lucky block.
type Body struct {
	common.Rect
	Sprite sprite.Sprite
	Key    string
	Active bool

	slot uint64
}

func NewBody(x, y, w, h float64) Body {
	return Body{Rect: common.NewRect(x, y, w, h), Active: true}
}

func (b *Body) Bounds() common.Rect { return b.Rect }

func (b *Body) Translate(dx, dy float64) {
	b.X += dx
	b.Y += dy
}

// SetSprite swaps the visual to key, preferring an animation.
func (b *Body) SetSprite(lookup sprite.Lookup, key string) error {
	if err := sprite.Apply(&b.Sprite, lookup, key); err != nil {
		return err
	}
	b.Key = key
	return nil
}

// Slot is the handle of the world slot holding this body, 0 when the body is
// not stored in a map.
func (b *Body) Slot() uint64        { return b.slot }
func (b *Body) SetSlot(slot uint64) { b.slot = slot }

func (b *Body) Activate()   { b.Active = true }
func (b *Body) Deactivate() { b.Active = false }

// Visual is anything a renderer can draw.
type Visual interface {
	Bounds() common.Rect
	Frame() sprite.Frame
	SpriteKey() string
}

func (b *Body) Frame() sprite.Frame { return b.Sprite.Frame() }
func (b *Body) SpriteKey() string   { return b.Key }

// Animator advances per-tick self animation.
type Animator interface {
	Update()
}

// Translator can be shifted by the world scroll.
type Translator interface {
	Translate(dx, dy float64)
}
