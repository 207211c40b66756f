// Package sprite holds visual frame descriptions and the tick-driven animator
// every world body carries.
package sprite

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrUnknownSprite = errors.New("unknown sprite")

// Frame is one region of a sprite sheet. Color is used when drawing without a
// sheet.
type Frame struct {
	Name  string
	X, Y  int
	W, H  int
	Color color.NRGBA
}

// Animation is an ordered frame sequence advanced every Speed ticks.
type Animation struct {
	Name   string
	Frames []Frame
	Speed  int
}

// Lookup resolves logical names to frames or animations.
type Lookup interface {
	Frame(name string) (Frame, error)
	Animation(name string) (Animation, error)
}

// Table is a map-backed Lookup.
type Table struct {
	Frames     map[string]Frame
	Animations map[string]Animation
}

func NewTable() *Table {
	return &Table{
		Frames:     make(map[string]Frame),
		Animations: make(map[string]Animation),
	}
}

func (t *Table) Frame(name string) (Frame, error) {
	if t != nil {
		if f, ok := t.Frames[name]; ok {
			return f, nil
		}
	}
	return Frame{}, fmt.Errorf("frame %q: %w", name, ErrUnknownSprite)
}

func (t *Table) Animation(name string) (Animation, error) {
	if t != nil {
		if a, ok := t.Animations[name]; ok && len(a.Frames) > 0 {
			return a, nil
		}
	}
	return Animation{}, fmt.Errorf("animation %q: %w", name, ErrUnknownSprite)
}

const intervalWrap = 60

// Sprite is the animator state of a body: a current frame plus an optional
// sequence stepping on a counter that wraps every 60 ticks.
type Sprite struct {
	frame    Frame
	anim     *Animation
	index    int
	interval int
}

func (s *Sprite) Frame() Frame { return s.frame }

// Index is the position in the current sequence, 0 when static.
func (s *Sprite) Index() int { return s.index }

func (s *Sprite) Animating() bool { return s.anim != nil }

// AnimationName returns the current sequence name or "".
func (s *Sprite) AnimationName() string {
	if s.anim == nil {
		return ""
	}
	return s.anim.Name
}

// SetFrame shows a static frame. Any running sequence keeps stepping.
func (s *Sprite) SetFrame(f Frame) {
	s.frame = f
}

func (s *Sprite) SetAnimation(a Animation) {
	if len(a.Frames) == 0 {
		s.ClearAnimation()
		return
	}
	if a.Speed <= 0 {
		a.Speed = 1
	}
	s.anim = &a
	s.index = 0
	s.frame = a.Frames[0]
}

// ClearAnimation stops the sequence and leaves the current frame static.
func (s *Sprite) ClearAnimation() {
	s.anim = nil
	s.index = 0
	s.interval = 0
}

// Animate advances the counter one tick and steps the sequence when due.
func (s *Sprite) Animate() {
	s.interval = (s.interval + 1) % intervalWrap
	if s.anim == nil {
		return
	}
	if s.interval%s.anim.Speed == 0 {
		s.index = (s.index + 1) % len(s.anim.Frames)
		s.frame = s.anim.Frames[s.index]
	}
}

// Apply clears the sprite and shows key, preferring an animation over a
// static frame of the same name.
func Apply(s *Sprite, lookup Lookup, key string) error {
	s.ClearAnimation()
	if a, err := lookup.Animation(key); err == nil {
		s.SetAnimation(a)
		return nil
	}
	f, err := lookup.Frame(key)
	if err != nil {
		return err
	}
	s.SetFrame(f)
	return nil
}
