package world

import (
	"github.com/milk9111/platformer/common"
)

// Object is anything the streamer can scroll. It carries the handle of its
// arena slot so it can be removed without a scan.
type Object interface {
	Bounds() common.Rect
	Translate(dx, dy float64)
	Slot() uint64
	SetSlot(uint64)
}

// Layer owns one kind of world object: every remaining object in load order
// plus the slice currently on the canvas.
type Layer[T Object] struct {
	arena   Arena[T]
	visible []T
}

func (l *Layer[T]) Add(v T) Handle {
	h := l.arena.Add(v)
	v.SetSlot(uint64(h))
	return h
}

// All returns every buffered object in load order.
func (l *Layer[T]) All() []T { return l.arena.Values() }

// Visible returns the objects on the canvas in load order.
func (l *Layer[T]) Visible() []T { return l.visible }

func (l *Layer[T]) Len() int        { return l.arena.Len() }
func (l *Layer[T]) VisibleLen() int { return len(l.visible) }

// Delete drops v from the buffer and the visible slice. It returns false when
// v was already gone.
func (l *Layer[T]) Delete(v T) bool {
	if !l.arena.Remove(Handle(v.Slot())) {
		return false
	}
	v.SetSlot(0)
	l.Refresh()
	return true
}

// Remove drops every object matching from the buffer and the visible slice.
func (l *Layer[T]) Remove(match func(T) bool) int {
	removed := l.retain(func(v T) bool { return !match(v) })
	if len(removed) > 0 {
		l.Refresh()
	}
	return len(removed)
}

func (l *Layer[T]) retain(keep func(T) bool) []T {
	removed := l.arena.Retain(keep)
	for _, v := range removed {
		v.SetSlot(0)
	}
	return removed
}

// Shift moves every buffered object horizontally.
func (l *Layer[T]) Shift(dx float64) {
	l.arena.Each(func(_ Handle, v T) {
		v.Translate(dx, 0)
	})
}

// Purge permanently drops objects whose right edge is at or past x=0 and
// returns them.
func (l *Layer[T]) Purge() []T {
	return l.retain(func(v T) bool {
		b := v.Bounds()
		return b.X+b.Width > 0
	})
}

// Refresh recomputes the visible slice.
func (l *Layer[T]) Refresh() {
	visible := make([]T, 0, len(l.visible))
	l.arena.Each(func(_ Handle, v T) {
		if onCanvas(v.Bounds()) {
			visible = append(visible, v)
		}
	})
	l.visible = visible
}

func onCanvas(b common.Rect) bool {
	return b.X+b.Width > 0 && b.X < common.BaseWidth
}
