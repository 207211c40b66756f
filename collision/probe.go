// Package collision answers directional contact queries for moving bodies.
package collision

import "github.com/milk9111/platformer/common"

// Box is anything with an axis-aligned extent.
type Box interface {
	Bounds() common.Rect
}

// Contacts holds the first box touched by each sensor. The zero value of T
// means no contact.
type Contacts[T Box] struct {
	Top    T
	Bottom T
	Left   T
	Right  T

	HasTop    bool
	HasBottom bool
	HasLeft   bool
	HasRight  bool
}

// Sensors are the four half-size probes offset from a body's box.
type Sensors struct {
	Top, Bottom, Left, Right common.Rect
}

func SensorsFor(body common.Rect) Sensors {
	w, h := body.Width, body.Height
	return Sensors{
		Bottom: common.NewRect(body.X+w/4, body.Y+h, w/2, h/4),
		Top:    common.NewRect(body.X+w/4, body.Y-h/4, w/2, h/4),
		Left:   common.NewRect(body.X-w/4, body.Y+h/4, w/4, h/2),
		Right:  common.NewRect(body.X+w, body.Y+h/4, w/4, h/2),
	}
}

// Probe returns, per direction, the first element of set whose box overlaps
// the matching sensor. Iteration follows slice order so ties are deterministic.
func Probe[T Box](body common.Rect, set []T) Contacts[T] {
	s := SensorsFor(body)
	var c Contacts[T]
	for _, item := range set {
		b := item.Bounds()
		if !c.HasBottom && common.Overlaps(s.Bottom, b) {
			c.Bottom, c.HasBottom = item, true
		}
		if !c.HasTop && common.Overlaps(s.Top, b) {
			c.Top, c.HasTop = item, true
		}
		if !c.HasLeft && common.Overlaps(s.Left, b) {
			c.Left, c.HasLeft = item, true
		}
		if !c.HasRight && common.Overlaps(s.Right, b) {
			c.Right, c.HasRight = item, true
		}
		if c.HasBottom && c.HasTop && c.HasLeft && c.HasRight {
			break
		}
	}
	return c
}

// Overlapping returns every element of set intersecting body, in order.
func Overlapping[T Box](body common.Rect, set []T) []T {
	var out []T
	for _, item := range set {
		if common.Overlaps(body, item.Bounds()) {
			out = append(out, item)
		}
	}
	return out
}
