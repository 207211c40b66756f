package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in canvas pixels. Y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// MidY returns the vertical midpoint of the box.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Intersects uses half-open intervals: boxes that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Overlaps reports whether a and b intersect on both axes.
func Overlaps(a, b Rect) bool {
	return a.Intersects(b)
}

// BB converts the box to a chipmunk bounding box. Bottom and top follow canvas y.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}
