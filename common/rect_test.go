package common

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart_horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart_vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching_right_edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching_bottom_edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single_pixel", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"fractional", NewRect(0, 0, 16, 16), NewRect(15.5, 15.5, 4, 4), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Fatalf("Overlaps(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Fatalf("Overlaps(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectOverlapsItself(t *testing.T) {
	for _, r := range []Rect{
		NewRect(0, 0, 1, 1),
		NewRect(-40, 12, 16, 32),
		NewRect(100.25, 100.75, 0.5, 0.5),
	} {
		if !Overlaps(r, r) {
			t.Fatalf("expected %+v to overlap itself", r)
		}
	}
	if Overlaps(NewRect(0, 0, 0, 10), NewRect(0, 0, 0, 10)) {
		t.Fatalf("zero-width box should not overlap")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(13, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}
