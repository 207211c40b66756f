package world

import "testing"

func TestArenaLifecycle(t *testing.T) {
	cases := []struct {
		name        string
		create      int
		removeIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_remove_middle", 3, 1},
		{"none_removed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var a Arena[string]
			handles := make([]Handle, 0, c.create)
			for i := 0; i < c.create; i++ {
				handles = append(handles, a.Add(string(rune('a'+i))))
			}
			if a.Len() != c.create {
				t.Fatalf("expected %d values, got %d", c.create, a.Len())
			}
			if c.removeIndex >= 0 {
				if !a.Remove(handles[c.removeIndex]) {
					t.Fatalf("Remove should return true for a live handle")
				}
				if a.Has(handles[c.removeIndex]) {
					t.Fatalf("handle should be stale after removal")
				}
				if a.Remove(handles[c.removeIndex]) {
					t.Fatalf("second Remove should return false")
				}
			}
		})
	}
}

func TestArenaRemovePreservesOrder(t *testing.T) {
	var a Arena[int]
	var hs []Handle
	for i := 0; i < 5; i++ {
		hs = append(hs, a.Add(i))
	}
	a.Remove(hs[1])
	a.Remove(hs[3])

	got := a.Values()
	expected := []int{0, 2, 4}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}

	if !a.Has(hs[4]) || !a.Remove(hs[4]) {
		t.Fatalf("expected handle 4 to survive reordering")
	}
	if got := a.Values(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("expected [0 2] after removing 4, got %v", got)
	}
}

func TestArenaReusesSlotsWithNewGeneration(t *testing.T) {
	var a Arena[int]
	h1 := a.Add(1)
	a.Remove(h1)
	h2 := a.Add(2)

	if h1.id() != h2.id() {
		t.Fatalf("expected slot reuse")
	}
	if h1 == h2 {
		t.Fatalf("expected a new generation")
	}
	if a.Has(h1) || a.Remove(h1) {
		t.Fatalf("stale handle must not resolve")
	}
	if !a.Has(h2) {
		t.Fatalf("expected the new handle to resolve")
	}
	values := a.Values()
	if len(values) != 1 || values[0] != 2 {
		t.Fatalf("reused slot should append at the end, got %v", values)
	}
}

func TestArenaRetain(t *testing.T) {
	var a Arena[int]
	hs := make([]Handle, 0, 6)
	for i := 0; i < 6; i++ {
		hs = append(hs, a.Add(i))
	}
	removed := a.Retain(func(v int) bool { return v%2 == 0 })
	if len(removed) != 3 || removed[0] != 1 || removed[1] != 3 || removed[2] != 5 {
		t.Fatalf("unexpected removed %v", removed)
	}
	if got := a.Values(); len(got) != 3 || got[0] != 0 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("unexpected kept %v", got)
	}
	if a.Has(hs[1]) || !a.Has(hs[2]) {
		t.Fatalf("handles out of sync after Retain")
	}
	a.Remove(hs[2])
	if got := a.Values(); len(got) != 2 || got[0] != 0 || got[1] != 4 {
		t.Fatalf("unexpected values after remove %v", got)
	}
}

func TestArenaZeroHandle(t *testing.T) {
	var a Arena[int]
	a.Add(1)
	if a.Has(0) || a.Remove(0) {
		t.Fatalf("the zero handle must never resolve")
	}
	if a.Len() != 1 {
		t.Fatalf("expected the value to survive, got %d", a.Len())
	}
}
