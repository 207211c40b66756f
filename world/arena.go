package world

// Handle names an arena slot. Handles of removed values never resolve again;
// the zero Handle never resolves.
type Handle uint64

type slotID uint32
type generation uint32

const slotIDBits = 32

func makeHandle(id slotID, gen generation) Handle {
	return Handle(uint64(gen)<<slotIDBits | uint64(id))
}

func (h Handle) id() slotID {
	return slotID(uint32(h))
}

func (h Handle) generation() generation {
	return generation(uint32(uint64(h) >> slotIDBits))
}

// Arena stores values in insertion order. Removal keeps the remaining order
// intact; freed slots are reused with a bumped generation.
type Arena[T any] struct {
	gen    []generation
	values []T
	pos    []int
	free   []slotID
	order  []Handle
}

func (a *Arena[T]) Add(v T) Handle {
	var id slotID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.gen = append(a.gen, 0)
		a.values = append(a.values, v)
		a.pos = append(a.pos, -1)
		id = slotID(len(a.gen))
	}
	a.values[id-1] = v
	h := makeHandle(id, a.gen[id-1])
	a.pos[id-1] = len(a.order)
	a.order = append(a.order, h)
	return h
}

func (a *Arena[T]) Has(h Handle) bool {
	id := h.id()
	if id == 0 || int(id) > len(a.gen) {
		return false
	}
	return a.gen[id-1] == h.generation() && a.pos[id-1] >= 0
}

func (a *Arena[T]) Remove(h Handle) bool {
	if !a.Has(h) {
		return false
	}
	idx := a.pos[h.id()-1]
	copy(a.order[idx:], a.order[idx+1:])
	a.order = a.order[:len(a.order)-1]
	for i := idx; i < len(a.order); i++ {
		a.pos[a.order[i].id()-1] = i
	}
	a.release(h.id())
	return true
}

// Retain keeps values for which keep returns true and returns the removed
// ones in order.
func (a *Arena[T]) Retain(keep func(T) bool) []T {
	var removed []T
	kept := a.order[:0]
	for _, h := range a.order {
		v := a.values[h.id()-1]
		if keep(v) {
			a.pos[h.id()-1] = len(kept)
			kept = append(kept, h)
			continue
		}
		removed = append(removed, v)
		a.release(h.id())
	}
	a.order = kept
	return removed
}

func (a *Arena[T]) release(id slotID) {
	var zero T
	a.values[id-1] = zero
	a.pos[id-1] = -1
	a.gen[id-1]++
	a.free = append(a.free, id)
}

func (a *Arena[T]) Len() int { return len(a.order) }

// Values returns live values in insertion order.
func (a *Arena[T]) Values() []T {
	out := make([]T, len(a.order))
	for i, h := range a.order {
		out[i] = a.values[h.id()-1]
	}
	return out
}

// Each calls fn for every live value in insertion order.
func (a *Arena[T]) Each(fn func(Handle, T)) {
	for _, h := range a.order {
		fn(h, a.values[h.id()-1])
	}
}
