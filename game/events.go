package game

import "github.com/milk9111/platformer/entity"

type EventKind int

const (
	// EventBlockHit fires when the player's head strikes a tile.
	EventBlockHit EventKind = iota
	// EventPipe fires when a pipe ride finishes.
	EventPipe
	// EventDied fires once when the death sequence starts.
	EventDied
	// EventSlid fires when the flag slide reaches the ground.
	EventSlid
)

func (k EventKind) String() string {
	switch k {
	case EventBlockHit:
		return "block-hit"
	case EventPipe:
		return "pipe"
	case EventDied:
		return "died"
	case EventSlid:
		return "slid"
	}
	return "unknown"
}

// Event is a player-side outcome the orchestrator resolves.
type Event struct {
	Kind      EventKind
	Tile      *entity.Tile
	Transport entity.Transport
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int { return len(q.items) }
