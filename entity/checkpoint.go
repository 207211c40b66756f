package entity

import "github.com/milk9111/platformer/common"

type CheckpointKind int

const (
	CheckpointFlag CheckpointKind = iota
)

const (
	flagHeight     = 176
	flagRaiseEvery = 5
	// FlagTop is the last banner position.
	FlagTop = 9
)

// Checkpoint is the end-of-level flag. Reaching it starts the banner
// animation, which deactivates itself at the top.
type Checkpoint struct {
	Body
	Kind     CheckpointKind
	Reached  bool
	Position int

	interval int
}

func NewCheckpoint(kind CheckpointKind, x, y float64) *Checkpoint {
	c := &Checkpoint{
		Body:     NewBody(x, y, common.TileSize, flagHeight),
		Kind:     kind,
		Position: 1,
	}
	c.Active = false
	return c
}

// Reach marks the checkpoint touched. It returns false if it already was.
func (c *Checkpoint) Reach() bool {
	if c.Reached {
		return false
	}
	c.Reached = true
	c.Activate()
	return true
}

func (c *Checkpoint) Update() {
	if !c.Active {
		return
	}
	c.interval = (c.interval + 1) % 60
	if c.interval%flagRaiseEvery == 0 && c.Position < FlagTop {
		c.Position++
	}
	if c.Position == FlagTop {
		c.Deactivate()
	}
}
