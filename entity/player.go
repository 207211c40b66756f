package entity

import (
	"github.com/milk9111/platformer/common"
)

type PlayerState int

const (
	Idle PlayerState = iota
	Running
	Jumping
	Dead
	Sliding
)

func (s PlayerState) String() string {
	switch s {
	case Running:
		return "run"
	case Jumping:
		return "jump"
	case Dead:
		return "dead"
	case Sliding:
		return "sliding"
	}
	return "idle"
}

type Tier int

const (
	TierNone Tier = iota
	TierMushroom
	TierFire
	TierStar
)

func (t Tier) String() string {
	switch t {
	case TierMushroom:
		return "mushroom"
	case TierFire:
		return "fire"
	case TierStar:
		return "star"
	}
	return "none"
}

// Big reports whether the tier uses the tall body.
func (t Tier) Big() bool { return t != TierNone }

// Override is a canned animation that suspends normal control while set.
type Override int

const (
	OverrideNone Override = iota
	OverridePipeIn
	OverridePipeOut
	OverrideSlidingDown
	OverrideDead
)

func (o Override) String() string {
	switch o {
	case OverridePipeIn:
		return "pipe-in"
	case OverridePipeOut:
		return "pipe-out"
	case OverrideSlidingDown:
		return "sliding-down"
	case OverrideDead:
		return "dead"
	}
	return "none"
}

const (
	SmallHeight = common.TileSize
	BigHeight   = 2 * common.TileSize
)

// PlayerSpriteKey is the lookup key for a state and tier pair.
func PlayerSpriteKey(state PlayerState, tier Tier) string {
	if state == Dead {
		return "dead"
	}
	size := "small"
	switch tier {
	case TierMushroom:
		size = "big"
	case TierFire:
		size = "fire"
	case TierStar:
		size = "star"
	}
	return state.String() + "-" + size
}

type Player struct {
	Body
	VY        float64
	Speed     float64
	State     PlayerState
	Tier      Tier
	Override  Override
	Fireballs []*Fireball

	// Invulnerable counts down ticks of immunity after taking damage.
	Invulnerable int
	// StarTicks counts down the star tier; the previous tier is restored at 0.
	StarTicks int
	starFrom  Tier
}

func NewPlayer(x, y float64) *Player {
	return &Player{Body: NewBody(x, y, common.TileSize, SmallHeight)}
}

// SetTier changes tier and resizes the body keeping the bottom edge fixed.
func (p *Player) SetTier(t Tier) {
	if t == TierStar && p.Tier != TierStar {
		p.starFrom = p.Tier
	}
	bottom := p.Bottom()
	p.Tier = t
	if t.Big() {
		p.Height = BigHeight
	} else {
		p.Height = SmallHeight
	}
	p.Y = bottom - p.Height
}

// Promote raises the tier to t when it is an upgrade. While a star is active
// the tier restored afterwards is raised instead.
func (p *Player) Promote(t Tier) bool {
	switch {
	case t == TierStar:
		p.SetTier(TierStar)
		return true
	case p.Tier == TierStar:
		if t > p.starFrom {
			p.starFrom = t
			return true
		}
		return false
	case t <= p.Tier:
		return false
	}
	p.SetTier(t)
	return true
}

// EndStar restores the tier held before the star.
func (p *Player) EndStar() {
	if p.Tier != TierStar {
		return
	}
	p.SetTier(p.starFrom)
}

// LiveFireballs drops inactive fireballs and returns the remaining ones.
func (p *Player) LiveFireballs() []*Fireball {
	live := p.Fireballs[:0]
	for _, f := range p.Fireballs {
		if f.Active {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(p.Fireballs); i++ {
		p.Fireballs[i] = nil
	}
	p.Fireballs = live
	return live
}

// Column is the player's tile column on the canvas.
func (p *Player) Column() int { return int(p.X) / common.TileSize }

// Row is the player's tile row.
func (p *Player) Row() int { return int(p.Y) / common.TileSize }
