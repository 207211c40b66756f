package game

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sound"
	"github.com/milk9111/platformer/sprite"
)

// Controller moves the player one tick at a time against the visible tiles
// and reports block hits, pipe rides and deaths through its event queue.
type Controller struct {
	Player *entity.Player

	controls *control.Controls
	physics  *prefabs.PhysicsSpec
	lookup   sprite.Lookup
	sounds   sound.Player
	logger   *log.Logger

	state    playerState
	ctx      *stateContext
	contacts collision.Contacts[*entity.Tile]
	events   EventQueue

	override Timer
	pipe     entity.Transport
	jump     struct {
		count   int
		enabled bool
	}
	err error
}

// NewController wires player to opts. opts must already carry defaults.
func NewController(player *entity.Player, opts Options) *Controller {
	c := &Controller{
		Player:   player,
		controls: opts.Controls,
		physics:  opts.Physics,
		lookup:   opts.Lookup,
		sounds:   opts.Sounds,
		logger:   opts.Logger,
		state:    playerStateIdle,
	}
	c.ctx = &stateContext{
		Controls:        c.controls,
		Grounded:        func() bool { return c.contacts.HasBottom },
		Heading:         c.heading,
		Jump:            c.startJump,
		TrackJumpHold:   c.trackJumpHold,
		Fire:            c.fire,
		ChangeState:     c.changeState,
		ChangeAnimation: c.refreshSprite,
	}
	if player.Speed == 0 {
		player.Speed = opts.Physics.Speed
	}
	player.State = entity.Idle
	c.refreshSprite()
	return c
}

// State is the current controller state.
func (c *Controller) State() entity.PlayerState { return c.state.Kind() }

// Contacts are the tile contacts probed at the start of the last tick.
func (c *Controller) Contacts() collision.Contacts[*entity.Tile] { return c.contacts }

// Events drains the events produced since the last call.
func (c *Controller) Events() []Event { return c.events.Drain() }

// Update runs one tick. The returned error is a sprite lookup failure.
func (c *Controller) Update(tiles []*entity.Tile) error {
	p := c.Player
	c.contacts = collision.Probe(p.Rect, tiles)
	c.tickPowers()

	if p.Override != entity.OverrideNone {
		c.runOverride()
	} else {
		c.state.HandleInput(c.ctx)
		c.move()
		c.boundaries()
		c.state.Update(c.ctx)
		c.enterPipe()
	}

	c.stepFireballs(tiles)
	p.Sprite.Animate()
	return c.takeErr()
}

func (c *Controller) tier() prefabs.TierPhysicsSpec {
	if c.Player.Tier.Big() {
		return c.physics.Powered
	}
	return c.physics.Small
}

// heading is the first held horizontal key, or None.
func (c *Controller) heading() control.Direction {
	for _, d := range c.controls.Keys() {
		if d.Horizontal() {
			return d
		}
	}
	return control.None
}

func (c *Controller) startJump() {
	if c.Player.VY < 0 {
		return
	}
	c.Player.VY = c.tier().Jump
	c.sounds.Play(sound.Jump)
}

// trackJumpHold grants one extra impulse per continuous hold of up.
func (c *Controller) trackJumpHold() {
	if !c.controls.Held(control.Up) {
		c.jump.count = 0
		c.jump.enabled = false
		return
	}
	c.jump.count++
	if !c.physics.DoubleJump.Enabled || c.jump.enabled {
		return
	}
	if c.jump.count >= c.physics.DoubleJump.HoldTicks {
		c.jump.enabled = true
		c.Player.VY += c.tier().DoubleJumpBoost
	}
}

func (c *Controller) fire() {
	p := c.Player
	if p.Tier != entity.TierFire || len(p.LiveFireballs()) >= c.physics.Fireballs.Max {
		return
	}
	dir := c.controls.Horizontal()
	x := p.X + p.Width
	if dir == control.Left {
		x = p.X - 8
	}
	f := entity.NewFireball(x, p.Y+p.Height/4, dir)
	if err := f.SetSprite(c.lookup, "fireball"); err != nil {
		c.fail(err)
		return
	}
	p.Fireballs = append(p.Fireballs, f)
	c.sounds.Play(sound.Fireball)
}

func (c *Controller) move() {
	p := c.Player
	if d := c.heading(); d != control.None {
		p.X += d.Axis().X * p.Speed
	}
	if !c.contacts.HasBottom {
		p.VY += c.tier().Gravity
	}
	p.Y += p.VY
}

func (c *Controller) boundaries() {
	p := c.Player
	hit := c.contacts

	if hit.HasBottom && p.VY >= 0 {
		p.Y = hit.Bottom.Y - p.Height
		p.VY = 0
	}
	if hit.HasTop && p.VY < 0 {
		p.Y = hit.Top.Y + hit.Top.Height
		p.VY = 0
		c.events.Push(Event{Kind: EventBlockHit, Tile: hit.Top})
	}

	switch c.heading() {
	case control.Right:
		if hit.HasRight {
			p.X = hit.Right.X - p.Width
		}
	case control.Left:
		if hit.HasLeft {
			p.X = hit.Left.X + hit.Left.Width
		}
	}

	if p.X < 0 {
		p.X = 0
	}
	if limit := common.BaseWidth - c.physics.RightMargin; p.X+p.Width > limit {
		p.X = limit - p.Width
	}
}

func (c *Controller) enterPipe() {
	hit := c.contacts
	if !hit.HasBottom || hit.Bottom.Kind != entity.TilePipe || hit.Bottom.Transport == nil {
		return
	}
	if !c.controls.Held(control.Down) {
		return
	}
	p := c.Player
	c.pipe = *hit.Bottom.Transport
	p.Override = entity.OverridePipeIn
	if c.pipe.Direction == entity.TransportOut {
		p.Override = entity.OverridePipeOut
	}
	p.VY = 0
	c.override.Start(PhasePipe, c.physics.Timers.PipeDelay)
	c.sounds.Play(sound.PipeTravel)
	c.logger.Debug("pipe travel", "map", c.pipe.Map, "direction", c.pipe.Direction, "column", c.pipe.Column)
}

// runOverride plays the canned animation in place of normal control.
func (c *Controller) runOverride() {
	p := c.Player
	switch p.Override {
	case entity.OverrideDead:
		p.Y += p.VY
		p.VY += c.physics.DeathGravity
	case entity.OverridePipeIn, entity.OverridePipeOut:
		p.Y += p.VY
		p.VY += c.physics.PipeGravity
		if c.override.Tick() == PhasePipe {
			p.Override = entity.OverrideNone
			c.events.Push(Event{Kind: EventPipe, Transport: c.pipe})
		}
	case entity.OverrideSlidingDown:
		if c.contacts.HasBottom {
			p.X = c.contacts.Bottom.X + common.TileSize
			p.VY = 0
			p.Override = entity.OverrideNone
			c.controls.LoadMacros([]control.MacroStep{{Key: control.Right, Ticks: c.physics.Timers.SlideMacro}})
			c.events.Push(Event{Kind: EventSlid})
			return
		}
		p.Y += p.VY
		p.VY += c.physics.SlideGravity
	}
}

func (c *Controller) tickPowers() {
	p := c.Player
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	if p.Tier == entity.TierStar {
		p.StarTicks--
		if p.StarTicks <= 0 {
			p.StarTicks = 0
			p.EndStar()
			c.refreshSprite()
		}
	}
}

func (c *Controller) stepFireballs(tiles []*entity.Tile) {
	p := c.Player
	for _, f := range p.Fireballs {
		if f.Step(tiles) {
			c.sounds.Play(sound.Bump)
		}
	}
	p.LiveFireballs()
}

func (c *Controller) changeState(next playerState) {
	if next == c.state {
		return
	}
	prev := c.state
	prev.Exit(c.ctx)
	c.state = next
	c.Player.State = next.Kind()
	next.Enter(c.ctx)
	c.logger.Debug("player state", "from", prev.Name(), "to", next.Name())
}

// refreshSprite re-applies the sprite for the current state and tier.
func (c *Controller) refreshSprite() {
	p := c.Player
	if err := p.SetSprite(c.lookup, entity.PlayerSpriteKey(p.State, p.Tier)); err != nil {
		c.fail(err)
	}
}

func (c *Controller) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Controller) takeErr() error {
	err := c.err
	c.err = nil
	return err
}

// Kill starts the death sequence. It returns false if the player is already
// dying.
func (c *Controller) Kill() bool {
	p := c.Player
	if p.Override == entity.OverrideDead {
		return false
	}
	c.sounds.Play(sound.Die)
	c.sounds.PauseMusic()
	c.override.Stop()
	p.Override = entity.OverrideDead
	p.VY = c.physics.DeathHop
	c.changeState(playerStateDead)
	c.events.Push(Event{Kind: EventDied})
	c.logger.Debug("player died", "x", p.X, "y", p.Y)
	return true
}

// Dying reports whether the death sequence is running.
func (c *Controller) Dying() bool {
	return c.Player.Override == entity.OverrideDead
}

// Damage resolves a harmful enemy contact: unpowered players die, powered
// ones drop to the base tier and become briefly invulnerable.
func (c *Controller) Damage() {
	p := c.Player
	if p.Override != entity.OverrideNone || p.Invulnerable > 0 || p.Tier == entity.TierStar {
		return
	}
	if p.Tier == entity.TierNone {
		c.Kill()
		return
	}
	p.SetTier(entity.TierNone)
	p.Invulnerable = c.physics.Timers.Invulnerable
	c.sounds.Play(sound.Powerdown)
	c.refreshSprite()
	c.logger.Debug("player damaged", "invulnerable", p.Invulnerable)
}

// Bounce is the small hop after a stomp.
func (c *Controller) Bounce() {
	c.Player.VY = c.physics.StompBounce
}

// PowerUp applies a collected item. It returns true when the tier changed.
func (c *Controller) PowerUp(kind entity.ItemKind) bool {
	p := c.Player
	var changed bool
	switch kind {
	case entity.ItemMushroom:
		changed = p.Promote(entity.TierMushroom)
	case entity.ItemFireFlower:
		changed = p.Promote(entity.TierFire)
	case entity.ItemStar:
		changed = p.Promote(entity.TierStar)
		p.StarTicks = c.physics.Timers.Star
	default:
		return false
	}
	c.sounds.Play(sound.Powerup)
	if changed {
		c.refreshSprite()
		c.logger.Debug("power up", "item", kind, "tier", p.Tier)
	}
	return changed
}

// ReachFlag starts the flag slide. It returns false when a slide or death is
// already running.
func (c *Controller) ReachFlag() bool {
	p := c.Player
	if p.Override == entity.OverrideSlidingDown || p.Override == entity.OverrideDead {
		return false
	}
	c.changeState(playerStateSlide)
	p.Override = entity.OverrideSlidingDown
	p.VY = 0
	p.X += c.physics.SlideOffset
	return true
}
