package game

import (
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/entity"
)

// playerState owns the input handling and transitions of one controller
// state.
type playerState interface {
	Name() string
	Kind() entity.PlayerState
	Enter(ctx *stateContext)
	Exit(ctx *stateContext)
	HandleInput(ctx *stateContext)
	Update(ctx *stateContext)
}

// stateContext gives states controlled access to the controller.
type stateContext struct {
	Controls        *control.Controls
	Grounded        func() bool
	Heading         func() control.Direction
	Jump            func()
	TrackJumpHold   func()
	Fire            func()
	ChangeState     func(state playerState)
	ChangeAnimation func()
}

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle  playerState = &playerIdleState{}
	playerStateRun   playerState = &playerRunState{}
	playerStateJump  playerState = &playerJumpState{}
	playerStateDead  playerState = &playerDeadState{}
	playerStateSlide playerState = &playerSlideState{}
)

type playerIdleState struct{}

type playerRunState struct{}

type playerJumpState struct{}

type playerDeadState struct{}

type playerSlideState struct{}

// groundedInput is shared by the states that accept control.
func groundedInput(ctx *stateContext) {
	if ctx.Controls.Held(control.Up) && ctx.Grounded() {
		ctx.Jump()
	}
	ctx.TrackJumpHold()
	if ctx.Controls.ConsumeFire() {
		ctx.Fire()
	}
}

// settle picks the state implied by the floor contact and held keys.
func settle(ctx *stateContext) {
	switch {
	case !ctx.Grounded():
		ctx.ChangeState(playerStateJump)
	case ctx.Heading() != control.None:
		ctx.ChangeState(playerStateRun)
	default:
		ctx.ChangeState(playerStateIdle)
	}
}

func (playerIdleState) Name() string                  { return "idle" }
func (playerIdleState) Kind() entity.PlayerState      { return entity.Idle }
func (playerIdleState) Enter(ctx *stateContext)       { ctx.ChangeAnimation() }
func (playerIdleState) Exit(ctx *stateContext)        {}
func (playerIdleState) HandleInput(ctx *stateContext) { groundedInput(ctx) }
func (playerIdleState) Update(ctx *stateContext)      { settle(ctx) }

func (playerRunState) Name() string                  { return "run" }
func (playerRunState) Kind() entity.PlayerState      { return entity.Running }
func (playerRunState) Enter(ctx *stateContext)       { ctx.ChangeAnimation() }
func (playerRunState) Exit(ctx *stateContext)        {}
func (playerRunState) HandleInput(ctx *stateContext) { groundedInput(ctx) }
func (playerRunState) Update(ctx *stateContext)      { settle(ctx) }

func (playerJumpState) Name() string             { return "jump" }
func (playerJumpState) Kind() entity.PlayerState { return entity.Jumping }
func (playerJumpState) Enter(ctx *stateContext)  { ctx.ChangeAnimation() }
func (playerJumpState) Exit(ctx *stateContext)   {}
func (playerJumpState) HandleInput(ctx *stateContext) {
	groundedInput(ctx)
}
func (playerJumpState) Update(ctx *stateContext) { settle(ctx) }

// Dead and sliding are driven by animation overrides and ignore input.
func (playerDeadState) Name() string                  { return "dead" }
func (playerDeadState) Kind() entity.PlayerState      { return entity.Dead }
func (playerDeadState) Enter(ctx *stateContext)       { ctx.ChangeAnimation() }
func (playerDeadState) Exit(ctx *stateContext)        {}
func (playerDeadState) HandleInput(ctx *stateContext) {}
func (playerDeadState) Update(ctx *stateContext)      {}

func (playerSlideState) Name() string                  { return "sliding" }
func (playerSlideState) Kind() entity.PlayerState      { return entity.Sliding }
func (playerSlideState) Enter(ctx *stateContext)       { ctx.ChangeAnimation() }
func (playerSlideState) Exit(ctx *stateContext)        {}
func (playerSlideState) HandleInput(ctx *stateContext) {}
func (playerSlideState) Update(ctx *stateContext)      { settle(ctx) }
