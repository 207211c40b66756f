package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Screen is one step of the session flow.
type Screen string

const (
	ScreenMenu     Screen = "menu"
	ScreenLoading  Screen = "loading"
	ScreenPlaying  Screen = "playing"
	ScreenGameOver Screen = "game-over"
)

// LevelLoader fetches a level by name.
type LevelLoader func(name string) (*levels.Level, error)

// Session drives the screens around attempts: menu, loading, playing and
// game over.
type Session struct {
	state   *State
	game    *Game
	physics *prefabs.PhysicsSpec
	logger  *log.Logger
	load    LevelLoader

	screen  Screen
	timer   Timer
	confirm bool
	level   string
}

// NewSession starts on the menu. A nil loader reads levels with levels.Load.
func NewSession(opts Options, load LevelLoader) (*Session, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if load == nil {
		load = levels.Load
	}
	state := NewState(opts.Physics.Game.Lives, opts.Physics.Game.Timer)
	g, err := New(state, opts)
	if err != nil {
		return nil, err
	}
	s := &Session{
		state:   state,
		game:    g,
		physics: opts.Physics,
		logger:  opts.Logger,
		load:    load,
	}
	if err := s.Push(ScreenMenu); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) State() *State     { return s.state }
func (s *Session) Game() *Game       { return s.game }
func (s *Session) Screen() Screen    { return s.screen }
func (s *Session) LevelName() string { return s.level }

// Push switches screens and starts the screen's timer.
func (s *Session) Push(screen Screen) error {
	switch screen {
	case ScreenMenu, ScreenPlaying:
		s.timer.Stop()
	case ScreenLoading:
		s.timer.Start(PhaseLoading, s.physics.Timers.LoadingDelay)
	case ScreenGameOver:
		s.timer.Start(PhaseGameOver, s.physics.Timers.GameOverDelay)
	default:
		return fmt.Errorf("game: screen %q: %w", screen, ErrUnknownScreen)
	}
	s.logger.Debug("screen", "from", s.screen, "to", screen)
	s.screen = screen
	return nil
}

// Confirm leaves the menu on the next update.
func (s *Session) Confirm() {
	if s.screen == ScreenMenu {
		s.confirm = true
	}
}

// Update advances the current screen one tick.
func (s *Session) Update() error {
	switch s.screen {
	case ScreenMenu:
		if s.confirm {
			s.confirm = false
			return s.Push(ScreenLoading)
		}
	case ScreenLoading:
		if s.timer.Tick() == PhaseLoading {
			if err := s.start(); err != nil {
				return err
			}
			return s.Push(ScreenPlaying)
		}
	case ScreenPlaying:
		if err := s.game.Update(); err != nil {
			return err
		}
		return s.afterAttempt()
	case ScreenGameOver:
		if s.timer.Tick() == PhaseGameOver {
			s.state.Reset()
			return s.Push(ScreenMenu)
		}
	default:
		return fmt.Errorf("game: screen %q: %w", s.screen, ErrUnknownScreen)
	}
	return nil
}

func (s *Session) afterAttempt() error {
	switch s.game.Outcome() {
	case Died:
		if s.state.Lives > 0 {
			return s.Push(ScreenLoading)
		}
		s.logger.Info("game over", "score", s.state.Score, "coins", s.state.Coins)
		return s.Push(ScreenGameOver)
	case Cleared:
		return s.Push(ScreenLoading)
	}
	return nil
}

// start loads the level for the current world and level.
func (s *Session) start() error {
	name := s.state.LevelName()
	lvl, err := s.load(name)
	if err != nil {
		return fmt.Errorf("game: level %s: %w", name, err)
	}
	if err := s.game.Load(lvl); err != nil {
		return err
	}
	s.level = name
	s.logger.Info("level started", "level", name, "world", s.state.World, "stage", s.state.Level)
	return nil
}

// Reload restarts the running attempt when name is the level being played.
// It reports whether a restart happened.
func (s *Session) Reload(name string) (bool, error) {
	if s.screen != ScreenPlaying || name != s.level {
		return false, nil
	}
	if err := s.start(); err != nil {
		return false, err
	}
	return true, nil
}
