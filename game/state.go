package game

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

// Score awards.
const (
	ScoreCoin  = 200
	ScoreEnemy = 100
)

const levelsPerWorld = 3

// State is the run-wide progress shown on the HUD.
type State struct {
	Score int
	Coins int
	World int
	Level int
	Lives int
	Time  int

	startLives int
	startTime  int
	ticks      int
}

func NewState(lives, timer int) *State {
	s := &State{startLives: lives, startTime: timer}
	s.Reset()
	return s
}

func (s *State) IncreaseScore(points int) {
	s.Score += points
}

// AddCoin counts one coin and awards its score.
func (s *State) AddCoin() {
	s.Coins++
	s.IncreaseScore(ScoreCoin)
}

// DecreaseLife removes a life and returns how many remain.
func (s *State) DecreaseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives
}

// NextLevel advances to the following level, rolling into the next world
// after the third.
func (s *State) NextLevel() {
	s.Level++
	if s.Level > levelsPerWorld {
		s.Level = 1
		s.World++
	}
}

// LevelName is the level file for the current world and level.
func (s *State) LevelName() string {
	return levels.Resolve(s.World, s.Level)
}

// SetLevel positions the run at a "world-level" name such as "1-2".
func (s *State) SetLevel(name string) error {
	var world, level int
	if _, err := fmt.Sscanf(name, "%d-%d", &world, &level); err != nil || world < 1 || level < 1 {
		return fmt.Errorf("level %q: %w", name, levels.ErrUnknownLevel)
	}
	s.World, s.Level = world, level
	return nil
}

// StartTimer rewinds the countdown for a new attempt.
func (s *State) StartTimer() {
	s.Time = s.startTime
	s.ticks = 0
}

// Tick advances the countdown by one simulation tick. It returns true on the
// tick the timer runs out.
func (s *State) Tick() bool {
	if s.Time <= 0 {
		return false
	}
	s.ticks++
	if s.ticks < common.TPS {
		return false
	}
	s.ticks = 0
	s.Time--
	return s.Time == 0
}

// Reset starts a new run.
func (s *State) Reset() {
	s.Score = 0
	s.Coins = 0
	s.World = 1
	s.Level = 1
	s.Lives = s.startLives
	s.Time = 0
	s.ticks = 0
}
