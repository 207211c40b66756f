package game

// Phase names a timed sequence.
type Phase string

const (
	PhaseNone     Phase = ""
	PhasePipe     Phase = "pipe"
	PhaseDeath    Phase = "death"
	PhaseGoal     Phase = "goal"
	PhaseLoading  Phase = "loading"
	PhaseGameOver Phase = "game-over"
)

// Timer counts simulation ticks for one phase at a time.
type Timer struct {
	phase     Phase
	remaining int
}

// Start replaces any running phase. Durations below one tick finish on the
// next Tick.
func (t *Timer) Start(p Phase, ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	t.phase = p
	t.remaining = ticks
}

func (t *Timer) Stop() {
	t.phase = PhaseNone
	t.remaining = 0
}

func (t *Timer) Phase() Phase   { return t.phase }
func (t *Timer) Remaining() int { return t.remaining }
func (t *Timer) Active() bool   { return t.phase != PhaseNone }

// Tick advances the running phase and returns it on the tick it completes,
// PhaseNone otherwise.
func (t *Timer) Tick() Phase {
	if t.phase == PhaseNone {
		return PhaseNone
	}
	t.remaining--
	if t.remaining > 0 {
		return PhaseNone
	}
	done := t.phase
	t.Stop()
	return done
}
