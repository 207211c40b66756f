// Package sound triggers named effects and background music. Callers never
// wait on playback.
package sound

import "sync"

type Name string

const (
	Coin           Name = "coin"
	Jump           Name = "jump"
	Powerup        Name = "powerup"
	Die            Name = "die"
	Bump           Name = "bump"
	Break          Name = "break"
	Stomp          Name = "stomp"
	Goal           Name = "goal"
	Fireball       Name = "fireball"
	PowerupAppears Name = "powerup-appears"
	Powerdown      Name = "powerdown"
	PipeTravel     Name = "pipe-travel"

	Overworld  Name = "overworld"
	Background Name = "background"
)

// Player plays one-shot effects and owns a single looping music track.
type Player interface {
	Play(name Name)
	PlayMusic(name Name)
	PauseMusic()
	ResumeMusic()
}

// Nop discards everything.
type Nop struct{}

func (Nop) Play(Name)      {}
func (Nop) PlayMusic(Name) {}
func (Nop) PauseMusic()    {}
func (Nop) ResumeMusic()   {}

// Recorder keeps every request for inspection.
type Recorder struct {
	mu      sync.Mutex
	effects []Name
	music   Name
	playing bool
}

func (r *Recorder) Play(name Name) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects = append(r.effects, name)
}

func (r *Recorder) PlayMusic(name Name) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.music = name
	r.playing = true
}

func (r *Recorder) PauseMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playing = false
}

func (r *Recorder) ResumeMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.music != "" {
		r.playing = true
	}
}

// Effects returns the played effects in order.
func (r *Recorder) Effects() []Name {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Name, len(r.effects))
	copy(out, r.effects)
	return out
}

// Count returns how many times name was played.
func (r *Recorder) Count(name Name) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.effects {
		if e == name {
			n++
		}
	}
	return n
}

// Music returns the current track and whether it is playing.
func (r *Recorder) Music() (Name, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.music, r.playing
}
