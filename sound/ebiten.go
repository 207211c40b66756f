package sound

import (
	"bytes"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type note struct {
	freq float64
	secs float64
}

// Effects and tracks are synthesized square-wave phrases.
var effectNotes = map[Name][]note{
	Coin:           {{988, 0.05}, {1319, 0.25}},
	Jump:           {{523, 0.04}, {659, 0.04}, {784, 0.08}},
	Powerup:        {{523, 0.06}, {659, 0.06}, {784, 0.06}, {1047, 0.06}, {1319, 0.12}},
	Die:            {{494, 0.15}, {698, 0.15}, {698, 0.1}, {659, 0.1}, {587, 0.1}, {523, 0.3}},
	Bump:           {{110, 0.08}},
	Break:          {{196, 0.04}, {147, 0.04}, {110, 0.08}},
	Stomp:          {{392, 0.04}, {262, 0.06}},
	Goal:           {{392, 0.15}, {523, 0.15}, {659, 0.15}, {784, 0.15}, {1047, 0.15}, {1319, 0.4}},
	Fireball:       {{1568, 0.03}, {784, 0.03}},
	PowerupAppears: {{392, 0.05}, {440, 0.05}, {494, 0.05}, {523, 0.1}},
	Powerdown:      {{784, 0.06}, {659, 0.06}, {523, 0.06}, {392, 0.12}},
	PipeTravel:     {{196, 0.06}, {0, 0.04}, {196, 0.06}, {0, 0.04}, {196, 0.06}},
}

var musicNotes = map[Name][]note{
	Overworld: {
		{659, 0.15}, {659, 0.15}, {0, 0.15}, {659, 0.15}, {0, 0.15}, {523, 0.15}, {659, 0.3},
		{784, 0.3}, {0, 0.3}, {392, 0.3}, {0, 0.3},
	},
	Background: {
		{131, 0.15}, {262, 0.15}, {110, 0.15}, {220, 0.15}, {117, 0.15}, {233, 0.15}, {0, 0.6},
	},
}

// Ebiten plays synthesized sounds through the ebiten audio context.
type Ebiten struct {
	ctx     *audio.Context
	effects map[Name]*audio.Player
	music   map[Name]*audio.Player
	current Name
	logger  *log.Logger
}

func NewEbiten(logger *log.Logger) (*Ebiten, error) {
	if logger == nil {
		logger = log.Default()
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	e := &Ebiten{
		ctx:     ctx,
		effects: make(map[Name]*audio.Player, len(effectNotes)),
		music:   make(map[Name]*audio.Player, len(musicNotes)),
		logger:  logger,
	}
	for name, notes := range effectNotes {
		e.effects[name] = ctx.NewPlayerFromBytes(synth(notes))
	}
	for name, notes := range musicNotes {
		pcm := synth(notes)
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, err
		}
		p.SetVolume(0.4)
		e.music[name] = p
	}
	return e, nil
}

func (e *Ebiten) Play(name Name) {
	p, ok := e.effects[name]
	if !ok {
		e.logger.Debug("unknown sound", "name", name)
		return
	}
	_ = p.Rewind()
	p.Play()
}

func (e *Ebiten) PlayMusic(name Name) {
	if cur, ok := e.music[e.current]; ok {
		cur.Pause()
	}
	p, ok := e.music[name]
	if !ok {
		e.logger.Debug("unknown music", "name", name)
		e.current = ""
		return
	}
	e.current = name
	_ = p.Rewind()
	p.Play()
}

func (e *Ebiten) PauseMusic() {
	if p, ok := e.music[e.current]; ok {
		p.Pause()
	}
}

func (e *Ebiten) ResumeMusic() {
	if p, ok := e.music[e.current]; ok {
		p.Play()
	}
}

// synth renders notes as 16-bit little-endian stereo PCM. A zero frequency
// is a rest.
func synth(notes []note) []byte {
	var buf bytes.Buffer
	const amp int16 = math.MaxInt16 / 5
	for _, n := range notes {
		count := int(float64(sampleRate) * n.secs)
		for i := 0; i < count; i++ {
			var v int16
			if n.freq > 0 {
				phase := math.Mod(n.freq*float64(i)/sampleRate, 1)
				if phase < 0.5 {
					v = amp
				} else {
					v = -amp
				}
				// Linear fade over the last 200 samples.
				if rem := count - i; rem < 200 {
					v = int16(float64(v) * float64(rem) / 200)
				}
			}
			lo, hi := byte(v), byte(uint16(v)>>8)
			buf.Write([]byte{lo, hi, lo, hi})
		}
	}
	return buf.Bytes()
}
