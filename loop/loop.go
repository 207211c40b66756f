// Package loop drives a fixed-step simulation from host frame callbacks.
package loop

import (
	"context"
	"math"
	"time"
)

// Loop runs tick at most once per interval. Frames arriving early are
// dropped, not accumulated, so a slow host runs the simulation slower
// instead of running several ticks per frame.
type Loop struct {
	tick     func() error
	interval float64
	then     float64
	running  bool
	fps      int
	ticks    uint64
}

func New(tps int, tick func() error) *Loop {
	if tps <= 0 {
		tps = 60
	}
	return &Loop{tick: tick, interval: 1000 / float64(tps)}
}

// Interval is the target time between ticks in milliseconds.
func (l *Loop) Interval() float64 { return l.interval }

// Start resumes ticking from a zero baseline.
func (l *Loop) Start() {
	l.running = true
	l.then = 0
}

// Stop cancels future ticks. A tick already running is not rolled back.
func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) IsRunning() bool { return l.running }

// FPS is the rate implied by the last accepted frame gap.
func (l *Loop) FPS() int { return l.fps }

// Ticks counts accepted frames since creation.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Frame handles one host frame at timestamp ts in milliseconds. It reports
// whether the tick ran.
func (l *Loop) Frame(ts float64) (bool, error) {
	if !l.running {
		return false, nil
	}
	delta := ts - l.then
	if delta < l.interval {
		return false, nil
	}
	l.fps = int(math.Round(1000 / delta))
	l.then = ts - math.Mod(delta, l.interval)
	l.ticks++
	if l.tick == nil {
		return true, nil
	}
	return true, l.tick()
}

// Run feeds Frame from ticks until ctx ends or a tick fails. Timestamps are
// measured from the first received tick.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time) error {
	var origin time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t, ok := <-ticks:
			if !ok {
				return nil
			}
			if origin.IsZero() {
				origin = t
			}
			ms := float64(t.Sub(origin)) / float64(time.Millisecond)
			if _, err := l.Frame(ms); err != nil {
				return err
			}
		}
	}
}
