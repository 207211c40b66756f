package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFrameThreshold(t *testing.T) {
	count := 0
	l := New(60, func() error { count++; return nil })
	l.Start()

	interval := 1000.0 / 60

	tests := []struct {
		name     string
		ts       float64
		expected bool
	}{
		{"first_frame_after_start", 20, true},
		{"too_early", 25, false},
		{"exactly_interval", 20 + interval, true},
		{"slow_frame", 93.5, true},
		{"just_short", 99.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ran, err := l.Frame(tc.ts)
			if err != nil {
				t.Fatalf("frame: %v", err)
			}
			if ran != tc.expected {
				t.Fatalf("expected ran=%v at %v", tc.expected, tc.ts)
			}
		})
	}
	if count != 3 {
		t.Fatalf("expected 3 ticks, got %d", count)
	}
}

func TestFrameAbsorbsRemainder(t *testing.T) {
	l := New(60, nil)
	l.Start()
	interval := l.Interval()

	if ran, _ := l.Frame(interval * 1.5); !ran {
		t.Fatalf("expected tick")
	}
	// then = 1.5i - 0.5i = i, so the next tick is due at 2i.
	if ran, _ := l.Frame(interval*2 - 0.01); ran {
		t.Fatalf("expected no tick before 2 intervals")
	}
	if ran, _ := l.Frame(interval*2 + 0.01); !ran {
		t.Fatalf("expected tick after 2 intervals")
	}
	if l.FPS() != 60 {
		t.Fatalf("expected fps 60, got %d", l.FPS())
	}
}

func TestSlowHostDropsTicks(t *testing.T) {
	l := New(60, nil)
	l.Start()
	// A 30 Hz host gets 30 ticks per second, not 60.
	for i := 1; i <= 30; i++ {
		l.Frame(float64(i) * 1000 / 30)
	}
	if l.Ticks() != 30 {
		t.Fatalf("expected 30 ticks, got %d", l.Ticks())
	}
}

func TestStopStart(t *testing.T) {
	count := 0
	l := New(60, func() error { count++; return nil })
	if l.IsRunning() {
		t.Fatalf("new loop should not run")
	}
	if ran, _ := l.Frame(1000); ran {
		t.Fatalf("stopped loop should not tick")
	}
	l.Start()
	l.Frame(1000)
	l.Stop()
	l.Frame(2000)
	if count != 1 || l.IsRunning() {
		t.Fatalf("expected one tick then stop, got %d", count)
	}
	l.Start()
	if ran, _ := l.Frame(2001); !ran {
		t.Fatalf("expected tick after restart")
	}
}

func TestFramePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	l := New(60, func() error { return boom })
	l.Start()
	if _, err := l.Frame(100); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRun(t *testing.T) {
	boom := errors.New("done")
	count := 0
	l := New(60, func() error {
		count++
		if count == 3 {
			return boom
		}
		return nil
	})
	l.Start()

	ticks := make(chan time.Time, 8)
	origin := time.Unix(0, 0)
	for i := 0; i < 8; i++ {
		ticks <- origin.Add(time.Duration(i) * 20 * time.Millisecond)
	}
	close(ticks)

	err := l.Run(context.Background(), ticks)
	if !errors.Is(err, boom) {
		t.Fatalf("expected tick error, got %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 ticks, got %d", count)
	}
}

func TestRunContextCancel(t *testing.T) {
	l := New(60, nil)
	l.Start()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx, make(chan time.Time)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancel, got %v", err)
	}
}
