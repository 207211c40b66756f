package main

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sound"
)

func testSession(t *testing.T) (*game.Session, *control.Controls) {
	t.Helper()
	physics, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		t.Fatalf("physics: %v", err)
	}
	physics.Timers.LoadingDelay = 1
	controls := control.New()
	s, err := game.NewSession(game.Options{
		Physics:  physics,
		Sounds:   &sound.Recorder{},
		Controls: controls,
		Logger:   log.New(io.Discard),
	}, nil)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return s, controls
}

func update(t *testing.T, s *game.Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
}

func TestLoadDemo(t *testing.T) {
	d, err := loadDemo("demo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(d.steps) != 9 {
		t.Fatalf("expected 9 steps, got %d", len(d.steps))
	}
	first := d.steps[0]
	if first.Key != control.Right || first.Ticks != common.TPS*2 {
		t.Fatalf("expected right for two seconds first, got %+v", first)
	}

	empty, err := loadDemo("")
	if err != nil || len(empty.steps) != 0 {
		t.Fatalf("expected an empty demo, got %+v, %v", empty, err)
	}
	if _, err := loadDemo("missing-script"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestDemoAppliesOncePerAttempt(t *testing.T) {
	s, controls := testSession(t)
	d := &demo{steps: []control.MacroStep{{Key: control.Right, Ticks: 30}}}

	if d.apply(s, controls) {
		t.Fatalf("macro must wait for an attempt")
	}
	s.Confirm()
	update(t, s, 2)
	if s.Screen() != game.ScreenPlaying {
		t.Fatalf("expected playing, got %s", s.Screen())
	}
	if !d.apply(s, controls) {
		t.Fatalf("expected the macro to start with the attempt")
	}
	if !controls.Held(control.Right) {
		t.Fatalf("expected right held by the macro")
	}
	update(t, s, 1)
	if d.apply(s, controls) {
		t.Fatalf("macro must not restart mid-attempt")
	}
}

func TestHeadlessStopsAtLimit(t *testing.T) {
	s, controls := testSession(t)
	stopped := 0
	h := &headless{session: s, controls: controls, demo: &demo{}, limit: 3, done: func() { stopped++ }}
	s.Confirm()
	for i := 0; i < 3; i++ {
		if err := h.tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if h.ticks != 3 || stopped != 1 {
		t.Fatalf("expected one stop after 3 ticks, got ticks %d stops %d", h.ticks, stopped)
	}
}

func TestSummary(t *testing.T) {
	s, _ := testSession(t)
	s.State().AddCoin()
	out := summary(s, 42)
	for _, want := range []string{"platformer run", "42", "1-1", "menu", "200"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryNamesMap(t *testing.T) {
	cases := []struct {
		name     string
		updates  int
		expected string
	}{
		{"menu", 0, "-"},
		{"playing", 2, "1-1/overworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := testSession(t)
			s.Confirm()
			update(t, s, tc.updates)
			if got := mapLabel(s); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
			if out := summary(s, 0); !strings.Contains(out, tc.expected) {
				t.Fatalf("summary missing %q:\n%s", tc.expected, out)
			}
		})
	}
}

func TestDescribeLevel(t *testing.T) {
	lvl := &levels.Level{Maps: []levels.SubMap{{Name: "overworld", Columns: 200}, {Name: "underground", Columns: 17}}}
	out := describeLevel("1-1", lvl)
	if !strings.Contains(out, "overworld (200 cols), underground (17 cols)") {
		t.Fatalf("unexpected description %q", out)
	}
}
