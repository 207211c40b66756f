package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/loop"
	"github.com/milk9111/platformer/sound"
)

var (
	flagTicks int
	flagTPS   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate without a window",
	Long: `Start a run straight from the menu, simulate it without a window and
print a summary. The run ends after --ticks simulation ticks, on game over,
or on Ctrl+C. A --macro script drives the keys.

Examples:
  platformer run --macro demo
  platformer run --ticks 3600 --tps 600 --level 1-2`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Simulation ticks to run (0 = until game over)")
	runCmd.Flags().IntVar(&flagTPS, "tps", common.TPS, "Simulation ticks per wall-clock second")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	controls := control.New()
	session, err := newSession(sound.Nop{}, controls, logger)
	if err != nil {
		return err
	}
	d, err := loadDemo(flagMacro)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := &headless{session: session, controls: controls, demo: d, limit: flagTicks, done: cancel}
	l := loop.New(flagTPS, r.tick)
	l.Start()
	session.Confirm()

	// Half-interval ticks keep frame skipping from halving the rate.
	ticker := time.NewTicker(time.Duration(l.Interval() * float64(time.Millisecond) / 2))
	defer ticker.Stop()

	start := time.Now()
	err = l.Run(ctx, ticker.C)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Debug("run finished", "ticks", r.ticks, "elapsed", time.Since(start))
	fmt.Println(summary(session, r.ticks))
	return nil
}

// headless counts ticks and ends the run at its limit or on game over.
type headless struct {
	session  *game.Session
	controls *control.Controls
	demo     *demo
	limit    int
	ticks    int
	done     func()
}

func (h *headless) tick() error {
	if err := h.session.Update(); err != nil {
		return err
	}
	h.demo.apply(h.session, h.controls)
	h.ticks++
	if (h.limit > 0 && h.ticks >= h.limit) || h.session.Screen() == game.ScreenGameOver {
		h.done()
	}
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(8)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// mapLabel names the loaded level and its current map, or "-" before the
// first attempt.
func mapLabel(s *game.Session) string {
	w := s.Game().World()
	lvl := w.Level()
	if lvl == nil {
		return "-"
	}
	if m := w.Current(); m != nil {
		return lvl.Name + "/" + m.Name
	}
	return lvl.Name
}

func summary(s *game.Session, ticks int) string {
	st := s.State()
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("platformer run"),
		row("ticks", strconv.Itoa(ticks)),
		row("level", fmt.Sprintf("%d-%d", st.World, st.Level)),
		row("map", mapLabel(s)),
		row("screen", string(s.Screen())),
		row("score", strconv.Itoa(st.Score)),
		row("coins", strconv.Itoa(st.Coins)),
		row("lives", strconv.Itoa(st.Lives)),
		row("time", strconv.Itoa(st.Time)),
	))
}
