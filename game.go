package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/loop"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/sound"
)

// Game adapts a session to ebiten. ebiten calls Update once per display
// frame; the loop decides whether that frame runs a simulation tick.
type Game struct {
	session  *game.Session
	controls *control.Controls
	sounds   sound.Player
	loop     *loop.Loop
	input    *Input
	renderer *render.Renderer
	screens  *Screens
	demo     *demo
	watcher  *levels.Watcher
	logger   *log.Logger

	started time.Time
	paused  bool
}

// NewGame starts the loop immediately. watcher may be nil.
func NewGame(session *game.Session, controls *control.Controls, sounds sound.Player, d *demo, watcher *levels.Watcher, logger *log.Logger) *Game {
	g := &Game{
		session:  session,
		controls: controls,
		sounds:   sounds,
		input:    NewInput(),
		renderer: render.New(flagDebug),
		demo:     d,
		watcher:  watcher,
		logger:   logger,
		started:  time.Now(),
	}
	g.loop = loop.New(common.TPS, g.tick)
	g.screens = NewScreens(g.resume)
	g.loop.Start()
	return g
}

func (g *Game) tick() error {
	g.input.Repeat(g.controls)
	if err := g.session.Update(); err != nil {
		return err
	}
	if g.demo.apply(g.session, g.controls) {
		g.logger.Debug("macro started", "level", g.session.LevelName())
	}
	return nil
}

func (g *Game) Update() error {
	actions := g.input.Poll(g.controls)
	if actions.Debug {
		g.renderer.ToggleDebug()
	}
	if actions.Pause && g.session.Screen() == game.ScreenPlaying {
		if g.paused {
			g.resume()
		} else {
			g.pause()
		}
	}
	g.reload()

	g.screens.Refresh(g.session.State())
	if g.paused {
		g.screens.pause.Update()
		return nil
	}
	if actions.Confirm {
		g.session.Confirm()
	}
	ms := float64(time.Since(g.started)) / float64(time.Millisecond)
	if _, err := g.loop.Frame(ms); err != nil {
		return err
	}
	if ui := g.screens.For(g.session.Screen(), false); ui != nil {
		ui.Update()
	}
	return nil
}

func (g *Game) pause() {
	g.paused = true
	g.loop.Stop()
	g.sounds.PauseMusic()
	g.logger.Debug("paused", "tick", g.loop.Ticks())
}

func (g *Game) resume() {
	if !g.paused {
		return
	}
	g.paused = false
	g.loop.Start()
	g.sounds.ResumeMusic()
	g.logger.Debug("resumed")
}

// reload restarts the attempt when the watcher reports the level on disk
// changed.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Changed:
		if !ok {
			g.watcher = nil
			return
		}
		restarted, err := g.session.Reload(name)
		if err != nil {
			// An invalid edit leaves the running attempt as it was.
			g.logger.Error("level reload", "level", name, "err", err)
			return
		}
		if restarted {
			g.logger.Info("level reloaded", "level", name)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("level watcher", "err", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.Screen() == game.ScreenPlaying {
		g.renderer.Draw(screen, g.session.Game(), float64(g.loop.FPS()))
	} else {
		screen.Fill(colornames.Black)
	}
	if ui := g.screens.For(g.session.Screen(), g.paused); ui != nil {
		ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
