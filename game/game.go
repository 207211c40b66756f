package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sound"
	"github.com/milk9111/platformer/sprite"
	"github.com/milk9111/platformer/world"
)

// Outcome is how the current attempt stands.
type Outcome int

const (
	Playing Outcome = iota
	// Died means the death sequence finished.
	Died
	// Cleared means the goal sequence finished and the state moved on.
	Cleared
)

func (o Outcome) String() string {
	switch o {
	case Died:
		return "died"
	case Cleared:
		return "cleared"
	}
	return "playing"
}

// Fallback themes when a sub-map does not declare its own.
const (
	OverworldBackground   = "#5d95fc"
	UndergroundBackground = "#000000"
)

const (
	spawnX   = 0
	spawnY   = common.BaseHeight - 48
	pipeExit = 2 * common.TileSize
)

// Game is one attempt at a level: the player, the streamed world and the
// entities spawned during play.
type Game struct {
	state    *State
	physics  *prefabs.PhysicsSpec
	lookup   sprite.Lookup
	sounds   sound.Player
	controls *control.Controls
	logger   *log.Logger

	world      *world.World
	player     *entity.Player
	controller *Controller
	camera     *Camera

	items      []*entity.Item
	timer      Timer
	outcome    Outcome
	background string
	music      sound.Name
	ticks      int
}

// New builds a game sharing state with the session.
func New(state *State, opts Options) (*Game, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = NewState(opts.Physics.Game.Lives, opts.Physics.Game.Timer)
	}
	w := world.New(opts.Lookup, opts.Logger)
	w.SetEnemySpeed(opts.Physics.EnemySpeed)
	return &Game{
		state:    state,
		physics:  opts.Physics,
		lookup:   opts.Lookup,
		sounds:   opts.Sounds,
		controls: opts.Controls,
		logger:   opts.Logger,
		world:    w,
		camera:   NewCamera(opts.Physics.FollowThreshold),
	}, nil
}

func (g *Game) options() Options {
	return Options{
		Physics:  g.physics,
		Lookup:   g.lookup,
		Sounds:   g.sounds,
		Controls: g.controls,
		Logger:   g.logger,
	}
}

// Load starts a fresh attempt at lvl.
func (g *Game) Load(lvl *levels.Level) error {
	if err := g.world.Load(lvl); err != nil {
		return err
	}
	g.controls.Clear()
	g.player = entity.NewPlayer(spawnX, spawnY)
	g.controller = NewController(g.player, g.options())
	if err := g.controller.takeErr(); err != nil {
		return fmt.Errorf("game: player: %w", err)
	}
	g.items = nil
	g.timer.Stop()
	g.outcome = Playing
	g.ticks = 0
	g.state.StartTimer()
	g.applyTheme(g.world.Current(), entity.TransportOut)
	g.logger.Debug("attempt started", "level", lvl.Name, "world", g.state.World, "stage", g.state.Level, "lives", g.state.Lives)
	return nil
}

func (g *Game) State() *State               { return g.state }
func (g *Game) World() *world.World         { return g.world }
func (g *Game) Player() *entity.Player      { return g.player }
func (g *Game) Controller() *Controller     { return g.controller }
func (g *Game) Camera() *Camera             { return g.camera }
func (g *Game) Items() []*entity.Item       { return g.items }
func (g *Game) Outcome() Outcome            { return g.outcome }
func (g *Game) Background() string          { return g.background }
func (g *Game) Music() sound.Name           { return g.music }
func (g *Game) Ticks() int                  { return g.ticks }
func (g *Game) Controls() *control.Controls { return g.controls }

// Update advances the attempt one tick. Errors are content lookup failures.
func (g *Game) Update() error {
	if g.player == nil || g.outcome != Playing {
		return nil
	}
	g.ticks++
	g.controls.Tick()

	if err := g.controller.Update(g.world.Tiles()); err != nil {
		return err
	}
	if err := g.resolve(); err != nil {
		return err
	}

	g.world.Update()
	g.stepItems()
	if dx := g.camera.Follow(g.player, g.world); dx != 0 {
		g.relocate(dx)
	}

	if !g.controller.Dying() {
		if err := g.collideEnemies(); err != nil {
			return err
		}
		g.collideFireballs()
		g.collectCoins()
		if err := g.collectItems(); err != nil {
			return err
		}
		g.reachCheckpoints()

		if g.player.Y > common.BaseHeight {
			g.controller.Kill()
		}
		if g.timer.Phase() != PhaseGoal && g.state.Tick() {
			g.logger.Debug("time up")
			g.controller.Kill()
		}
	}
	if err := g.resolve(); err != nil {
		return err
	}

	switch g.timer.Tick() {
	case PhaseDeath:
		g.outcome = Died
	case PhaseGoal:
		g.state.NextLevel()
		g.outcome = Cleared
	}
	return nil
}

// resolve applies the controller's events.
func (g *Game) resolve() error {
	for _, evt := range g.controller.Events() {
		switch evt.Kind {
		case EventBlockHit:
			if err := g.hitBlock(evt.Tile); err != nil {
				return err
			}
		case EventPipe:
			if err := g.travel(evt.Transport); err != nil {
				return err
			}
		case EventDied:
			g.state.DecreaseLife()
			g.timer.Start(PhaseDeath, g.physics.Timers.DeathDelay)
		case EventSlid:
			g.logger.Debug("flag slide finished", "x", g.player.X)
		}
	}
	return nil
}

// travel finishes a pipe ride on the transport's map.
func (g *Game) travel(t entity.Transport) error {
	m, err := g.world.MoveToMap(t)
	if err != nil {
		return err
	}
	g.applyTheme(m, t.Direction)
	p := g.player
	p.X = pipeExit
	p.Y = float64(t.Row * common.TileSize)
	p.VY = 0
	g.items = nil
	p.Fireballs = nil
	return nil
}

// applyTheme switches background and music to the map's declared theme,
// falling back on the transport direction.
func (g *Game) applyTheme(m *world.Map, direction string) {
	bg, music := m.BackgroundColor, sound.Name(m.Music)
	if bg == "" {
		bg = UndergroundBackground
		if direction == entity.TransportOut {
			bg = OverworldBackground
		}
	}
	if music == "" {
		music = sound.Background
		if direction == entity.TransportOut {
			music = sound.Overworld
		}
	}
	g.background = bg
	g.music = music
	g.sounds.PauseMusic()
	g.sounds.PlayMusic(music)
}

// relocate moves spawned entities with the world scroll.
func (g *Game) relocate(dx float64) {
	for _, it := range g.items {
		it.Translate(dx, 0)
	}
	for _, f := range g.player.Fireballs {
		f.Translate(dx, 0)
	}
}

func (g *Game) spawn(kind entity.ItemKind, x, y float64) error {
	it := entity.NewItem(kind, x, y)
	if err := it.SetSprite(g.lookup, kind.String()); err != nil {
		return err
	}
	g.items = append(g.items, it)
	return nil
}

func (g *Game) stepItems() {
	tiles := g.world.Tiles()
	live := g.items[:0]
	for _, it := range g.items {
		it.Step(tiles)
		if it.Active {
			live = append(live, it)
		}
	}
	for i := len(live); i < len(g.items); i++ {
		g.items[i] = nil
	}
	g.items = live
}
