// Package render draws a running game as flat colored boxes, one per visual
// entity, plus the HUD text.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const flagPoleWidth = 2

// Renderer draws game frames onto the logical canvas.
type Renderer struct {
	debug bool
}

func New(debug bool) *Renderer {
	return &Renderer{debug: debug}
}

func (r *Renderer) Debug() bool       { return r.debug }
func (r *Renderer) SetDebug(on bool)  { r.debug = on }
func (r *Renderer) ToggleDebug() bool { r.debug = !r.debug; return r.debug }

// Draw renders g. fps is shown in debug mode.
func (r *Renderer) Draw(screen *ebiten.Image, g *game.Game, fps float64) {
	if screen == nil || g == nil || g.Player() == nil {
		return
	}
	screen.Fill(Background(g.Background()))

	w := g.World()
	for _, d := range w.Decorations() {
		drawVisual(screen, d)
	}
	for _, t := range w.Tiles() {
		if !t.Broken() {
			drawVisual(screen, t)
		}
	}
	for _, c := range w.Coins() {
		if c.Active {
			drawVisual(screen, c)
		}
	}
	for _, c := range w.Checkpoints() {
		drawFlag(screen, c)
	}
	for _, e := range w.Enemies() {
		if e.Active {
			drawVisual(screen, e)
		}
	}
	for _, it := range g.Items() {
		drawVisual(screen, it)
	}

	p := g.Player()
	for _, f := range p.Fireballs {
		if f.Active {
			drawVisual(screen, f)
		}
	}
	if !blinking(p) {
		drawVisual(screen, p)
	}

	ebitenutil.DebugPrintAt(screen, HUD(g.State()), 4, 2)
	if r.debug {
		r.drawDebug(screen, g, fps)
	}
}

// HUD formats the score line.
func HUD(s *game.State) string {
	return fmt.Sprintf("SCORE %06d x%02d %d-%d T%03d L%d", s.Score, s.Coins, s.World, s.Level, s.Time, s.Lives)
}

// Background parses a level background color; malformed values draw black.
func Background(hex string) color.Color {
	if hex == "" {
		return colornames.Black
	}
	return prefabs.ParseHexColor(hex)
}

// FrameColor is the fill for a sprite frame, magenta when the atlas gave none.
func FrameColor(v entity.Visual) color.Color {
	c := v.Frame().Color
	if c.A == 0 {
		return colornames.Magenta
	}
	return c
}

func fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	bb := r.BB()
	vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, clr, false)
}

func drawVisual(screen *ebiten.Image, v entity.Visual) {
	fillRect(screen, v.Bounds(), FrameColor(v))
}

// drawFlag draws the pole and the banner at its current height.
func drawFlag(screen *ebiten.Image, c *entity.Checkpoint) {
	pole := common.NewRect(c.X+(c.Width-flagPoleWidth)/2, c.Y, flagPoleWidth, c.Height)
	fillRect(screen, pole, FrameColor(c))
	top := c.Y + c.Height - float64(c.Position*common.TileSize)
	fillRect(screen, common.NewRect(c.X-c.Width/2, top, c.Width/2, c.Width/2), colornames.Green)
}

// blinking hides the player on alternate beats while invulnerable.
func blinking(p *entity.Player) bool {
	return p.Invulnerable > 0 && (p.Invulnerable/4)%2 == 1
}

// inputLabel lists the held keys, marking macro playback.
func inputLabel(c *control.Controls) string {
	label := fmt.Sprint(c.Keys())
	if c.Playing() {
		label += " MACRO"
	}
	return label
}

func (r *Renderer) drawDebug(screen *ebiten.Image, g *game.Game, fps float64) {
	p := g.Player()
	strokeRect(screen, p.Rect, colornames.Red)
	s := collision.SensorsFor(p.Rect)
	hits := g.Controller().Contacts()
	for _, sensor := range []struct {
		rect common.Rect
		hit  bool
	}{
		{s.Top, hits.HasTop},
		{s.Bottom, hits.HasBottom},
		{s.Left, hits.HasLeft},
		{s.Right, hits.HasRight},
	} {
		clr := colornames.Yellow
		if sensor.hit {
			clr = colornames.Lime
		}
		strokeRect(screen, sensor.rect, clr)
	}
	for _, e := range g.World().Enemies() {
		strokeRect(screen, e.Rect, colornames.Orange)
	}

	st := g.World().Stats()
	lines := []string{
		fmt.Sprintf("FPS %.1f TICK %d", fps, g.Ticks()),
		fmt.Sprintf("MAP %s COL %d PX %d", st.Map, st.Column, st.Pixel),
		fmt.Sprintf("TILES %d/%d ENEMIES %d/%d", st.Tiles.Visible, st.Tiles.Buffered, st.Enemies.Visible, st.Enemies.Buffered),
		fmt.Sprintf("P %d,%d %s %s %s", p.Column(), p.Row(), p.State, p.Tier, inputLabel(g.Controls())),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 4, common.BaseHeight-16*(len(lines)-i))
	}
}
