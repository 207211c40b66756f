// Package world streams level content across the canvas as the player
// advances.
package world

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/sprite"
)

var ErrUnknownMap = errors.New("unknown map")

// Map is one sub-map of a level with its own scroll position.
type Map struct {
	Name            string
	Columns         int
	Rows            int
	Start           int
	End             int
	BackgroundColor string
	Music           string

	Tiles       Layer[*entity.Tile]
	Enemies     Layer[*entity.Enemy]
	Decorations Layer[*entity.Decoration]
	Coins       Layer[*entity.Item]
	Checkpoints Layer[*entity.Checkpoint]

	column int
	pixel  int
}

// Column is the tile-aligned scroll position.
func (m *Map) Column() int { return m.column }

// Pixel is the sub-tile scroll remainder, always below one tile.
func (m *Map) Pixel() int { return m.pixel }

// Limit reports whether the view already shows the last declared column.
func (m *Map) Limit() bool {
	return m.column+common.VisibleColumns >= m.End
}

func (m *Map) shift(dx float64) {
	m.Tiles.Shift(dx)
	m.Enemies.Shift(dx)
	m.Decorations.Shift(dx)
	m.Coins.Shift(dx)
	m.Checkpoints.Shift(dx)
}

func (m *Map) purge() int {
	return len(m.Tiles.Purge()) +
		len(m.Enemies.Purge()) +
		len(m.Decorations.Purge()) +
		len(m.Coins.Purge()) +
		len(m.Checkpoints.Purge())
}

func (m *Map) refresh() {
	m.Tiles.Refresh()
	m.Enemies.Refresh()
	m.Decorations.Refresh()
	m.Coins.Refresh()
	m.Checkpoints.Refresh()
}

// Move scrolls the map one step left, drops objects that left the canvas
// and recomputes what is visible.
func (m *Map) Move() int {
	m.shift(-common.ScrollSpeed)
	purged := m.purge()
	m.refresh()
	m.pixel += common.ScrollSpeed
	for m.pixel >= common.TileSize {
		m.pixel -= common.TileSize
		m.column++
	}
	return purged
}

// MoveTo jumps the view so column is at the left edge.
func (m *Map) MoveTo(column int) int {
	current := m.column*common.TileSize + m.pixel
	target := column * common.TileSize
	m.shift(float64(current - target))
	m.column = column
	m.pixel = 0
	purged := m.purge()
	m.refresh()
	return purged
}

// Buffered counts every remaining object.
func (m *Map) Buffered() int {
	return m.Tiles.Len() + m.Enemies.Len() + m.Decorations.Len() + m.Coins.Len() + m.Checkpoints.Len()
}

// LayerStats is the buffered and visible count for one layer.
type LayerStats struct {
	Buffered int
	Visible  int
}

type Stats struct {
	Map         string
	Column      int
	Pixel       int
	Tiles       LayerStats
	Enemies     LayerStats
	Decorations LayerStats
	Coins       LayerStats
	Checkpoints LayerStats
}

// World holds every sub-map of the loaded level; one is current.
type World struct {
	lookup     sprite.Lookup
	logger     *log.Logger
	level      *levels.Level
	maps       []*Map
	current    int
	enemySpeed float64
}

func New(lookup sprite.Lookup, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	return &World{lookup: lookup, logger: logger, enemySpeed: 1}
}

// SetEnemySpeed sets the patrol speed used by enemies built on the next Load.
func (w *World) SetEnemySpeed(speed float64) {
	if speed > 0 {
		w.enemySpeed = speed
	}
}

// Load builds every sub-map and positions each at its start column. The
// first sub-map becomes current.
func (w *World) Load(lvl *levels.Level) error {
	if lvl == nil || len(lvl.Maps) == 0 {
		return fmt.Errorf("world: load: %w", levels.ErrInvalidLevel)
	}
	maps := make([]*Map, 0, len(lvl.Maps))
	for i := range lvl.Maps {
		m, err := w.build(&lvl.Maps[i])
		if err != nil {
			return fmt.Errorf("world: load %s: %w", lvl.Name, err)
		}
		m.MoveTo(m.Start)
		maps = append(maps, m)
	}
	w.level = lvl
	w.maps = maps
	w.current = 0
	w.logger.Debug("level loaded", "level", lvl.Name, "maps", len(maps), "objects", maps[0].Buffered())
	return nil
}

// Level is the loaded level, nil before Load.
func (w *World) Level() *levels.Level { return w.level }

// Current returns the active sub-map, or nil before Load.
func (w *World) Current() *Map {
	if len(w.maps) == 0 {
		return nil
	}
	return w.maps[w.current]
}

func (w *World) Tiles() []*entity.Tile {
	if m := w.Current(); m != nil {
		return m.Tiles.Visible()
	}
	return nil
}

func (w *World) Enemies() []*entity.Enemy {
	if m := w.Current(); m != nil {
		return m.Enemies.Visible()
	}
	return nil
}

func (w *World) Coins() []*entity.Item {
	if m := w.Current(); m != nil {
		return m.Coins.Visible()
	}
	return nil
}

func (w *World) Checkpoints() []*entity.Checkpoint {
	if m := w.Current(); m != nil {
		return m.Checkpoints.Visible()
	}
	return nil
}

func (w *World) Decorations() []*entity.Decoration {
	if m := w.Current(); m != nil {
		return m.Decorations.Visible()
	}
	return nil
}

func (w *World) Column() int {
	if m := w.Current(); m != nil {
		return m.column
	}
	return 0
}

func (w *World) Limit() bool {
	m := w.Current()
	return m == nil || m.Limit()
}

// Update advances tile, coin, flag and decoration animation and runs one
// enemy AI tick. Expired enemies are removed.
func (w *World) Update() {
	m := w.Current()
	if m == nil {
		return
	}
	tiles := m.Tiles.Visible()
	for _, t := range tiles {
		t.Update()
	}
	for _, e := range m.Enemies.All() {
		e.Think(tiles)
	}
	m.Enemies.Remove(func(e *entity.Enemy) bool { return e.Expired() })
	for _, c := range m.Coins.Visible() {
		c.Sprite.Animate()
	}
	for _, c := range m.Checkpoints.Visible() {
		c.Update()
	}
	for _, d := range m.Decorations.Visible() {
		d.Update()
	}
}

func (w *World) Move() {
	if m := w.Current(); m != nil {
		m.Move()
	}
}

func (w *World) MoveTo(column int) {
	if m := w.Current(); m != nil {
		m.MoveTo(column)
	}
}

// MoveToMap makes the transport's map current. Entering starts at the map's
// start column; exiting jumps to the transport column.
func (w *World) MoveToMap(t entity.Transport) (*Map, error) {
	idx := -1
	for i, m := range w.maps {
		if m.Name == t.Map {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("world: map %q: %w", t.Map, ErrUnknownMap)
	}
	w.current = idx
	m := w.maps[idx]
	if t.Direction == entity.TransportOut {
		m.MoveTo(t.Column)
	} else {
		m.MoveTo(m.Start)
	}
	w.logger.Debug("map switched", "map", m.Name, "direction", t.Direction, "column", m.column)
	return m, nil
}

// UpgradeMushrooms turns every unopened mushroom block in the level into a
// fire flower block and returns how many changed.
func (w *World) UpgradeMushrooms() int {
	n := 0
	for _, m := range w.maps {
		m.Tiles.arena.Each(func(_ Handle, t *entity.Tile) {
			if t.Kind == entity.TileLucky && t.Active && t.Item == entity.ItemMushroom {
				t.UpgradeItem()
				n++
			}
		})
	}
	return n
}

// RemoveEnemy drops e from the current map. It returns false when e was
// already purged or removed.
func (w *World) RemoveEnemy(e *entity.Enemy) bool {
	if m := w.Current(); m != nil {
		return m.Enemies.Delete(e)
	}
	return false
}

// CollectCoin deactivates c and drops it from the current map. It returns
// false when c was already collected.
func (w *World) CollectCoin(c *entity.Item) bool {
	m := w.Current()
	if m == nil || !m.Coins.Delete(c) {
		return false
	}
	c.Deactivate()
	return true
}

func (w *World) Stats() Stats {
	m := w.Current()
	if m == nil {
		return Stats{}
	}
	return Stats{
		Map:         m.Name,
		Column:      m.column,
		Pixel:       m.pixel,
		Tiles:       LayerStats{m.Tiles.Len(), m.Tiles.VisibleLen()},
		Enemies:     LayerStats{m.Enemies.Len(), m.Enemies.VisibleLen()},
		Decorations: LayerStats{m.Decorations.Len(), m.Decorations.VisibleLen()},
		Coins:       LayerStats{m.Coins.Len(), m.Coins.VisibleLen()},
		Checkpoints: LayerStats{m.Checkpoints.Len(), m.Checkpoints.VisibleLen()},
	}
}
