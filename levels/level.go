package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrInvalidLevel = errors.New("invalid level")
)

// Level is one playable stage made of linked sub-maps. The first sub-map is
// where an attempt starts.
type Level struct {
	Name string   `json:"name"`
	Maps []SubMap `json:"maps"`
}

type SubMap struct {
	Name            string            `json:"name"`
	Columns         int               `json:"columns"`
	Rows            int               `json:"rows"`
	Start           int               `json:"start"`
	End             int               `json:"end"`
	BackgroundColor string            `json:"background_color"`
	Music           string            `json:"music"`
	Floor           Floor             `json:"floor"`
	Pipes           Pipes             `json:"pipes"`
	Lucky           Lucky             `json:"lucky"`
	Blocks          []Blocks          `json:"blocks"`
	Background      []BackgroundGroup `json:"background"`
	Enemies         []EnemyGroup      `json:"enemies"`
	Coins           Coins             `json:"coins"`
	Checkpoints     []CheckpointGroup `json:"checkpoints"`
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Range struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

type Floor struct {
	Ranges []Range `json:"ranges"`
	Sprite string  `json:"sprite"`
}

type Transport struct {
	Map       string `json:"map"`
	Direction string `json:"direction"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

type PipeCoord struct {
	X         int        `json:"x"`
	Y         int        `json:"y"`
	Transport *Transport `json:"transport,omitempty"`
}

type Pipes struct {
	Coord  []PipeCoord `json:"coord"`
	Sprite string      `json:"sprite"`
}

type LuckyCoord struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Item string `json:"item,omitempty"`
}

type Lucky struct {
	Coord  []LuckyCoord `json:"coord"`
	Sprite string       `json:"sprite"`
}

type Blocks struct {
	Coord  []Coord `json:"coord"`
	Sprite string  `json:"sprite"`
}

type BackgroundGroup struct {
	Coord []Coord `json:"coord"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
}

type EnemyGroup struct {
	Coord []Coord `json:"coord"`
	Name  string  `json:"name"`
}

type Coins struct {
	Coord  []Coord `json:"coord"`
	Sprite string  `json:"sprite"`
}

type CheckpointGroup struct {
	Coord []Coord `json:"coord"`
	Name  string  `json:"name"`
}

// Map returns the sub-map called name.
func (l *Level) Map(name string) (*SubMap, bool) {
	for i := range l.Maps {
		if l.Maps[i].Name == name {
			return &l.Maps[i], true
		}
	}
	return nil, false
}

// Load reads a level by name. A file under ./levels/ on disk wins over the
// embedded copy.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(DiskPath(clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean+".json")
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", clean, ErrUnknownLevel)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = clean
	}
	return lvl, nil
}

// Parse decodes and validates level JSON.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w: %v", ErrInvalidLevel, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

var (
	knownEnemies     = map[string]bool{"goomba": true, "koopa": true}
	knownItems       = map[string]bool{"": true, "coin": true, "mushroom": true, "fire-flower": true, "star": true}
	knownCheckpoints = map[string]bool{"flag": true}
)

func (l *Level) Validate() error {
	if len(l.Maps) == 0 {
		return fmt.Errorf("%w: no maps", ErrInvalidLevel)
	}
	seen := make(map[string]bool, len(l.Maps))
	for _, m := range l.Maps {
		if m.Name == "" {
			return fmt.Errorf("%w: map without a name", ErrInvalidLevel)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate map %q", ErrInvalidLevel, m.Name)
		}
		seen[m.Name] = true
		if m.Start < 0 || m.End < m.Start {
			return fmt.Errorf("%w: map %q has start %d and end %d", ErrInvalidLevel, m.Name, m.Start, m.End)
		}
	}
	for _, m := range l.Maps {
		for _, p := range m.Pipes.Coord {
			if p.Transport == nil {
				continue
			}
			if !seen[p.Transport.Map] {
				return fmt.Errorf("%w: map %q pipe leads to unknown map %q", ErrInvalidLevel, m.Name, p.Transport.Map)
			}
			if p.Transport.Direction != "in" && p.Transport.Direction != "out" {
				return fmt.Errorf("%w: map %q pipe direction %q", ErrInvalidLevel, m.Name, p.Transport.Direction)
			}
		}
		for _, e := range m.Enemies {
			if !knownEnemies[e.Name] {
				return fmt.Errorf("%w: map %q enemy %q", ErrInvalidLevel, m.Name, e.Name)
			}
		}
		for _, c := range m.Lucky.Coord {
			if !knownItems[c.Item] {
				return fmt.Errorf("%w: map %q lucky item %q", ErrInvalidLevel, m.Name, c.Item)
			}
		}
		for _, c := range m.Checkpoints {
			if !knownCheckpoints[c.Name] {
				return fmt.Errorf("%w: map %q checkpoint %q", ErrInvalidLevel, m.Name, c.Name)
			}
		}
	}
	return nil
}

// Names lists the embedded levels in play order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Resolve picks the level for a world and level number. Missing stages
// cycle through the embedded ones.
func Resolve(world, level int) string {
	name := fmt.Sprintf("%d-%d", world, level)
	names := Names()
	for _, n := range names {
		if n == name {
			return n
		}
	}
	if len(names) == 0 {
		return name
	}
	idx := (world-1)*3 + (level - 1)
	if idx < 0 {
		idx = 0
	}
	return names[idx%len(names)]
}

// DiskPath is where an on-disk override for name lives.
func DiskPath(name string) string {
	return filepath.Join("levels", cleanLevelName(name)+".json")
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	return strings.TrimSuffix(s, ".json")
}
