package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/sprite"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TierPhysicsSpec struct {
	Jump            float64 `yaml:"jump"`
	Gravity         float64 `yaml:"gravity"`
	DoubleJumpBoost float64 `yaml:"double_jump_boost"`
}

type DoubleJumpSpec struct {
	Enabled   bool `yaml:"enabled"`
	HoldTicks int  `yaml:"hold_ticks"`
}

type FireballSpec struct {
	Max int `yaml:"max"`
}

// TimerSpec values are simulation ticks.
type TimerSpec struct {
	PipeDelay     int `yaml:"pipe_delay"`
	DeathDelay    int `yaml:"death_delay"`
	LoadingDelay  int `yaml:"loading_delay"`
	GameOverDelay int `yaml:"game_over_delay"`
	GoalDelay     int `yaml:"goal_delay"`
	Invulnerable  int `yaml:"invulnerable"`
	Star          int `yaml:"star"`
	SlideMacro    int `yaml:"slide_macro"`
}

type GameSpec struct {
	Timer int `yaml:"timer"`
	Lives int `yaml:"lives"`
}

// PhysicsSpec is the gameplay tuning.
type PhysicsSpec struct {
	Name            string          `yaml:"name"`
	Speed           float64         `yaml:"speed"`
	Small           TierPhysicsSpec `yaml:"small"`
	Powered         TierPhysicsSpec `yaml:"powered"`
	DoubleJump      DoubleJumpSpec  `yaml:"double_jump"`
	StompBounce     float64         `yaml:"stomp_bounce"`
	DeathHop        float64         `yaml:"death_hop"`
	DeathGravity    float64         `yaml:"death_gravity"`
	PipeGravity     float64         `yaml:"pipe_gravity"`
	SlideGravity    float64         `yaml:"slide_gravity"`
	SlideOffset     float64         `yaml:"slide_offset"`
	FollowThreshold float64         `yaml:"follow_threshold"`
	RightMargin     float64         `yaml:"right_margin"`
	EnemySpeed      float64         `yaml:"enemy_speed"`
	Fireballs       FireballSpec    `yaml:"fireballs"`
	Timers          TimerSpec       `yaml:"timers"`
	Game            GameSpec        `yaml:"game"`
}

func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec]("physics.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadPhysicsFile reads tuning from an arbitrary YAML file. Keys it leaves
// out keep their embedded defaults.
func LoadPhysicsFile(path string) (*PhysicsSpec, error) {
	spec, err := LoadPhysicsSpec()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

type FrameSpec struct {
	X     int        `yaml:"x"`
	Y     int        `yaml:"y"`
	W     int        `yaml:"w"`
	H     int        `yaml:"h"`
	Color *YAMLColor `yaml:"color"`
}

type AnimationSpec struct {
	Speed  int      `yaml:"speed"`
	Frames []string `yaml:"frames"`
}

type AtlasSpec struct {
	Name       string                   `yaml:"name"`
	Frames     map[string]FrameSpec     `yaml:"frames"`
	Animations map[string]AnimationSpec `yaml:"animations"`
}

// LoadAtlas reads sprites.yaml into a lookup table.
func LoadAtlas() (*sprite.Table, error) {
	spec, err := LoadSpec[AtlasSpec]("sprites.yaml")
	if err != nil {
		return nil, err
	}
	return spec.Table()
}

// Table resolves animation frame names against the frame set.
func (a AtlasSpec) Table() (*sprite.Table, error) {
	t := sprite.NewTable()
	for name, fs := range a.Frames {
		f := sprite.Frame{Name: name, X: fs.X, Y: fs.Y, W: fs.W, H: fs.H, Color: color.NRGBA{A: 0xff}}
		if fs.Color != nil {
			f.Color = color.NRGBAModel.Convert(fs.Color.Color).(color.NRGBA)
		}
		t.Frames[name] = f
	}
	for name, as := range a.Animations {
		anim := sprite.Animation{Name: name, Speed: as.Speed}
		for _, fn := range as.Frames {
			f, ok := t.Frames[fn]
			if !ok {
				return nil, fmt.Errorf("prefabs: animation %s frame %q: %w", name, fn, sprite.ErrUnknownSprite)
			}
			anim.Frames = append(anim.Frames, f)
		}
		t.Animations[name] = anim
	}
	return t, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ParseHexColor reads "#rrggbb" or "#rrggbbaa" the same way YAML colors are
// read. Invalid input yields opaque black.
func ParseHexColor(s string) color.NRGBA {
	var c YAMLColor
	if err := c.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Value: s}); err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c.Color.(color.NRGBA)
}
