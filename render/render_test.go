package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/sprite"
	"golang.org/x/image/colornames"
)

func TestHUD(t *testing.T) {
	s := game.NewState(3, 400)
	s.StartTimer()
	s.AddCoin()
	s.IncreaseScore(game.ScoreEnemy)
	expected := "SCORE 000300 x01 1-1 T400 L3"
	if got := HUD(s); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestBackground(t *testing.T) {
	cases := []struct {
		name     string
		hex      string
		expected color.Color
	}{
		{"overworld", "#5d95fc", color.NRGBA{R: 0x5d, G: 0x95, B: 0xfc, A: 0xff}},
		{"empty", "", colornames.Black},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Background(c.hex); got != c.expected {
				t.Fatalf("expected %v, got %v", c.expected, got)
			}
		})
	}
}

func TestFrameColorFallback(t *testing.T) {
	tile := entity.NewTile(entity.TileSolid, 0, 0)
	if got := FrameColor(tile); got != colornames.Magenta {
		t.Fatalf("expected magenta for a blank frame, got %v", got)
	}
	tile.Sprite.SetFrame(sprite.Frame{Name: "floor", W: 16, H: 16, Color: color.NRGBA{R: 1, A: 255}})
	if got := FrameColor(tile); got != (color.NRGBA{R: 1, A: 255}) {
		t.Fatalf("expected the frame color, got %v", got)
	}
}

func TestBlinking(t *testing.T) {
	p := entity.NewPlayer(0, 0)
	if blinking(p) {
		t.Fatalf("vulnerable player must be drawn")
	}
	p.Invulnerable = 4
	if !blinking(p) {
		t.Fatalf("expected a hidden beat")
	}
	p.Invulnerable = 8
	if blinking(p) {
		t.Fatalf("expected a visible beat")
	}
}

func TestInputLabel(t *testing.T) {
	cases := []struct {
		name     string
		setup    func(c *control.Controls)
		expected string
	}{
		{"idle", func(c *control.Controls) {}, "[]"},
		{"held", func(c *control.Controls) { c.Press(control.Right) }, "[right]"},
		{"macro", func(c *control.Controls) {
			c.LoadMacros([]control.MacroStep{{Key: control.Up, Ticks: 3}})
		}, "[up] MACRO"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := control.New()
			tc.setup(c)
			if got := inputLabel(c); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
