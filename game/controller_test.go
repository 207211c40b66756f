package game

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sound"
	"github.com/milk9111/platformer/world"
)

func testOptions(t *testing.T) (Options, *sound.Recorder) {
	t.Helper()
	physics, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		t.Fatalf("physics: %v", err)
	}
	atlas, err := prefabs.LoadAtlas()
	if err != nil {
		t.Fatalf("atlas: %v", err)
	}
	rec := &sound.Recorder{}
	return Options{
		Physics:  physics,
		Lookup:   atlas,
		Sounds:   rec,
		Controls: control.New(),
	}, rec
}

func newTestController(t *testing.T, x, y float64) (*Controller, *sound.Recorder) {
	t.Helper()
	opts, rec := testOptions(t)
	opts, err := opts.withDefaults()
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	return NewController(entity.NewPlayer(x, y), opts), rec
}

func floorAt(y float64) []*entity.Tile {
	var tiles []*entity.Tile
	for x := 0; x < common.BaseWidth; x += common.TileSize {
		tiles = append(tiles, entity.NewTile(entity.TileSolid, float64(x), y))
	}
	return tiles
}

func update(t *testing.T, c *Controller, tiles []*entity.Tile) {
	t.Helper()
	if err := c.Update(tiles); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestFallsUntilGrounded(t *testing.T) {
	c, _ := newTestController(t, 0, 100)
	tiles := floorAt(200)
	p := c.Player

	landed := false
	for i := 0; i < 200; i++ {
		update(t, c, tiles)
		if c.State() == entity.Idle && p.VY == 0 {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("player never landed, y=%v vy=%v state=%v", p.Y, p.VY, c.State())
	}
	if p.Y != 200-p.Height {
		t.Fatalf("expected y=%v, got %v", 200-p.Height, p.Y)
	}
}

func TestFallsOntoLevelFloor(t *testing.T) {
	lvl, err := levels.Parse([]byte(`{
		"name": "fall",
		"maps": [{
			"name": "overworld",
			"columns": 20,
			"rows": 15,
			"end": 20,
			"floor": {"ranges": [{"x": 0, "y": 12, "columns": 20, "rows": 1}]}
		}]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	opts, _ := testOptions(t)
	w := world.New(opts.Lookup, nil)
	if err := w.Load(lvl); err != nil {
		t.Fatalf("load: %v", err)
	}
	c, _ := newTestController(t, 0, 100)
	p := c.Player

	landed := false
	for i := 0; i < 200; i++ {
		update(t, c, w.Tiles())
		if c.State() == entity.Idle && p.VY == 0 {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("player never landed, y=%v vy=%v state=%v", p.Y, p.VY, c.State())
	}
	floor := float64(12 * common.TileSize)
	if p.Y != floor-p.Height {
		t.Fatalf("expected y=%v, got %v", floor-p.Height, p.Y)
	}
}

func TestGravityPullsWithoutFloor(t *testing.T) {
	c, _ := newTestController(t, 0, 100)
	before := c.Player.Y
	update(t, c, nil)
	if c.Contacts().HasBottom {
		t.Fatalf("expected no floor contact")
	}
	if c.Player.Y <= before {
		t.Fatalf("expected the player to fall, y %v -> %v", before, c.Player.Y)
	}
}

func TestLandingIsFixedPoint(t *testing.T) {
	c, _ := newTestController(t, 40, 184)
	tiles := floorAt(200)
	p := c.Player
	p.VY = 1.5

	update(t, c, tiles)
	if p.Y != 184 || p.VY != 0 {
		t.Fatalf("expected resting at 184 with vy 0, got %v %v", p.Y, p.VY)
	}
	update(t, c, tiles)
	if p.Y != 184 || p.VY != 0 {
		t.Fatalf("second step moved the player: %v %v", p.Y, p.VY)
	}
}

func TestStateMachine(t *testing.T) {
	c, _ := newTestController(t, 40, 184)
	tiles := floorAt(200)
	controls := c.controls

	update(t, c, tiles)
	if c.State() != entity.Idle {
		t.Fatalf("expected idle, got %v", c.State())
	}

	controls.Press(control.Right)
	update(t, c, tiles)
	if c.State() != entity.Running {
		t.Fatalf("expected run, got %v", c.State())
	}
	if c.Player.Key != "run-small" {
		t.Fatalf("expected run sprite, got %q", c.Player.Key)
	}

	controls.Release(control.Right)
	update(t, c, tiles)
	if c.State() != entity.Idle {
		t.Fatalf("expected idle after release, got %v", c.State())
	}

	controls.Press(control.Left)
	update(t, c, nil)
	if c.State() != entity.Jumping {
		t.Fatalf("expected jump over a pit, got %v", c.State())
	}
	if c.Player.Key != "jump-small" {
		t.Fatalf("expected jump sprite, got %q", c.Player.Key)
	}
}

func TestJump(t *testing.T) {
	c, rec := newTestController(t, 40, 184)
	tiles := floorAt(200)

	c.controls.Press(control.Up)
	update(t, c, tiles)
	if c.Player.VY != c.physics.Small.Jump {
		t.Fatalf("expected jump impulse %v, got %v", c.physics.Small.Jump, c.Player.VY)
	}
	for i := 0; i < 2; i++ {
		update(t, c, tiles)
	}
	if c.State() != entity.Jumping {
		t.Fatalf("expected jumping, got %v", c.State())
	}
	if n := rec.Count(sound.Jump); n != 1 {
		t.Fatalf("expected one jump sound, got %d", n)
	}
}

func TestDoubleJumpByHolding(t *testing.T) {
	on, _ := newTestController(t, 40, 184)
	off, _ := newTestController(t, 40, 184)
	off.physics.DoubleJump.Enabled = false
	tiles := floorAt(200)

	on.controls.Press(control.Up)
	off.controls.Press(control.Up)
	hold := on.physics.DoubleJump.HoldTicks
	for i := 1; i <= hold; i++ {
		update(t, on, tiles)
		update(t, off, tiles)
		if i < hold && on.Player.VY != off.Player.VY {
			t.Fatalf("boost fired early at tick %d", i)
		}
	}
	diff := on.Player.VY - off.Player.VY
	if math.Abs(diff-on.physics.Small.DoubleJumpBoost) > 1e-9 {
		t.Fatalf("expected boost %v, got %v", on.physics.Small.DoubleJumpBoost, diff)
	}

	update(t, on, tiles)
	update(t, off, tiles)
	if d := on.Player.VY - off.Player.VY; math.Abs(d-diff) > 1e-9 {
		t.Fatalf("boost applied twice in one hold")
	}
}

func TestCeilingHitEmitsBlockEvent(t *testing.T) {
	c, _ := newTestController(t, 0, 184)
	block := entity.NewTile(entity.TileBrick, 0, 150)
	tiles := append(floorAt(200), block)

	c.controls.Press(control.Up)
	var hit *entity.Tile
	for i := 0; i < 30 && hit == nil; i++ {
		update(t, c, tiles)
		for _, evt := range c.Events() {
			if evt.Kind == EventBlockHit {
				hit = evt.Tile
			}
		}
	}
	if hit != block {
		t.Fatalf("expected the block to be hit")
	}
	if c.Player.Y != block.Bottom() || c.Player.VY != 0 {
		t.Fatalf("expected player under the block, got y=%v vy=%v", c.Player.Y, c.Player.VY)
	}
}

func TestHorizontalClamps(t *testing.T) {
	cases := []struct {
		name     string
		x        float64
		key      control.Direction
		wall     *entity.Tile
		ticks    int
		expected float64
	}{
		{"wall_right", 20, control.Right, entity.NewTile(entity.TileSolid, 48, 184), 20, 32},
		{"wall_left", 80, control.Left, entity.NewTile(entity.TileSolid, 48, 184), 20, 64},
		{"canvas_left", 1, control.Left, nil, 3, 0},
		{"canvas_right", 234, control.Right, nil, 3, common.BaseWidth - 5 - 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestController(t, tc.x, 184)
			tiles := floorAt(200)
			if tc.wall != nil {
				tiles = append(tiles, tc.wall)
			}
			c.controls.Press(tc.key)
			for i := 0; i < tc.ticks; i++ {
				update(t, c, tiles)
			}
			if c.Player.X != tc.expected {
				t.Fatalf("expected x=%v, got %v", tc.expected, c.Player.X)
			}
		})
	}
}

func TestEnterPipe(t *testing.T) {
	c, rec := newTestController(t, 70, 152)
	transport := &entity.Transport{Map: "underground", Direction: entity.TransportIn, Column: 2, Row: 2}
	pipe := entity.NewPipe(64, 168, transport)
	tiles := append([]*entity.Tile{pipe}, floorAt(200)...)

	c.controls.Press(control.Down)
	update(t, c, tiles)
	if c.Player.Override != entity.OverridePipeIn {
		t.Fatalf("expected pipe override, got %v", c.Player.Override)
	}
	if rec.Count(sound.PipeTravel) != 1 {
		t.Fatalf("expected pipe travel sound")
	}

	var events []Event
	for i := 0; i < c.physics.Timers.PipeDelay; i++ {
		if c.Player.Override == entity.OverrideNone {
			t.Fatalf("override cleared early at tick %d", i)
		}
		update(t, c, tiles)
		events = append(events, c.Events()...)
	}
	if c.Player.Override != entity.OverrideNone {
		t.Fatalf("expected override cleared")
	}
	if len(events) != 1 || events[0].Kind != EventPipe || events[0].Transport != *transport {
		t.Fatalf("expected one pipe event, got %+v", events)
	}
}

func TestKillIsIdempotent(t *testing.T) {
	c, rec := newTestController(t, 40, 184)
	if !c.Kill() {
		t.Fatalf("first kill should start the sequence")
	}
	if c.Kill() {
		t.Fatalf("second kill should be ignored")
	}
	if rec.Count(sound.Die) != 1 {
		t.Fatalf("expected one die sound, got %d", rec.Count(sound.Die))
	}
	if _, playing := rec.Music(); playing {
		t.Fatalf("expected music paused")
	}
	if c.State() != entity.Dead || c.Player.Key != "dead" {
		t.Fatalf("expected dead state and sprite, got %v %q", c.State(), c.Player.Key)
	}
	if events := c.Events(); len(events) != 1 || events[0].Kind != EventDied {
		t.Fatalf("expected one died event, got %+v", events)
	}

	y := c.Player.Y
	update(t, c, floorAt(200))
	if c.Player.Y >= y {
		t.Fatalf("expected the death hop to rise")
	}
	if math.Abs(c.Player.VY-(c.physics.DeathHop+c.physics.DeathGravity)) > 1e-9 {
		t.Fatalf("unexpected vy %v", c.Player.VY)
	}
}

func TestDamage(t *testing.T) {
	c, rec := newTestController(t, 40, 168)
	c.PowerUp(entity.ItemMushroom)
	if c.Player.Tier != entity.TierMushroom || c.Player.Height != entity.BigHeight {
		t.Fatalf("expected big player")
	}

	c.Damage()
	if c.Player.Tier != entity.TierNone || c.Player.Height != entity.SmallHeight {
		t.Fatalf("expected small player after damage")
	}
	if c.Player.Invulnerable != c.physics.Timers.Invulnerable || rec.Count(sound.Powerdown) != 1 {
		t.Fatalf("expected invulnerability and powerdown sound")
	}

	c.Damage()
	if c.Dying() {
		t.Fatalf("invulnerable player must not die")
	}

	c.Player.Invulnerable = 0
	c.Damage()
	if !c.Dying() {
		t.Fatalf("unpowered player should die")
	}
}

func TestFireballs(t *testing.T) {
	c, rec := newTestController(t, 40, 184)
	tiles := floorAt(200)
	c.PowerUp(entity.ItemFireFlower)
	if c.Player.Tier != entity.TierFire {
		t.Fatalf("expected fire tier, got %v", c.Player.Tier)
	}

	for i := 0; i < 3; i++ {
		c.controls.KeyDown("KeyX", false)
		update(t, c, tiles)
	}
	if n := len(c.Player.Fireballs); n != c.physics.Fireballs.Max {
		t.Fatalf("expected %d fireballs, got %d", c.physics.Fireballs.Max, n)
	}
	if n := rec.Count(sound.Fireball); n != c.physics.Fireballs.Max {
		t.Fatalf("expected %d fireball sounds, got %d", c.physics.Fireballs.Max, n)
	}
	for _, f := range c.Player.Fireballs {
		if f.Horizontal != control.Right {
			t.Fatalf("expected fireballs to travel right")
		}
	}
}

func TestStarRunsOut(t *testing.T) {
	c, _ := newTestController(t, 40, 184)
	c.physics.Timers.Star = 5
	tiles := floorAt(200)

	c.PowerUp(entity.ItemStar)
	if c.Player.Tier != entity.TierStar {
		t.Fatalf("expected star tier")
	}
	c.PowerUp(entity.ItemMushroom)
	for i := 0; i < 5; i++ {
		update(t, c, tiles)
	}
	if c.Player.Tier != entity.TierMushroom {
		t.Fatalf("expected the mushroom tier after the star, got %v", c.Player.Tier)
	}
}

func TestFlagSlide(t *testing.T) {
	c, _ := newTestController(t, 100, 50)
	tiles := floorAt(200)

	if !c.ReachFlag() {
		t.Fatalf("expected the slide to start")
	}
	if c.ReachFlag() {
		t.Fatalf("a running slide must not restart")
	}
	if c.Player.X != 112 || c.State() != entity.Sliding {
		t.Fatalf("expected sliding at x=112, got %v %v", c.Player.X, c.State())
	}

	slid := false
	for i := 0; i < 300 && !slid; i++ {
		update(t, c, tiles)
		for _, evt := range c.Events() {
			slid = slid || evt.Kind == EventSlid
		}
	}
	if !slid {
		t.Fatalf("slide never finished")
	}
	if c.Player.X != 128 || c.Player.Override != entity.OverrideNone {
		t.Fatalf("expected to step off at x=128, got %v", c.Player.X)
	}
	if !c.controls.Playing() || !c.controls.Held(control.Right) {
		t.Fatalf("expected the walk-off macro")
	}
}
