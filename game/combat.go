package game

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/sound"
)

// hitBlock resolves the player's head striking t.
func (g *Game) hitBlock(t *entity.Tile) error {
	switch {
	case t.Kind == entity.TileLucky && t.Active:
		item := t.Open()
		if err := t.SetSprite(g.lookup, "lucky-empty"); err != nil {
			return err
		}
		return g.release(t, item)
	case t.Kind == entity.TileBrick && g.player.Tier.Big():
		t.Break()
		g.state.IncreaseScore(ScoreCoin)
		g.sounds.Play(sound.Break)
	default:
		g.sounds.Play(sound.Bump)
	}
	return nil
}

// release spawns a lucky block's item on top of it. Every opened block pays
// a coin; a coin item only pops for show.
func (g *Game) release(t *entity.Tile, item entity.ItemKind) error {
	x, y := t.X, t.RestY()-common.TileSize
	if item == entity.ItemNone {
		return nil
	}
	g.state.AddCoin()
	switch item {
	case entity.ItemCoin:
		g.sounds.Play(sound.Coin)
	default:
		g.sounds.Play(sound.PowerupAppears)
	}
	g.logger.Debug("lucky block", "item", item, "column", int(t.X)/common.TileSize)
	return g.spawn(item, x, y)
}

// collideEnemies resolves every live enemy touching the player: a stomp or a
// star kills it, anything else hurts the player.
func (g *Game) collideEnemies() error {
	p := g.player
	for _, e := range g.world.Enemies() {
		if !e.Active || e.Dead() || !common.Overlaps(p.Rect, e.Rect) {
			continue
		}
		switch {
		case p.Tier == entity.TierStar:
			if err := g.killEnemy(e); err != nil {
				return err
			}
		case e.StompedBy(p.Rect):
			if err := g.killEnemy(e); err != nil {
				return err
			}
			g.controller.Bounce()
		default:
			g.controller.Damage()
		}
		if g.controller.Dying() {
			return nil
		}
	}
	return nil
}

// killEnemy scores e and leaves it to play its death animation.
func (g *Game) killEnemy(e *entity.Enemy) error {
	if !e.Kill() {
		return nil
	}
	g.state.IncreaseScore(ScoreEnemy)
	g.sounds.Play(sound.Stomp)
	g.logger.Debug("kill enemy", "kind", e.Kind, "x", e.X)
	return e.SetSprite(g.lookup, e.Kind.String()+"-dead")
}

// collideFireballs removes every enemy a live fireball touches.
func (g *Game) collideFireballs() {
	fireballs := g.player.LiveFireballs()
	if len(fireballs) == 0 {
		return
	}
	for _, e := range g.world.Enemies() {
		if !e.Active || e.Dead() {
			continue
		}
		for _, f := range fireballs {
			if !f.Active || !common.Overlaps(f.Rect, e.Rect) {
				continue
			}
			f.Deactivate()
			e.Kill()
			g.state.IncreaseScore(ScoreEnemy)
			g.sounds.Play(sound.Stomp)
			g.world.RemoveEnemy(e)
			g.logger.Debug("fireball kill", "kind", e.Kind, "x", e.X)
			break
		}
	}
	g.player.LiveFireballs()
}
