package game

import (
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/sound"
)

// collectCoins consumes the level's big coins under the player.
func (g *Game) collectCoins() {
	for _, c := range collision.Overlapping(g.player.Rect, g.world.Coins()) {
		if !c.Active || !g.world.CollectCoin(c) {
			continue
		}
		g.state.AddCoin()
		g.sounds.Play(sound.Coin)
	}
}

// collectItems consumes spawned power-ups under the player. Once the player
// is powered every remaining mushroom block is upgraded.
func (g *Game) collectItems() error {
	p := g.player
	for _, it := range collision.Overlapping(p.Rect, g.items) {
		if !it.Collectible() {
			continue
		}
		it.Deactivate()
		if !it.Kind.PowerUp() {
			continue
		}
		g.controller.PowerUp(it.Kind)
		if p.Tier.Big() {
			if n := g.world.UpgradeMushrooms(); n > 0 {
				g.logger.Debug("mushroom blocks upgraded", "count", n)
			}
		}
	}
	return g.controller.takeErr()
}

// reachCheckpoints starts the goal sequence on first contact with a flag.
func (g *Game) reachCheckpoints() {
	for _, c := range collision.Overlapping(g.player.Rect, g.world.Checkpoints()) {
		if c.Reached {
			continue
		}
		c.Reach()
		g.controller.ReachFlag()
		g.sounds.PauseMusic()
		g.sounds.Play(sound.Goal)
		g.timer.Start(PhaseGoal, g.physics.Timers.GoalDelay)
		g.logger.Debug("goal reached", "world", g.state.World, "level", g.state.Level)
		return
	}
}
