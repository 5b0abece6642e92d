package journey

import (
	"github.com/journey-arcade/journey/internal/config"
	"github.com/journey-arcade/journey/internal/core"
)

// maxHealth is the healing ceiling; damage has no floor below zero either.
const maxHealth = 100

// Effect is the state delta produced by collecting a power-up.
type Effect struct {
	ShieldTicks int // When > 0, re-arms the shield for this many ticks
	Heal        int
	Score       int
}

// EffectFor maps a power-up kind to its state delta.
func EffectFor(kind PowerUpKind, cfg config.PowerUpsConfig) Effect {
	switch kind {
	case KindShield:
		return Effect{ShieldTicks: cfg.ShieldTicks}
	case KindHealth:
		return Effect{Heal: cfg.HealAmount}
	case KindScoreBoost:
		return Effect{Score: cfg.ScoreBonus}
	default:
		return Effect{}
	}
}

// applyEffect folds a power-up effect into the session. Collecting a shield
// while one is active refreshes the remaining duration rather than stacking.
func (g *Game) applyEffect(e Effect) {
	if e.ShieldTicks > 0 {
		g.shieldTicks = e.ShieldTicks
	}
	if e.Heal > 0 {
		g.health = core.Min(maxHealth, g.health+e.Heal)
	}
	g.score += e.Score
}

// resolvePowerUps collects the first pickup overlapping the player, at most
// one per tick.
func (g *Game) resolvePowerUps() {
	pr := g.playerRect()
	for i, pu := range g.world.PowerUps {
		if pr.Intersects(pu.Rect) {
			g.applyEffect(EffectFor(pu.Kind, g.cfg.PowerUps))
			g.world.PowerUps = append(g.world.PowerUps[:i], g.world.PowerUps[i+1:]...)
			return
		}
	}
}

// decayShield counts the active shield down; it expires when the counter
// reaches zero.
func (g *Game) decayShield() {
	if g.shieldTicks > 0 {
		g.shieldTicks--
	}
}
