package journey

import (
	"testing"

	"github.com/journey-arcade/journey/internal/config"
	"github.com/journey-arcade/journey/internal/core"
)

func TestEffectFor(t *testing.T) {
	cfg := config.DefaultJourneyConfig().PowerUps

	if e := EffectFor(KindShield, cfg); e.ShieldTicks != cfg.ShieldTicks || e.Heal != 0 || e.Score != 0 {
		t.Errorf("shield effect = %+v", e)
	}
	if e := EffectFor(KindHealth, cfg); e.Heal != cfg.HealAmount || e.ShieldTicks != 0 || e.Score != 0 {
		t.Errorf("health effect = %+v", e)
	}
	if e := EffectFor(KindScoreBoost, cfg); e.Score != cfg.ScoreBonus || e.ShieldTicks != 0 || e.Heal != 0 {
		t.Errorf("score boost effect = %+v", e)
	}
}

func TestHealthClampsAtMax(t *testing.T) {
	g := newPlaying(t, 20)
	g.health = 90

	g.applyEffect(Effect{Heal: 30})
	if g.health != maxHealth {
		t.Errorf("health = %d, want clamp at %d", g.health, maxHealth)
	}

	g.health = 50
	g.applyEffect(Effect{Heal: 30})
	if g.health != 80 {
		t.Errorf("health = %d, want 80", g.health)
	}
}

func TestShieldRefreshesInsteadOfStacking(t *testing.T) {
	g := newPlaying(t, 21)
	g.shieldTicks = 120

	g.applyEffect(Effect{ShieldTicks: 500})
	if g.shieldTicks != 500 {
		t.Errorf("shield ticks = %d, want refreshed to 500", g.shieldTicks)
	}
}

func TestShieldDecaysToZero(t *testing.T) {
	g := newPlaying(t, 22)
	clearHazards(g)
	g.shieldTicks = 3

	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.shieldTicks != 0 {
		t.Errorf("shield ticks = %d, want 0 after expiry", g.shieldTicks)
	}
}

func TestObstacleHitDamagesAndRemoves(t *testing.T) {
	g := newPlaying(t, 23)
	clearHazards(g)
	g.world.Platforms = nil
	g.world.Obstacles = []core.Rect{core.NewRect(g.playerX, 350, 400, 150)}

	g.Step(core.NewInputFrame())

	if g.health != maxHealth-g.cfg.PowerUps.ObstacleHit {
		t.Errorf("health = %d after hit", g.health)
	}
	if len(g.world.Obstacles) != 0 {
		t.Error("obstacle should be consumed by the hit")
	}
}

func TestShieldSuppressesHitAndKeepsObstacle(t *testing.T) {
	g := newPlaying(t, 24)
	clearHazards(g)
	g.world.Platforms = nil
	g.shieldTicks = 100
	g.world.Obstacles = []core.Rect{core.NewRect(g.playerX, 350, 400, 150)}

	g.Step(core.NewInputFrame())

	if g.health != maxHealth {
		t.Errorf("shielded hit should cost no health, got %d", g.health)
	}
	if len(g.world.Obstacles) != 1 {
		t.Error("shielded obstacle must stay in the world")
	}
	if g.shieldTicks != 99 {
		t.Errorf("shield ticks = %d, want 99", g.shieldTicks)
	}
}

func TestAtMostOneObstaclePerTick(t *testing.T) {
	g := newPlaying(t, 25)
	clearHazards(g)
	g.world.Platforms = nil
	// Two overlapping obstacles both cover the player.
	g.world.Obstacles = []core.Rect{
		core.NewRect(g.playerX, 350, 400, 150),
		core.NewRect(g.playerX, 350, 400, 150),
	}

	g.Step(core.NewInputFrame())

	if g.health != maxHealth-g.cfg.PowerUps.ObstacleHit {
		t.Errorf("only one obstacle may hit per tick, health = %d", g.health)
	}
	if len(g.world.Obstacles) != 1 {
		t.Errorf("%d obstacles left, want 1", len(g.world.Obstacles))
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := newPlaying(t, 26)
	clearHazards(g)
	g.world.Platforms = nil
	g.health = 40
	g.world.PowerUps = []PowerUp{{
		Rect: core.NewRect(g.playerX, 350, 400, 150),
		Kind: KindHealth,
	}}

	g.Step(core.NewInputFrame())

	if g.health != 40+g.cfg.PowerUps.HealAmount {
		t.Errorf("health = %d after heal pickup", g.health)
	}
	if len(g.world.PowerUps) != 0 {
		t.Error("pickup should be consumed")
	}
}

func TestScoreBoostPickup(t *testing.T) {
	g := newPlaying(t, 27)
	clearHazards(g)
	g.world.Platforms = nil
	g.world.PowerUps = []PowerUp{{
		Rect: core.NewRect(g.playerX, 350, 400, 150),
		Kind: KindScoreBoost,
	}}

	g.Step(core.NewInputFrame())

	// Bonus plus the per-tick point.
	if g.score != g.cfg.PowerUps.ScoreBonus+1 {
		t.Errorf("score = %d, want %d", g.score, g.cfg.PowerUps.ScoreBonus+1)
	}
}
