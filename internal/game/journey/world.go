package journey

import (
	"fmt"
	"math/rand"

	"github.com/journey-arcade/journey/internal/config"
	"github.com/journey-arcade/journey/internal/core"
)

// GenerateWorld produces the entity set for a level from a seeded RNG. It is a
// pure function of (level, rng state, cfg): replaying the same seed replays
// the same worlds. The generator makes no overlap-avoidance guarantees;
// entities may stack on top of each other.
func GenerateWorld(level int, rng *rand.Rand, cfg config.JourneyConfig) World {
	if level < 1 || level > len(cfg.World.LevelLengths) {
		panic(fmt.Sprintf("journey: level %d out of range", level))
	}
	w := World{
		Level:  level,
		Length: cfg.World.LevelLengths[level-1],
	}

	// Platform band leaves headroom above and keeps the lowest platforms
	// reachable from the floor.
	platforms := 15 + 5*level
	for i := 0; i < platforms; i++ {
		x := rng.Intn(w.Length - cfg.World.PlatformWidth)
		y := 50 + rng.Intn(cfg.World.ViewportH-200)
		w.Platforms = append(w.Platforms, core.NewRect(x, y, cfg.World.PlatformWidth, cfg.World.PlatformHeight))
	}

	obstacles := 20 + 10*level
	for i := 0; i < obstacles; i++ {
		x := rng.Intn(w.Length - cfg.World.ObstacleSize)
		y := rng.Intn(cfg.World.ViewportH - 100)
		w.Obstacles = append(w.Obstacles, core.NewRect(x, y, cfg.World.ObstacleSize, cfg.World.ObstacleSize))
	}

	powerUps := powerUpCount(level, cfg.PowerUps.Variant)
	for i := 0; i < powerUps; i++ {
		x := rng.Intn(w.Length - cfg.World.PowerUpSize)
		y := rng.Intn(cfg.World.ViewportH - 100)
		w.PowerUps = append(w.PowerUps, PowerUp{
			Rect: core.NewRect(x, y, cfg.World.PowerUpSize, cfg.World.PowerUpSize),
			Kind: rollKind(rng, cfg.PowerUps),
		})
	}

	if level == len(cfg.World.LevelLengths) {
		goal := core.NewRect(
			w.Length-150,
			cfg.World.ViewportH-cfg.Player.Height-100,
			cfg.World.GoalWidth,
			cfg.World.GoalHeight,
		)
		w.Goal = &goal
	}
	return w
}

// powerUpCount scales pickup density per level under the configured variant.
func powerUpCount(level int, variant config.PowerUpVariant) int {
	if variant == config.VariantEnriched {
		return 10 + 4*level
	}
	return 5 + 2*level
}

// rollKind draws a power-up kind under the configured distribution.
func rollKind(rng *rand.Rand, cfg config.PowerUpsConfig) PowerUpKind {
	if cfg.Distribution == config.DistWeighted {
		total := cfg.Weights.ScoreBoost + cfg.Weights.Shield + cfg.Weights.Health
		roll := rng.Intn(total)
		switch {
		case roll < cfg.Weights.ScoreBoost:
			return KindScoreBoost
		case roll < cfg.Weights.ScoreBoost+cfg.Weights.Shield:
			return KindShield
		default:
			return KindHealth
		}
	}
	return PowerUpKind(rng.Intn(int(kindCount)))
}
