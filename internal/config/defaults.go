package config

import (
	_ "embed"
)

//go:embed defaults/journey.yaml
var defaultJourneyYAML []byte

// DefaultJourneyConfig returns the default Journey configuration.
// These values match the reference tuning: 50 ticks per second, three levels
// of 2000/3500/5000 world pixels.
func DefaultJourneyConfig() JourneyConfig {
	return JourneyConfig{
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpStrength: 16,
			RunSpeed:     5,
			MaxJumps:     2,
		},
		Player: PlayerConfig{
			SpawnX: 100,
			Width:  40,
			Height: 60,
		},
		World: WorldConfig{
			ViewportW:      800,
			ViewportH:      500,
			LevelLengths:   []int{2000, 3500, 5000},
			PlatformWidth:  100,
			PlatformHeight: 20,
			ObstacleSize:   40,
			PowerUpSize:    25,
			GoalWidth:      50,
			GoalHeight:     80,
		},
		PowerUps: PowerUpsConfig{
			Variant:      VariantBaseline,
			Distribution: DistUniform,
			Weights: WeightsConfig{
				ScoreBoost: 50,
				Shield:     25,
				Health:     25,
			},
			ShieldTicks: 500,
			HealAmount:  30,
			ScoreBonus:  100,
			ObstacleHit: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultJourneyYAML
}
