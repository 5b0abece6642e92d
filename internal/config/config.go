// Package config provides YAML-based game configuration loading for the
// journey platform.
package config

// JourneyConfig contains all tuning for the Journey runner.
// All distances are in world pixels; all durations are in simulation ticks.
type JourneyConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	World    WorldConfig    `yaml:"world"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
}

// PhysicsConfig defines the kinematic constants.
type PhysicsConfig struct {
	Gravity      int `yaml:"gravity"`       // Downward acceleration per tick
	JumpStrength int `yaml:"jump_strength"` // Upward velocity applied on jump
	RunSpeed     int `yaml:"run_speed"`     // Constant forward speed per tick
	MaxJumps     int `yaml:"max_jumps"`     // Jump charges restored on landing
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	SpawnX int `yaml:"spawn_x"` // Horizontal spawn position
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig defines level geometry and entity sizes.
type WorldConfig struct {
	ViewportW      int   `yaml:"viewport_width"`
	ViewportH      int   `yaml:"viewport_height"`
	LevelLengths   []int `yaml:"level_lengths"` // World length per level, index 0 = level 1
	PlatformWidth  int   `yaml:"platform_width"`
	PlatformHeight int   `yaml:"platform_height"`
	ObstacleSize   int   `yaml:"obstacle_size"`
	PowerUpSize    int   `yaml:"powerup_size"`
	GoalWidth      int   `yaml:"goal_width"`
	GoalHeight     int   `yaml:"goal_height"`
}

// PowerUpVariant selects the per-level power-up count formula.
type PowerUpVariant string

const (
	VariantBaseline PowerUpVariant = "baseline" // 5 + 2*level
	VariantEnriched PowerUpVariant = "enriched" // 10 + 4*level
)

// Distribution selects how power-up kinds are drawn during generation.
type Distribution string

const (
	DistUniform  Distribution = "uniform"  // Equal chance for every kind
	DistWeighted Distribution = "weighted" // Weighted draw, see Weights
)

// PowerUpsConfig defines power-up generation policy and effect tuning.
type PowerUpsConfig struct {
	Variant      PowerUpVariant `yaml:"variant"`
	Distribution Distribution   `yaml:"distribution"`
	Weights      WeightsConfig  `yaml:"weights"`
	ShieldTicks  int            `yaml:"shield_ticks"` // Shield duration; re-pickup refreshes to this
	HealAmount   int            `yaml:"heal_amount"`  // Health restored, clamped at 100
	ScoreBonus   int            `yaml:"score_bonus"`
	ObstacleHit  int            `yaml:"obstacle_hit"` // Damage per obstacle contact
}

// WeightsConfig holds the relative weights for the weighted distribution.
type WeightsConfig struct {
	ScoreBoost int `yaml:"score_boost"`
	Shield     int `yaml:"shield"`
	Health     int `yaml:"health"`
}

// ApplyPowerUpPolicy overrides the generation policy from CLI flags.
// Empty values leave the configured policy untouched.
func ApplyPowerUpPolicy(cfg *JourneyConfig, variant, distribution string) {
	switch PowerUpVariant(variant) {
	case VariantBaseline, VariantEnriched:
		cfg.PowerUps.Variant = PowerUpVariant(variant)
	}
	switch Distribution(distribution) {
	case DistUniform, DistWeighted:
		cfg.PowerUps.Distribution = Distribution(distribution)
	}
}
