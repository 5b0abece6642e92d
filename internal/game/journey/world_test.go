package journey

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/journey-arcade/journey/internal/config"
)

func TestGenerateWorldDeterminism(t *testing.T) {
	cfg := config.DefaultJourneyConfig()

	w1 := GenerateWorld(2, rand.New(rand.NewSource(77)), cfg)
	w2 := GenerateWorld(2, rand.New(rand.NewSource(77)), cfg)
	if !reflect.DeepEqual(w1, w2) {
		t.Error("same seed must generate identical worlds")
	}

	w3 := GenerateWorld(2, rand.New(rand.NewSource(78)), cfg)
	if reflect.DeepEqual(w1, w3) {
		t.Error("different seeds should generate different worlds")
	}
}

func TestGenerateWorldDensities(t *testing.T) {
	cfg := config.DefaultJourneyConfig()

	tests := []struct {
		level     int
		variant   config.PowerUpVariant
		platforms int
		obstacles int
		powerUps  int
	}{
		{1, config.VariantBaseline, 20, 30, 7},
		{2, config.VariantBaseline, 25, 40, 9},
		{3, config.VariantBaseline, 30, 50, 11},
		{1, config.VariantEnriched, 20, 30, 14},
		{3, config.VariantEnriched, 30, 50, 22},
	}
	for _, tt := range tests {
		cfg.PowerUps.Variant = tt.variant
		w := GenerateWorld(tt.level, rand.New(rand.NewSource(1)), cfg)
		if len(w.Platforms) != tt.platforms {
			t.Errorf("level %d %s: %d platforms, want %d", tt.level, tt.variant, len(w.Platforms), tt.platforms)
		}
		if len(w.Obstacles) != tt.obstacles {
			t.Errorf("level %d %s: %d obstacles, want %d", tt.level, tt.variant, len(w.Obstacles), tt.obstacles)
		}
		if len(w.PowerUps) != tt.powerUps {
			t.Errorf("level %d %s: %d power-ups, want %d", tt.level, tt.variant, len(w.PowerUps), tt.powerUps)
		}
		if w.Length != cfg.World.LevelLengths[tt.level-1] {
			t.Errorf("level %d: length %d, want %d", tt.level, w.Length, cfg.World.LevelLengths[tt.level-1])
		}
	}
}

func TestGenerateWorldBounds(t *testing.T) {
	cfg := config.DefaultJourneyConfig()

	for level := 1; level <= 3; level++ {
		w := GenerateWorld(level, rand.New(rand.NewSource(42)), cfg)
		for _, p := range w.Platforms {
			if p.X < 0 || p.X >= w.Length-cfg.World.PlatformWidth {
				t.Errorf("level %d: platform x=%d out of range", level, p.X)
			}
			if p.Y < 50 || p.Y >= cfg.World.ViewportH-150 {
				t.Errorf("level %d: platform y=%d out of band", level, p.Y)
			}
		}
		for _, o := range w.Obstacles {
			if o.X < 0 || o.X >= w.Length-cfg.World.ObstacleSize {
				t.Errorf("level %d: obstacle x=%d out of range", level, o.X)
			}
			if o.Y < 0 || o.Y >= cfg.World.ViewportH-100 {
				t.Errorf("level %d: obstacle y=%d out of band", level, o.Y)
			}
		}
	}
}

func TestGoalOnlyInFinalLevel(t *testing.T) {
	cfg := config.DefaultJourneyConfig()

	for level := 1; level <= 2; level++ {
		w := GenerateWorld(level, rand.New(rand.NewSource(5)), cfg)
		if w.Goal != nil {
			t.Errorf("level %d should not have a goal", level)
		}
	}

	w := GenerateWorld(3, rand.New(rand.NewSource(5)), cfg)
	if w.Goal == nil {
		t.Fatal("final level must place the goal")
	}
	if w.Goal.X != w.Length-150 {
		t.Errorf("goal x = %d, want %d", w.Goal.X, w.Length-150)
	}
	if w.Goal.Y != cfg.World.ViewportH-cfg.Player.Height-100 {
		t.Errorf("goal y = %d", w.Goal.Y)
	}
	if w.Goal.W != cfg.World.GoalWidth || w.Goal.H != cfg.World.GoalHeight {
		t.Errorf("goal size = %dx%d", w.Goal.W, w.Goal.H)
	}
}

func TestRollKindUniformCoversAllKinds(t *testing.T) {
	cfg := config.DefaultJourneyConfig().PowerUps
	cfg.Distribution = config.DistUniform

	rng := rand.New(rand.NewSource(9))
	seen := map[PowerUpKind]int{}
	for i := 0; i < 300; i++ {
		k := rollKind(rng, cfg)
		if k < 0 || k >= kindCount {
			t.Fatalf("invalid kind %d", k)
		}
		seen[k]++
	}
	for k := PowerUpKind(0); k < kindCount; k++ {
		if seen[k] == 0 {
			t.Errorf("uniform draw never produced %s", k)
		}
	}
}

func TestRollKindWeighted(t *testing.T) {
	cfg := config.DefaultJourneyConfig().PowerUps
	cfg.Distribution = config.DistWeighted

	// Degenerate weights pin the outcome.
	cfg.Weights = config.WeightsConfig{ScoreBoost: 1, Shield: 0, Health: 0}
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 50; i++ {
		if k := rollKind(rng, cfg); k != KindScoreBoost {
			t.Fatalf("weights pinned to ScoreBoost produced %s", k)
		}
	}

	cfg.Weights = config.WeightsConfig{ScoreBoost: 0, Shield: 1, Health: 0}
	for i := 0; i < 50; i++ {
		if k := rollKind(rng, cfg); k != KindShield {
			t.Fatalf("weights pinned to Shield produced %s", k)
		}
	}

	// Default 50/25/25 should favor score boosts over a large sample.
	cfg.Weights = config.WeightsConfig{ScoreBoost: 50, Shield: 25, Health: 25}
	seen := map[PowerUpKind]int{}
	for i := 0; i < 2000; i++ {
		seen[rollKind(rng, cfg)]++
	}
	if seen[KindScoreBoost] <= seen[KindShield] || seen[KindScoreBoost] <= seen[KindHealth] {
		t.Errorf("weighted draw distribution off: %v", seen)
	}
}

func TestGenerateWorldRejectsBadLevel(t *testing.T) {
	cfg := config.DefaultJourneyConfig()
	for _, level := range []int{0, 4, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("level %d should panic", level)
				}
			}()
			GenerateWorld(level, rand.New(rand.NewSource(1)), cfg)
		}()
	}
}
