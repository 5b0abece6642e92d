package config

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML JourneyConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultJourneyConfig()) {
		t.Errorf("embedded YAML drifted from hardcoded defaults:\nyaml: %+v\ncode: %+v", fromYAML, DefaultJourneyConfig())
	}
}

func TestDefaultPolicy(t *testing.T) {
	cfg := DefaultJourneyConfig()
	if cfg.PowerUps.Variant != VariantBaseline {
		t.Errorf("default variant = %s, want baseline", cfg.PowerUps.Variant)
	}
	if cfg.PowerUps.Distribution != DistUniform {
		t.Errorf("default distribution = %s, want uniform", cfg.PowerUps.Distribution)
	}
}

func TestApplyPowerUpPolicy(t *testing.T) {
	cfg := DefaultJourneyConfig()

	ApplyPowerUpPolicy(&cfg, "enriched", "weighted")
	if cfg.PowerUps.Variant != VariantEnriched || cfg.PowerUps.Distribution != DistWeighted {
		t.Errorf("policy not applied: %+v", cfg.PowerUps)
	}

	// Unknown values leave the config untouched.
	ApplyPowerUpPolicy(&cfg, "bogus", "random")
	if cfg.PowerUps.Variant != VariantEnriched || cfg.PowerUps.Distribution != DistWeighted {
		t.Errorf("unknown policy values should be ignored: %+v", cfg.PowerUps)
	}

	// Empty strings keep current values.
	ApplyPowerUpPolicy(&cfg, "", "")
	if cfg.PowerUps.Variant != VariantEnriched || cfg.PowerUps.Distribution != DistWeighted {
		t.Errorf("empty policy values should keep config: %+v", cfg.PowerUps)
	}
}

func TestLoadJourneyFallsBackToDefaults(t *testing.T) {
	// A missing custom path falls through the search order to the embedded
	// defaults.
	cfg, err := LoadJourney("")
	if err != nil {
		t.Fatalf("LoadJourney() failed: %v", err)
	}
	if cfg.Physics.JumpStrength == 0 || len(cfg.World.LevelLengths) == 0 {
		t.Errorf("loaded config looks empty: %+v", cfg)
	}
}

func TestLoadJourneyCustomPath(t *testing.T) {
	if _, err := LoadJourney("/nonexistent/path/journey.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}
