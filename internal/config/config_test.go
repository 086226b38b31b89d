package config

import (
	"os"
	"path/filepath"
	"testing"

	"manet-sim/internal/logging"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateFatalRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero nodes", func(c *Config) { c.NodesNum = 0 }},
		{"negative area", func(c *Config) { c.AreaSizeX = -1 }},
		{"inverted speed range", func(c *Config) { c.MinSpeed = 5; c.MaxSpeed = 1 }},
		{"zero sampling freq", func(c *Config) { c.SamplingFreq = 0 }},
		{"zero simulation time", func(c *Config) { c.SimulationTime = 0 }},
		{"negative warmup", func(c *Config) { c.WarmupTime = -1 }},
		{"spine percent above 100", func(c *Config) { c.SpineNodesPercent = 150 }},
		{"unknown wifi type", func(c *Config) { c.WifiType = "80211z" }},
		{"odd channel width", func(c *Config) { c.WifiChannelWidth = 30 }},
		{"unknown environment", func(c *Config) { c.Environment = "desert" }},
		{"unknown scenario", func(c *Config) { c.Scenario = "flood" }},
		{"bad wipe direction", func(c *Config) { c.Scenario = "wipe"; c.WipeDirection = "X" }},
		{"zero wipe speed", func(c *Config) { c.Scenario = "wipe"; c.WipeSpeed = 0 }},
		{"negative packet rate", func(c *Config) { c.PacketsPerSecond = -1 }},
		{"zero packet size", func(c *Config) { c.PacketsSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateWipeRulesOnlyApplyToWipeScenario(t *testing.T) {
	cfg := Default()
	cfg.Scenario = string(ScenarioNone)
	cfg.WipeDirection = "X"
	cfg.WipeSpeed = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("wipe settings must be ignored without the wipe scenario: %v", err)
	}
}

func TestNormalizeFallsBackToHorizontal(t *testing.T) {
	cfg := Default()
	cfg.SpineVariant = "diagonal"
	cfg.Normalize(logging.New())
	if cfg.SpineVariant != string(SpineHorizontal) {
		t.Errorf("variant = %q, want horizontal fallback", cfg.SpineVariant)
	}

	cfg.SpineVariant = string(SpineCentroid)
	cfg.Normalize(logging.New())
	if cfg.SpineVariant != string(SpineCentroid) {
		t.Error("known variant must not be rewritten")
	}
}

func TestLoadAppliesDefaultsForAbsentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `nodesNum: 42
areaSizeX: 250
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NodesNum != 42 || cfg.AreaSizeX != 250 {
		t.Errorf("explicit keys lost: %+v", cfg)
	}
	if cfg.SimulationTime != Default().SimulationTime {
		t.Errorf("absent key did not default: simulationTime=%v", cfg.SimulationTime)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("no-such-config.yaml", ""); err == nil {
		t.Error("missing config accepted")
	}
}

func TestTotalTime(t *testing.T) {
	cfg := Default()
	cfg.WarmupTime = 3
	cfg.SimulationTime = 10
	if got := cfg.TotalTime(); got != 13 {
		t.Errorf("total time = %v, want 13", got)
	}
}
