package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"manet-sim/internal/config"
)

func TestPresetAppliesOnlyPresentOverrides(t *testing.T) {
	cfg := config.Default()
	p := Preset{Overrides: Overrides{
		NodesNum:  ptr(50),
		Scenario:  ptr("wipe"),
		WipeSpeed: ptr(2.5),
	}}
	p.Apply(cfg)

	if cfg.NodesNum != 50 || cfg.Scenario != "wipe" || cfg.WipeSpeed != 2.5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AreaSizeX != config.Default().AreaSizeX {
		t.Errorf("untouched field changed: areaSizeX=%v", cfg.AreaSizeX)
	}
}

func TestLoadPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	data := `name: custom
description: hand-written sweep
overrides:
  nodesNum: 60
  environment: forest
  treeCount: 500
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	if p.Name != "custom" {
		t.Errorf("name = %q", p.Name)
	}
	cfg := config.Default()
	p.Apply(cfg)
	if cfg.NodesNum != 60 || cfg.Environment != "forest" || cfg.TreeCount != 500 {
		t.Errorf("loaded overrides not applied: %+v", cfg)
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("missing file accepted")
	}
}

func TestBuiltInPresets(t *testing.T) {
	presets := BuiltIn()
	for _, name := range []string{"baseline", "forest-patrol", "wipe-east", "wipe-random"} {
		p, ok := presets[name]
		if !ok {
			t.Fatalf("preset %s not found", name)
		}
		if p.Description == "" {
			t.Errorf("preset %s missing description", name)
		}
		cfg := config.Default()
		p.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s yields invalid config: %v", name, err)
		}
	}
}
