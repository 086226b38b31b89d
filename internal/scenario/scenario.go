// Named experiment presets layered over the base configuration
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"manet-sim/internal/config"
)

// Preset is a named bundle of configuration overrides describing one
// experiment setup. Only fields present in the preset are applied; the
// rest of the configuration keeps its file or default value.
type Preset struct {
	Name        string    `yaml:"name,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Overrides   Overrides `yaml:"overrides"`
}

// Overrides holds the configuration keys a preset may pin. Pointer
// fields distinguish "absent" from a zero value.
type Overrides struct {
	NodesNum          *int     `yaml:"nodesNum,omitempty"`
	AreaSizeX         *float64 `yaml:"areaSizeX,omitempty"`
	AreaSizeY         *float64 `yaml:"areaSizeY,omitempty"`
	MinSpeed          *float64 `yaml:"minSpeed,omitempty"`
	MaxSpeed          *float64 `yaml:"maxSpeed,omitempty"`
	SimulationTime    *float64 `yaml:"simulationTime,omitempty"`
	SpineNodesPercent *float64 `yaml:"spineNodesPercent,omitempty"`
	SpineVariant      *string  `yaml:"spineVariant,omitempty"`
	WifiType          *string  `yaml:"wifiType,omitempty"`
	Environment       *string  `yaml:"environment,omitempty"`
	TreeCount         *int     `yaml:"treeCount,omitempty"`
	Scenario          *string  `yaml:"scenario,omitempty"`
	WipeDirection     *string  `yaml:"wipeDirection,omitempty"`
	WipeSpeed         *float64 `yaml:"wipeSpeed,omitempty"`
}

// Load reads a YAML preset definition from disk.
func Load(path string) (*Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return &p, nil
}

// Apply layers the preset's overrides onto cfg.
func (p *Preset) Apply(cfg *config.Config) {
	o := p.Overrides
	if o.NodesNum != nil {
		cfg.NodesNum = *o.NodesNum
	}
	if o.AreaSizeX != nil {
		cfg.AreaSizeX = *o.AreaSizeX
	}
	if o.AreaSizeY != nil {
		cfg.AreaSizeY = *o.AreaSizeY
	}
	if o.MinSpeed != nil {
		cfg.MinSpeed = *o.MinSpeed
	}
	if o.MaxSpeed != nil {
		cfg.MaxSpeed = *o.MaxSpeed
	}
	if o.SimulationTime != nil {
		cfg.SimulationTime = *o.SimulationTime
	}
	if o.SpineNodesPercent != nil {
		cfg.SpineNodesPercent = *o.SpineNodesPercent
	}
	if o.SpineVariant != nil {
		cfg.SpineVariant = *o.SpineVariant
	}
	if o.WifiType != nil {
		cfg.WifiType = *o.WifiType
	}
	if o.Environment != nil {
		cfg.Environment = *o.Environment
	}
	if o.TreeCount != nil {
		cfg.TreeCount = *o.TreeCount
	}
	if o.Scenario != nil {
		cfg.Scenario = *o.Scenario
	}
	if o.WipeDirection != nil {
		cfg.WipeDirection = *o.WipeDirection
	}
	if o.WipeSpeed != nil {
		cfg.WipeSpeed = *o.WipeSpeed
	}
}
