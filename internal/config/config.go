// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full experiment configuration. Field names mirror the
// command-line options of the original scenario scripts so existing
// sweep tooling keeps working.
type Config struct {
	NodesNum  int     `yaml:"nodesNum"`
	AreaSizeX float64 `yaml:"areaSizeX"`
	AreaSizeY float64 `yaml:"areaSizeY"`

	MinSpeed float64 `yaml:"minSpeed"` // m/s
	MaxSpeed float64 `yaml:"maxSpeed"` // m/s

	SamplingFreq   float64 `yaml:"samplingFreq"`   // seconds between sampling ticks
	SimulationTime float64 `yaml:"simulationTime"` // measured part of the run (s)
	WarmupTime     float64 `yaml:"warmupTime"`     // settling time before sampling (s)

	RngSeed uint64 `yaml:"rngSeed"`
	RngRun  int    `yaml:"rngRun"`

	ResultsPath string `yaml:"resultsPath"`

	SpineNodesPercent float64 `yaml:"spineNodesPercent"` // [0,100]
	SpineVariant      string  `yaml:"spineVariant"`      // horizontal | centroid

	PacketsPerSecond float64 `yaml:"packetsPerSecond"`
	PacketsSize      int     `yaml:"packetsSize"` // bytes

	WifiType         string `yaml:"wifiType"`         // 80211b | 80211g | 80211n | 80211ac
	WifiChannelWidth int    `yaml:"wifiChannelWidth"` // MHz

	Environment string  `yaml:"environment"` // none | forest
	TreeCount   int     `yaml:"treeCount"`
	TreeSize    float64 `yaml:"treeSize"`   // trunk diameter (m)
	TreeHeight  float64 `yaml:"treeHeight"` // m

	Scenario      string  `yaml:"scenario"`      // none | wipe
	WipeDirection string  `yaml:"wipeDirection"` // N | E | S | W | R
	WipeSpeed     float64 `yaml:"wipeSpeed"`     // m/s of the sweeping boundary
}

// Default returns the configuration used when no file or flag overrides
// anything. Values match the original scenario defaults.
func Default() *Config {
	return &Config{
		NodesNum:          5,
		AreaSizeX:         5,
		AreaSizeY:         5,
		MinSpeed:          1,
		MaxSpeed:          5,
		SamplingFreq:      1,
		SimulationTime:    10,
		WarmupTime:        3,
		RngSeed:           1,
		RngRun:            1,
		ResultsPath:       "./output",
		SpineNodesPercent: 20,
		SpineVariant:      string(SpineHorizontal),
		PacketsPerSecond:  1,
		PacketsSize:       512,
		WifiType:          string(Wifi80211b),
		WifiChannelWidth:  20,
		Environment:       string(EnvNone),
		TreeCount:         0,
		TreeSize:          0.3,
		TreeHeight:        10,
		Scenario:          string(ScenarioNone),
		WipeDirection:     "E",
		WipeSpeed:         1,
	}
}

// Load reads a YAML config, optionally validating it against a CUE
// schema first, and applies defaults for absent keys.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	if cueSchemaPath != "" {
		if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// TotalTime is the virtual time at which the run stops.
func (c *Config) TotalTime() float64 {
	return c.WarmupTime + c.SimulationTime
}
