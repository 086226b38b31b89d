// CUE schema validation and semantic checks
package config

import (
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/encoding/yaml"
)

// SpineVariant selects the geometric criterion used to rank spine
// candidates.
type SpineVariant string

const (
	SpineHorizontal SpineVariant = "horizontal"
	SpineCentroid   SpineVariant = "centroid"
)

// Scenario names the scripted failure model applied during the run.
type Scenario string

const (
	ScenarioNone Scenario = "none"
	ScenarioWipe Scenario = "wipe"
)

// Environment selects the propagation environment.
type Environment string

const (
	EnvNone   Environment = "none"
	EnvForest Environment = "forest"
)

// WifiType is the 802.11 standard emulated by the radio model.
type WifiType string

const (
	Wifi80211b  WifiType = "80211b"
	Wifi80211g  WifiType = "80211g"
	Wifi80211n  WifiType = "80211n"
	Wifi80211ac WifiType = "80211ac"
)

var wifiChannelWidths = map[int]bool{20: true, 40: true, 80: true, 160: true}

// ValidateWithCue validates a YAML configuration file using a CUE schema file.
func ValidateWithCue(configFile, cueFile string) error {
	ctx := cuecontext.New()

	yamlBytes, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("cannot read YAML config: %w", err)
	}
	configFileAST, err := yaml.Extract(configFile, yamlBytes)
	if err != nil {
		return fmt.Errorf("cannot parse YAML config: %w", err)
	}
	configVal := ctx.BuildFile(configFileAST)

	schemaBytes, err := os.ReadFile(cueFile)
	if err != nil {
		return fmt.Errorf("cannot read CUE schema: %w", err)
	}
	schemaVal := ctx.CompileBytes(schemaBytes)

	final := configVal.Unify(schemaVal)
	if final.Err() != nil {
		return fmt.Errorf("schema unify failed: %w", final.Err())
	}
	if err := final.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Validate checks every fatal configuration rule. An error here aborts
// the experiment before any simulation state is built.
func (c *Config) Validate() error {
	if c.NodesNum < 1 {
		return fmt.Errorf("nodesNum must be at least 1, got %d", c.NodesNum)
	}
	if c.AreaSizeX <= 0 || c.AreaSizeY <= 0 {
		return fmt.Errorf("area size must be positive, got %gx%g", c.AreaSizeX, c.AreaSizeY)
	}
	if c.MinSpeed < 0 || c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("speed range invalid: min=%g max=%g", c.MinSpeed, c.MaxSpeed)
	}
	if c.SamplingFreq <= 0 {
		return fmt.Errorf("samplingFreq must be positive, got %g", c.SamplingFreq)
	}
	if c.SimulationTime <= 0 {
		return fmt.Errorf("simulationTime must be positive, got %g", c.SimulationTime)
	}
	if c.WarmupTime < 0 {
		return fmt.Errorf("warmupTime must not be negative, got %g", c.WarmupTime)
	}
	if c.SpineNodesPercent < 0 || c.SpineNodesPercent > 100 {
		return fmt.Errorf("spineNodesPercent must be in [0,100], got %g", c.SpineNodesPercent)
	}
	switch WifiType(c.WifiType) {
	case Wifi80211b, Wifi80211g, Wifi80211n, Wifi80211ac:
	default:
		return fmt.Errorf("unknown wifiType %q", c.WifiType)
	}
	if !wifiChannelWidths[c.WifiChannelWidth] {
		return fmt.Errorf("unsupported wifiChannelWidth %d MHz", c.WifiChannelWidth)
	}
	switch Environment(c.Environment) {
	case EnvNone, EnvForest:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	switch Scenario(c.Scenario) {
	case ScenarioNone, ScenarioWipe:
	default:
		return fmt.Errorf("unknown scenario %q", c.Scenario)
	}
	if Scenario(c.Scenario) == ScenarioWipe {
		switch c.WipeDirection {
		case "N", "E", "S", "W", "R":
		default:
			return fmt.Errorf("unknown wipeDirection %q", c.WipeDirection)
		}
		if c.WipeSpeed <= 0 {
			return fmt.Errorf("wipeSpeed must be positive, got %g", c.WipeSpeed)
		}
	}
	if c.PacketsPerSecond < 0 {
		return fmt.Errorf("packetsPerSecond must not be negative, got %g", c.PacketsPerSecond)
	}
	if c.PacketsSize <= 0 {
		return fmt.Errorf("packetsSize must be positive, got %d", c.PacketsSize)
	}
	return nil
}

// Normalize applies the recoverable fallbacks, logging a warning for
// each substitution. Unknown spine variants degrade to horizontal
// instead of aborting the run.
func (c *Config) Normalize(log *slog.Logger) {
	switch SpineVariant(c.SpineVariant) {
	case SpineHorizontal, SpineCentroid:
	default:
		log.Warn("unknown spine variant, falling back to horizontal",
			"variant", c.SpineVariant)
		c.SpineVariant = string(SpineHorizontal)
	}
}
