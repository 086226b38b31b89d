package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"manet-sim/internal/config"
	"manet-sim/internal/logging"
	"manet-sim/internal/scenario"
	"manet-sim/internal/sim"
)

var (
	simConfigPath string
	simSchemaPath string
	simPreset     string
	simPrintOnly  bool
	simLogFile    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one experiment and write the result files",
	Long:  "simulate executes a full experiment run over the virtual clock and flushes movement, connectivity, and packet metrics to the results directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if simPreset != "" {
			if err := applyPreset(cfg, simPreset); err != nil {
				return err
			}
		}
		applyFlagOverrides(cmd, cfg)

		cfg.Normalize(log)
		if err := cfg.Validate(); err != nil {
			return err
		}

		simulator := sim.NewSimulator(cfg, log)
		writer, cleanup, err := newWriters(cfg, simulator.RunInfo(), simPrintOnly, simLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		simulator.Run()
		if err := simulator.Flush(writer); err != nil {
			return fmt.Errorf("flush results: %w", err)
		}
		simulator.Summarize().Log(log)
		log.Info("results written", "path", cfg.ResultsPath)
		return nil
	},
}

// loadConfig reads the config file when present and falls back to the
// defaults when the default path is absent. An explicitly given path
// must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(simConfigPath); err != nil {
		if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
			return config.Default(), nil
		}
		return nil, err
	}
	schema := simSchemaPath
	if _, err := os.Stat(schema); err != nil {
		schema = ""
	}
	return config.Load(simConfigPath, schema)
}

// applyPreset resolves name as a built-in preset first and as a YAML
// file second.
func applyPreset(cfg *config.Config, name string) error {
	if p, ok := scenario.BuiltIn()[name]; ok {
		p.Apply(cfg)
		return nil
	}
	p, err := scenario.Load(name)
	if err != nil {
		return fmt.Errorf("preset %q is neither built in nor a readable file: %w", name, err)
	}
	p.Apply(cfg)
	return nil
}

// applyFlagOverrides copies only the flags the user actually set.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("nodes", func() { cfg.NodesNum = flagNodes })
	set("area-x", func() { cfg.AreaSizeX = flagAreaX })
	set("area-y", func() { cfg.AreaSizeY = flagAreaY })
	set("min-speed", func() { cfg.MinSpeed = flagMinSpeed })
	set("max-speed", func() { cfg.MaxSpeed = flagMaxSpeed })
	set("sampling-freq", func() { cfg.SamplingFreq = flagSamplingFreq })
	set("sim-time", func() { cfg.SimulationTime = flagSimTime })
	set("warmup", func() { cfg.WarmupTime = flagWarmup })
	set("seed", func() { cfg.RngSeed = flagSeed })
	set("run", func() { cfg.RngRun = flagRun })
	set("results", func() { cfg.ResultsPath = flagResults })
	set("spine-percent", func() { cfg.SpineNodesPercent = flagSpinePct })
	set("spine-variant", func() { cfg.SpineVariant = flagSpineVariant })
	set("scenario", func() { cfg.Scenario = flagScenario })
	set("wipe-direction", func() { cfg.WipeDirection = flagWipeDir })
	set("wipe-speed", func() { cfg.WipeSpeed = flagWipeSpeed })
}

var (
	flagNodes        int
	flagAreaX        float64
	flagAreaY        float64
	flagMinSpeed     float64
	flagMaxSpeed     float64
	flagSamplingFreq float64
	flagSimTime      float64
	flagWarmup       float64
	flagSeed         uint64
	flagRun          int
	flagResults      string
	flagSpinePct     float64
	flagSpineVariant string
	flagScenario     string
	flagWipeDir      string
	flagWipeSpeed    float64
)

func init() {
	f := simulateCmd.Flags()
	f.StringVar(&simConfigPath, "config", "config/simulation.yaml", "Path to experiment configuration YAML")
	f.StringVar(&simSchemaPath, "schema", "schemas/manet.cue", "Path to CUE schema file")
	f.StringVar(&simPreset, "preset", "", "Built-in preset name or path to a preset YAML")
	f.BoolVar(&simPrintOnly, "print-only", false, "Also print metric rows to STDOUT")
	f.StringVar(&simLogFile, "log-file", "", "Base path to export metric logs (JSONL)")

	f.IntVar(&flagNodes, "nodes", 0, "Number of nodes")
	f.Float64Var(&flagAreaX, "area-x", 0, "Area width in meters")
	f.Float64Var(&flagAreaY, "area-y", 0, "Area height in meters")
	f.Float64Var(&flagMinSpeed, "min-speed", 0, "Minimum node speed (m/s)")
	f.Float64Var(&flagMaxSpeed, "max-speed", 0, "Maximum node speed (m/s)")
	f.Float64Var(&flagSamplingFreq, "sampling-freq", 0, "Seconds between sampling ticks")
	f.Float64Var(&flagSimTime, "sim-time", 0, "Measured simulation time (s)")
	f.Float64Var(&flagWarmup, "warmup", 0, "Warmup time before sampling (s)")
	f.Uint64Var(&flagSeed, "seed", 0, "Master RNG seed")
	f.IntVar(&flagRun, "run", 0, "Run index for independent replications")
	f.StringVar(&flagResults, "results", "", "Results directory")
	f.Float64Var(&flagSpinePct, "spine-percent", 0, "Percentage of nodes in the spine")
	f.StringVar(&flagSpineVariant, "spine-variant", "", "Spine selection variant (horizontal|centroid)")
	f.StringVar(&flagScenario, "scenario", "", "Failure scenario (none|wipe)")
	f.StringVar(&flagWipeDir, "wipe-direction", "", "Wipe direction (N|E|S|W|R)")
	f.Float64Var(&flagWipeSpeed, "wipe-speed", 0, "Wipe boundary speed (m/s)")
}
