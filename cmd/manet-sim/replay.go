package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"manet-sim/internal/sim"
)

var (
	replayResults string
	replayAreaX   float64
	replayAreaY   float64
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded movement trace in the terminal",
	Long:  "replay loads a movement.csv from a results directory and steps through it on an interactive grid of the experiment area.",
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, err := sim.LoadMovementFile(filepath.Join(replayResults, sim.MovementFile))
		if err != nil {
			return err
		}
		return sim.Replay(frames, replayAreaX, replayAreaY)
	},
}

func init() {
	f := replayCmd.Flags()
	f.StringVar(&replayResults, "results", "./output", "Results directory holding movement.csv")
	f.Float64Var(&replayAreaX, "area-x", 5, "Area width the trace was recorded on (m)")
	f.Float64Var(&replayAreaY, "area-y", 5, "Area height the trace was recorded on (m)")
}
