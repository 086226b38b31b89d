package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"manet-sim/internal/logging"
	"manet-sim/internal/report"
)

var (
	reportResults string
	reportOut     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render an HTML report from the result files",
	Long:  "report aggregates the CSV result files of a finished run into a single self-contained HTML page.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := reportOut
		if out == "" {
			out = filepath.Join(reportResults, "report.html")
		}
		if err := report.Render(reportResults, out); err != nil {
			return err
		}
		logging.New().Info("report written", "path", out)
		return nil
	},
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportResults, "results", "./output", "Results directory to aggregate")
	f.StringVar(&reportOut, "out", "", "Output HTML path (default <results>/report.html)")
}
