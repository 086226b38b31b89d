package main

import (
	"os"

	"golang.org/x/term"

	"manet-sim/internal/config"
	"manet-sim/internal/sim"
	"manet-sim/internal/telemetry"
)

// newWriters assembles the writer stack for a run: the CSV result files
// always, STDOUT echo when requested, JSONL export when a log file is
// given, and GreptimeDB when a host is configured. The returned cleanup
// closes every underlying file.
func newWriters(cfg *config.Config, run telemetry.RunInfo, printOnly bool, logFile string) (sim.RowWriter, func(), error) {
	var writers []sim.RowWriter
	var closers []func() error

	csvw, err := sim.NewCSVWriter(cfg.ResultsPath)
	if err != nil {
		return nil, nil, err
	}
	writers = append(writers, csvw)
	closers = append(closers, csvw.Close)

	if printOnly {
		writers = append(writers, stdoutWriter(cfg))
	}

	if logFile != "" {
		fw, err := sim.NewFileWriter(
			logFile+".movement", logFile+".connectivity", logFile+".packets")
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, fw)
		closers = append(closers, fw.Close)
	}

	if host := os.Getenv("GREPTIMEDB_HOST"); host != "" {
		database := os.Getenv("GREPTIMEDB_DATABASE")
		if database == "" {
			database = "public"
		}
		gw, err := sim.NewGreptimeDBWriter(host, database, run)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, gw)
	}

	cleanup := func() {
		for _, c := range closers {
			_ = c()
		}
	}
	if len(writers) == 1 {
		return writers[0], cleanup, nil
	}
	return sim.NewMultiWriter(writers...), cleanup, nil
}

// stdoutWriter prefers the colorized writer on a terminal and plain
// JSON lines when output is piped.
func stdoutWriter(cfg *config.Config) sim.RowWriter {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return sim.NewColorStdoutWriter(cfg)
	}
	return &sim.StdoutWriter{}
}
