// ColorStdoutWriter prints human-friendly, colorized metric rows to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"

	"manet-sim/internal/config"
	"manet-sim/internal/telemetry"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorStdoutWriter prints metric rows using ANSI colors.
type ColorStdoutWriter struct {
	cfg  *config.Config
	out  io.Writer
	once sync.Once
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter(cfg *config.Config) *ColorStdoutWriter {
	return &ColorStdoutWriter{cfg: cfg, out: os.Stdout}
}

func (w *ColorStdoutWriter) printOverview() {
	if w.cfg == nil {
		return
	}

	fmt.Fprintln(w.out, "Experiment Configuration:")
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Nodes:\t%d\n", w.cfg.NodesNum)
	fmt.Fprintf(tw, "Area (m):\t%.0f x %.0f\n", w.cfg.AreaSizeX, w.cfg.AreaSizeY)
	fmt.Fprintf(tw, "Speed (m/s):\t%.1f - %.1f\n", w.cfg.MinSpeed, w.cfg.MaxSpeed)
	fmt.Fprintf(tw, "Sampling (s):\t%.2f\n", w.cfg.SamplingFreq)
	fmt.Fprintf(tw, "Warmup (s):\t%.1f\n", w.cfg.WarmupTime)
	fmt.Fprintf(tw, "Duration (s):\t%.1f\n", w.cfg.SimulationTime)
	fmt.Fprintf(tw, "Spine:\t%.0f%% (%s)\n", w.cfg.SpineNodesPercent, w.cfg.SpineVariant)
	fmt.Fprintf(tw, "Scenario:\t%s\n", w.cfg.Scenario)
	fmt.Fprintf(tw, "Wifi:\t%s @ %d MHz\n", w.cfg.WifiType, w.cfg.WifiChannelWidth)
	tw.Flush()
	fmt.Fprintln(w.out)
}

// WriteMovement outputs a single movement row in colorized format.
func (w *ColorStdoutWriter) WriteMovement(row telemetry.MovementRow) error {
	w.once.Do(w.printOverview)

	nodeColor := colorBlue
	if row.Spine {
		nodeColor = colorMagenta
	}
	fmt.Fprintf(w.out, "%s[%8.2fs]%s ", colorGray, row.Time, colorReset)
	fmt.Fprintf(w.out, "%snode=%s%s ", nodeColor, row.NodeLabel(), colorReset)
	fmt.Fprintf(w.out, "%sx=%.2f%s ", colorGreen, row.X, colorReset)
	fmt.Fprintf(w.out, "%sy=%.2f%s ", colorYellow, row.Y, colorReset)
	fmt.Fprintf(w.out, "%sz=%.2f%s ", colorCyan, row.Z, colorReset)
	fmt.Fprintf(w.out, "%sspd=%.2f%s", colorCyan, row.Speed, colorReset)
	fmt.Fprintln(w.out)
	return nil
}

// WriteConnectivity outputs a single connectivity row in colorized format.
func (w *ColorStdoutWriter) WriteConnectivity(row telemetry.ConnectivityRow) error {
	w.once.Do(w.printOverview)

	linkColor := colorGreen
	link := "up"
	if !row.L2Link {
		linkColor = colorRed
		link = "down"
	}
	state := "online"
	stateColor := colorGreen
	if !row.Online {
		state = "offline"
		stateColor = colorRed
	}
	fmt.Fprintf(w.out, "%s[%8.2fs]%s %sLINK%s node=%d %s%s%s %s%s%s\n",
		colorGray, row.Time, colorReset,
		colorBlue, colorReset, row.Node,
		linkColor, link, colorReset,
		stateColor, state, colorReset)
	return nil
}

// WritePacket outputs a single packet row in colorized format.
func (w *ColorStdoutWriter) WritePacket(row telemetry.PacketRow) error {
	w.once.Do(w.printOverview)

	dirColor := colorYellow
	dir := "TX"
	if row.Received {
		dirColor = colorGreen
		dir = "RX"
	}
	fmt.Fprintf(w.out, "%s[%8.2fs]%s %s%s%s node=%d uid=%d size=%d\n",
		colorGray, row.Time, colorReset,
		dirColor, dir, colorReset, row.Node, row.UID, row.Size)
	return nil
}
