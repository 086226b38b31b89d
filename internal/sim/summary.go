// End-of-run aggregate statistics
package sim

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"manet-sim/internal/world"
)

// Summary aggregates a finished run's buffers into headline numbers.
type Summary struct {
	MovementSamples     int
	ConnectivitySamples int

	MeanSpeed   float64
	StdDevSpeed float64

	// LinkAvailability is the fraction of connectivity samples where the
	// node was online and had heard at least one neighbor in the window.
	LinkAvailability float64

	PacketsSent     int
	PacketsReceived int
	DeliveryRatio   float64

	NodesUp   int
	NodesDown int
}

// Summarize computes run statistics from the recorder buffers and the
// final registry state.
func Summarize(rec *Recorder, reg *world.Registry) Summary {
	s := Summary{
		MovementSamples:     len(rec.Movement()),
		ConnectivitySamples: len(rec.Connectivity()),
		NodesUp:             reg.UpCount(),
	}
	s.NodesDown = reg.Len() - s.NodesUp

	if s.MovementSamples > 0 {
		speeds := make([]float64, 0, s.MovementSamples)
		for _, m := range rec.Movement() {
			speeds = append(speeds, m.Speed)
		}
		s.MeanSpeed = stat.Mean(speeds, nil)
		s.StdDevSpeed = stat.StdDev(speeds, nil)
	}

	if s.ConnectivitySamples > 0 {
		linked := 0
		for _, c := range rec.Connectivity() {
			if c.L2Link {
				linked++
			}
		}
		s.LinkAvailability = float64(linked) / float64(s.ConnectivitySamples)
	}

	for _, p := range rec.Packets() {
		if p.Received {
			s.PacketsReceived++
		} else {
			s.PacketsSent++
		}
	}
	if s.PacketsSent > 0 {
		s.DeliveryRatio = float64(s.PacketsReceived) / float64(s.PacketsSent)
	}
	return s
}

// Log emits the summary through the structured logger.
func (s Summary) Log(log *slog.Logger) {
	log.Info("run summary",
		"movement_samples", s.MovementSamples,
		"connectivity_samples", s.ConnectivitySamples,
		"mean_speed", s.MeanSpeed,
		"stddev_speed", s.StdDevSpeed,
		"link_availability", s.LinkAvailability,
		"packets_sent", s.PacketsSent,
		"packets_received", s.PacketsReceived,
		"delivery_ratio", s.DeliveryRatio,
		"nodes_up", s.NodesUp,
		"nodes_down", s.NodesDown,
	)
}
