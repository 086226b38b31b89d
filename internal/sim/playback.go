// Loading recorded movement traces for replay
package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"manet-sim/internal/telemetry"
)

// Frame holds every node's sampled position at one instant.
type Frame struct {
	Time  float64
	Nodes []telemetry.MovementRow
}

// LoadMovement parses a movement trace from r into time-ordered frames.
func LoadMovement(r io.Reader) ([]Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse movement trace: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("movement trace is empty")
	}

	byTime := make(map[float64][]telemetry.MovementRow)
	for i, rec := range records[1:] {
		row, err := parseMovementRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("movement trace line %d: %w", i+2, err)
		}
		byTime[row.Time] = append(byTime[row.Time], row)
	}

	frames := make([]Frame, 0, len(byTime))
	for ts, rows := range byTime {
		sort.Slice(rows, func(a, b int) bool { return rows[a].Node < rows[b].Node })
		frames = append(frames, Frame{Time: ts, Nodes: rows})
	}
	sort.Slice(frames, func(a, b int) bool { return frames[a].Time < frames[b].Time })
	return frames, nil
}

// LoadMovementFile opens a movement.csv and parses it into frames.
func LoadMovementFile(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadMovement(f)
}

func parseMovementRecord(rec []string) (telemetry.MovementRow, error) {
	if len(rec) != 7 {
		return telemetry.MovementRow{}, fmt.Errorf("expected 7 fields, got %d", len(rec))
	}
	id, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return telemetry.MovementRow{}, fmt.Errorf("id: %w", err)
	}
	ts, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return telemetry.MovementRow{}, fmt.Errorf("time: %w", err)
	}
	node, spine, err := telemetry.ParseNodeLabel(rec[2])
	if err != nil {
		return telemetry.MovementRow{}, err
	}
	var coords [4]float64
	for i, field := range []string{"x", "y", "z", "speed"} {
		v, err := strconv.ParseFloat(rec[3+i], 64)
		if err != nil {
			return telemetry.MovementRow{}, fmt.Errorf("%s: %w", field, err)
		}
		coords[i] = v
	}
	return telemetry.MovementRow{
		ID:    id,
		Time:  ts,
		Node:  node,
		Spine: spine,
		X:     coords[0],
		Y:     coords[1],
		Z:     coords[2],
		Speed: coords[3],
	}, nil
}
