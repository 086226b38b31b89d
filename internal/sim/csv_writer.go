// CSV writer producing the canonical result files
package sim

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"manet-sim/internal/telemetry"
)

// Result file names, fixed by the downstream analysis scripts.
const (
	MovementFile     = "movement.csv"
	ConnectivityFile = "connectivity.csv"
	PacketsFile      = "packets.csv"
)

// CSVWriter writes the three result files under a results directory.
// Files are created lazily on the first row of each stream so an
// experiment with no packet traffic still gets a header-only
// packets.csv from the batch flush.
type CSVWriter struct {
	dir   string
	files map[string]*os.File
	csvs  map[string]*csv.Writer
}

// NewCSVWriter creates the results directory if needed.
func NewCSVWriter(dir string) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare results dir: %w", err)
	}
	return &CSVWriter{
		dir:   dir,
		files: make(map[string]*os.File),
		csvs:  make(map[string]*csv.Writer),
	}, nil
}

func (w *CSVWriter) stream(name string, header []string) (*csv.Writer, error) {
	if cw, ok := w.csvs[name]; ok {
		return cw, nil
	}
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return nil, err
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.files[name] = f
	w.csvs[name] = cw
	return cw, nil
}

// WriteMovement appends one movement row.
func (w *CSVWriter) WriteMovement(row telemetry.MovementRow) error {
	cw, err := w.stream(MovementFile, []string{"id", "time", "node", "x", "y", "z", "speed"})
	if err != nil {
		return err
	}
	return cw.Write([]string{
		strconv.FormatInt(row.ID, 10),
		formatFloat(row.Time),
		row.NodeLabel(),
		formatFloat(row.X),
		formatFloat(row.Y),
		formatFloat(row.Z),
		formatFloat(row.Speed),
	})
}

// WriteMovements appends a batch, creating the file even when empty.
func (w *CSVWriter) WriteMovements(rows []telemetry.MovementRow) error {
	if _, err := w.stream(MovementFile, []string{"id", "time", "node", "x", "y", "z", "speed"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.WriteMovement(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteConnectivity appends one connectivity row.
func (w *CSVWriter) WriteConnectivity(row telemetry.ConnectivityRow) error {
	cw, err := w.stream(ConnectivityFile, []string{"id", "time", "node", "l2_link", "online"})
	if err != nil {
		return err
	}
	return cw.Write([]string{
		strconv.FormatInt(row.ID, 10),
		formatFloat(row.Time),
		strconv.Itoa(row.Node),
		formatBool(row.L2Link),
		formatBool(row.Online),
	})
}

// WriteConnectivities appends a batch, creating the file even when empty.
func (w *CSVWriter) WriteConnectivities(rows []telemetry.ConnectivityRow) error {
	if _, err := w.stream(ConnectivityFile, []string{"id", "time", "node", "l2_link", "online"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.WriteConnectivity(r); err != nil {
			return err
		}
	}
	return nil
}

// WritePacket appends one packet row.
func (w *CSVWriter) WritePacket(row telemetry.PacketRow) error {
	cw, err := w.stream(PacketsFile, []string{"id", "time", "node", "uid", "size", "received"})
	if err != nil {
		return err
	}
	return cw.Write([]string{
		strconv.FormatInt(row.ID, 10),
		formatFloat(row.Time),
		strconv.Itoa(row.Node),
		strconv.FormatUint(row.UID, 10),
		strconv.Itoa(row.Size),
		formatBool(row.Received),
	})
}

// WritePackets appends a batch, creating the file even when empty.
func (w *CSVWriter) WritePackets(rows []telemetry.PacketRow) error {
	if _, err := w.stream(PacketsFile, []string{"id", "time", "node", "uid", "size", "received"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.WritePacket(r); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes every open file.
func (w *CSVWriter) Close() error {
	var err error
	for name, cw := range w.csvs {
		cw.Flush()
		if e := cw.Error(); e != nil && err == nil {
			err = e
		}
		if e := w.files[name].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
