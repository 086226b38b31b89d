package sim

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"manet-sim/internal/telemetry"
)

// GreptimeDBWriter exports flushed metric rows to GreptimeDB. Virtual
// time is anchored at the run's wall-clock start so rows from one run
// share a real time index; every row carries the run id as a tag.
// Tables are auto-created on first write.
type GreptimeDBWriter struct {
	client *greptime.Client
	run    telemetry.RunInfo
	base   time.Time
}

// NewGreptimeDBWriter connects to a GreptimeDB host (gRPC, default
// port) and targets the given database.
func NewGreptimeDBWriter(host, database string, run telemetry.RunInfo) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(host).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return &GreptimeDBWriter{
		client: client,
		run:    run,
		base:   time.Now().UTC(),
	}, nil
}

func (w *GreptimeDBWriter) ts(simTime float64) time.Time {
	return w.base.Add(time.Duration(simTime * float64(time.Second)))
}

// movementTable builds the insert batch for the movement stream.
func (w *GreptimeDBWriter) movementTable(rows []telemetry.MovementRow) (*table.Table, error) {
	tbl, err := table.New("manet_movement")
	if err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("node", types.STRING); err != nil {
		return nil, err
	}
	for _, col := range []string{"x", "y", "z", "speed"} {
		if err := tbl.AddFieldColumn(col, types.FLOAT64); err != nil {
			return nil, err
		}
	}
	if err := tbl.AddFieldColumn("spine", types.BOOLEAN); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("sim_time", types.FLOAT64); err != nil {
		return nil, err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	for _, r := range rows {
		err := tbl.AddRow(w.run.RunID, r.NodeLabel(),
			r.X, r.Y, r.Z, r.Speed, r.Spine, r.Time, w.ts(r.Time))
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// connectivityTable builds the insert batch for the connectivity stream.
func (w *GreptimeDBWriter) connectivityTable(rows []telemetry.ConnectivityRow) (*table.Table, error) {
	tbl, err := table.New("manet_connectivity")
	if err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("node", types.STRING); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("l2_link", types.BOOLEAN); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("online", types.BOOLEAN); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("sim_time", types.FLOAT64); err != nil {
		return nil, err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	for _, r := range rows {
		err := tbl.AddRow(w.run.RunID, strconv.Itoa(r.Node),
			r.L2Link, r.Online, r.Time, w.ts(r.Time))
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// packetTable builds the insert batch for the packet stream.
func (w *GreptimeDBWriter) packetTable(rows []telemetry.PacketRow) (*table.Table, error) {
	tbl, err := table.New("manet_packets")
	if err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("node", types.STRING); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("uid", types.INT64); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("size", types.INT64); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("received", types.BOOLEAN); err != nil {
		return nil, err
	}
	if err := tbl.AddFieldColumn("sim_time", types.FLOAT64); err != nil {
		return nil, err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	for _, r := range rows {
		err := tbl.AddRow(w.run.RunID, strconv.Itoa(r.Node),
			int64(r.UID), int64(r.Size), r.Received, r.Time, w.ts(r.Time))
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// WriteMovement inserts a single movement row.
func (w *GreptimeDBWriter) WriteMovement(row telemetry.MovementRow) error {
	return w.WriteMovements([]telemetry.MovementRow{row})
}

// WriteMovements inserts a batch of movement rows.
func (w *GreptimeDBWriter) WriteMovements(rows []telemetry.MovementRow) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := w.movementTable(rows)
	if err != nil {
		return err
	}
	return w.write(tbl, len(rows))
}

// WriteConnectivity inserts a single connectivity row.
func (w *GreptimeDBWriter) WriteConnectivity(row telemetry.ConnectivityRow) error {
	return w.WriteConnectivities([]telemetry.ConnectivityRow{row})
}

// WriteConnectivities inserts a batch of connectivity rows.
func (w *GreptimeDBWriter) WriteConnectivities(rows []telemetry.ConnectivityRow) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := w.connectivityTable(rows)
	if err != nil {
		return err
	}
	return w.write(tbl, len(rows))
}

// WritePacket inserts a single packet row.
func (w *GreptimeDBWriter) WritePacket(row telemetry.PacketRow) error {
	return w.WritePackets([]telemetry.PacketRow{row})
}

// WritePackets inserts a batch of packet rows.
func (w *GreptimeDBWriter) WritePackets(rows []telemetry.PacketRow) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := w.packetTable(rows)
	if err != nil {
		return err
	}
	return w.write(tbl, len(rows))
}

func (w *GreptimeDBWriter) write(tbl *table.Table, n int) error {
	resp, err := w.client.Write(context.Background(), tbl)
	if err != nil {
		slog.Error("greptime write failed", "err", err)
		return err
	}
	slog.Debug("greptime rows written",
		"rows", n, "affected", resp.GetAffectedRows().GetValue())
	return nil
}
