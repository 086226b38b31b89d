package sim

import "manet-sim/internal/telemetry"

// MultiWriter fans metric rows out to multiple writers.
type MultiWriter struct {
	writers []RowWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...RowWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WriteMovement sends a movement row to all writers.
func (mw *MultiWriter) WriteMovement(row telemetry.MovementRow) error {
	for _, w := range mw.writers {
		if err := w.WriteMovement(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteMovements sends a movement batch to all writers, using batch
// mode where supported.
func (mw *MultiWriter) WriteMovements(rows []telemetry.MovementRow) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchMovementWriter); ok {
			if err := bw.WriteMovements(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.WriteMovement(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteConnectivity sends a connectivity row to all writers.
func (mw *MultiWriter) WriteConnectivity(row telemetry.ConnectivityRow) error {
	for _, w := range mw.writers {
		if err := w.WriteConnectivity(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteConnectivities sends a connectivity batch to all writers, using
// batch mode where supported.
func (mw *MultiWriter) WriteConnectivities(rows []telemetry.ConnectivityRow) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchConnectivityWriter); ok {
			if err := bw.WriteConnectivities(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.WriteConnectivity(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WritePacket sends a packet row to all writers.
func (mw *MultiWriter) WritePacket(row telemetry.PacketRow) error {
	for _, w := range mw.writers {
		if err := w.WritePacket(row); err != nil {
			return err
		}
	}
	return nil
}

// WritePackets sends a packet batch to all writers, using batch mode
// where supported.
func (mw *MultiWriter) WritePackets(rows []telemetry.PacketRow) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchPacketWriter); ok {
			if err := bw.WritePackets(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.WritePacket(r); err != nil {
				return err
			}
		}
	}
	return nil
}
