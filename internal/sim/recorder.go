// Append-only metric buffers flushed once at teardown
package sim

import (
	"fmt"

	"manet-sim/internal/telemetry"
)

// Recorder owns the three append-only row buffers. Each stream has its
// own id counter starting at 0; rows are appended in event order and
// never reordered. Nothing touches disk until Flush, which runs
// exactly once after the clock has stopped.
type Recorder struct {
	movement     []telemetry.MovementRow
	connectivity []telemetry.ConnectivityRow
	packets      []telemetry.PacketRow
	flushed      bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordMovement appends one sampled position.
func (r *Recorder) RecordMovement(now float64, node int, spine bool, x, y, z, speed float64) {
	r.movement = append(r.movement, telemetry.MovementRow{
		ID:    int64(len(r.movement)),
		Time:  now,
		Node:  node,
		Spine: spine,
		X:     x,
		Y:     y,
		Z:     z,
		Speed: speed,
	})
}

// RecordConnectivity appends one windowed link-state sample.
func (r *Recorder) RecordConnectivity(now float64, node int, l2Link, online bool) {
	r.connectivity = append(r.connectivity, telemetry.ConnectivityRow{
		ID:     int64(len(r.connectivity)),
		Time:   now,
		Node:   node,
		L2Link: l2Link,
		Online: online,
	})
}

// RecordPacket appends one transmit or receive event.
func (r *Recorder) RecordPacket(now float64, node int, uid uint64, size int, received bool) {
	r.packets = append(r.packets, telemetry.PacketRow{
		ID:       int64(len(r.packets)),
		Time:     now,
		Node:     node,
		UID:      uid,
		Size:     size,
		Received: received,
	})
}

// Movement returns the movement buffer.
func (r *Recorder) Movement() []telemetry.MovementRow { return r.movement }

// Connectivity returns the connectivity buffer.
func (r *Recorder) Connectivity() []telemetry.ConnectivityRow { return r.connectivity }

// Packets returns the packet buffer.
func (r *Recorder) Packets() []telemetry.PacketRow { return r.packets }

// Flush writes every buffer to w, batch-wise when the writer supports
// it. A second call is an error: partial durability is not promised
// and incremental flushing would break the exactly-once contract.
func (r *Recorder) Flush(w RowWriter) error {
	if r.flushed {
		return fmt.Errorf("recorder already flushed")
	}
	r.flushed = true

	if bw, ok := w.(batchMovementWriter); ok {
		if err := bw.WriteMovements(r.movement); err != nil {
			return err
		}
	} else {
		for _, row := range r.movement {
			if err := w.WriteMovement(row); err != nil {
				return err
			}
		}
	}

	if bw, ok := w.(batchConnectivityWriter); ok {
		if err := bw.WriteConnectivities(r.connectivity); err != nil {
			return err
		}
	} else {
		for _, row := range r.connectivity {
			if err := w.WriteConnectivity(row); err != nil {
				return err
			}
		}
	}

	if bw, ok := w.(batchPacketWriter); ok {
		if err := bw.WritePackets(r.packets); err != nil {
			return err
		}
	} else {
		for _, row := range r.packets {
			if err := w.WritePacket(row); err != nil {
				return err
			}
		}
	}
	return nil
}
