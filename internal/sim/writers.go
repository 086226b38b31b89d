// Writer interfaces for the three metric streams
package sim

import "manet-sim/internal/telemetry"

// MovementWriter consumes movement rows.
type MovementWriter interface {
	WriteMovement(telemetry.MovementRow) error
}

// ConnectivityWriter consumes connectivity rows.
type ConnectivityWriter interface {
	WriteConnectivity(telemetry.ConnectivityRow) error
}

// PacketWriter consumes packet rows.
type PacketWriter interface {
	WritePacket(telemetry.PacketRow) error
}

// RowWriter consumes all three streams.
type RowWriter interface {
	MovementWriter
	ConnectivityWriter
	PacketWriter
}

// Optional: writers may support batch mode per stream.
type batchMovementWriter interface {
	WriteMovements([]telemetry.MovementRow) error
}

type batchConnectivityWriter interface {
	WriteConnectivities([]telemetry.ConnectivityRow) error
}

type batchPacketWriter interface {
	WritePackets([]telemetry.PacketRow) error
}
