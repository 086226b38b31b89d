package sim

import "manet-sim/internal/telemetry"

// mockWriter captures rows in memory for assertions.
type mockWriter struct {
	movement     []telemetry.MovementRow
	connectivity []telemetry.ConnectivityRow
	packets      []telemetry.PacketRow
	failWrites   bool
}

type mockErr struct{}

func (mockErr) Error() string { return "mock write failure" }

func (m *mockWriter) WriteMovement(row telemetry.MovementRow) error {
	if m.failWrites {
		return mockErr{}
	}
	m.movement = append(m.movement, row)
	return nil
}

func (m *mockWriter) WriteConnectivity(row telemetry.ConnectivityRow) error {
	if m.failWrites {
		return mockErr{}
	}
	m.connectivity = append(m.connectivity, row)
	return nil
}

func (m *mockWriter) WritePacket(row telemetry.PacketRow) error {
	if m.failWrites {
		return mockErr{}
	}
	m.packets = append(m.packets, row)
	return nil
}

// mockBatchWriter additionally implements the batch interfaces and
// counts how often batch mode was used.
type mockBatchWriter struct {
	mockWriter
	batchCalls int
}

func (m *mockBatchWriter) WriteMovements(rows []telemetry.MovementRow) error {
	m.batchCalls++
	m.movement = append(m.movement, rows...)
	return nil
}

func (m *mockBatchWriter) WriteConnectivities(rows []telemetry.ConnectivityRow) error {
	m.batchCalls++
	m.connectivity = append(m.connectivity, rows...)
	return nil
}

func (m *mockBatchWriter) WritePackets(rows []telemetry.PacketRow) error {
	m.batchCalls++
	m.packets = append(m.packets, rows...)
	return nil
}
