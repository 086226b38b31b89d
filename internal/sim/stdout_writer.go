// Writer implementation printing metric rows to STDOUT
package sim

import (
	"encoding/json"
	"fmt"

	"manet-sim/internal/telemetry"
)

// StdoutWriter prints metric rows to STDOUT as JSON lines.
type StdoutWriter struct{}

// WriteMovement outputs a single movement row.
func (w *StdoutWriter) WriteMovement(row telemetry.MovementRow) error {
	data, _ := json.Marshal(row)
	fmt.Println(string(data))
	return nil
}

// WriteConnectivity outputs a single connectivity row.
func (w *StdoutWriter) WriteConnectivity(row telemetry.ConnectivityRow) error {
	data, _ := json.Marshal(row)
	fmt.Println(string(data))
	return nil
}

// WritePacket outputs a single packet row.
func (w *StdoutWriter) WritePacket(row telemetry.PacketRow) error {
	data, _ := json.Marshal(row)
	fmt.Println(string(data))
	return nil
}
