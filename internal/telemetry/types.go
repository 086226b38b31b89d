// Metric row types for the three output streams
package telemetry

// MovementRow is one sampled node position. IDs are contiguous from 0
// within the movement stream.
type MovementRow struct {
	ID    int64   `json:"id"`
	Time  float64 `json:"time"`
	Node  int     `json:"node"`
	Spine bool    `json:"spine"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Speed float64 `json:"speed"`
}

// ConnectivityRow is one windowed link-state sample. L2Link reports
// whether the node overheard at least one frame in the closed window;
// Online mirrors the interface state at sampling time.
type ConnectivityRow struct {
	ID     int64   `json:"id"`
	Time   float64 `json:"time"`
	Node   int     `json:"node"`
	L2Link bool    `json:"l2_link"`
	Online bool    `json:"online"`
}

// PacketRow is one transmit or receive event. A send and its matching
// receive share the same UID; Received is false for the send row.
type PacketRow struct {
	ID       int64   `json:"id"`
	Time     float64 `json:"time"`
	Node     int     `json:"node"`
	UID      uint64  `json:"uid"`
	Size     int     `json:"size"`
	Received bool    `json:"received"`
}

// RunInfo identifies one experiment run on exported rows.
type RunInfo struct {
	RunID string `json:"run_id"`
	Seed  uint64 `json:"seed"`
	Run   int    `json:"run"`
}
