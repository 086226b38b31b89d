package sim

import (
	"testing"

	"manet-sim/internal/world"
)

func TestConnectivityWindowCollapsesDuplicates(t *testing.T) {
	reg := world.NewRegistry(3)
	conn := NewConnectivity(reg, NewRecorder())

	conn.ObserveFrame(0, 1)
	conn.ObserveFrame(0, 1)
	conn.ObserveFrame(0, 2)

	if got := conn.WindowSize(0); got != 2 {
		t.Errorf("window size = %d, want 2", got)
	}
}

func TestConnectivityIgnoresSelfAndDownObservers(t *testing.T) {
	reg := world.NewRegistry(3)
	conn := NewConnectivity(reg, NewRecorder())

	conn.ObserveFrame(0, 0)
	if got := conn.WindowSize(0); got != 0 {
		t.Errorf("self-hearing grew the window to %d", got)
	}

	reg.SetInterfaceDown(1)
	conn.ObserveFrame(1, 2)
	if got := conn.WindowSize(1); got != 0 {
		t.Errorf("down observer grew the window to %d", got)
	}
}

func TestConnectivityTickEmitsPerNodeAndClears(t *testing.T) {
	reg := world.NewRegistry(3)
	rec := NewRecorder()
	conn := NewConnectivity(reg, rec)

	conn.ObserveFrame(0, 1)
	conn.ObserveFrame(2, 0)
	reg.SetInterfaceDown(1)
	conn.Tick(5.0)

	rows := rec.Connectivity()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, row := range rows {
		if row.Node != i {
			t.Errorf("row %d is for node %d, want id order", i, row.Node)
		}
		if row.Time != 5.0 {
			t.Errorf("row %d has time %v", i, row.Time)
		}
	}
	if !rows[0].L2Link || !rows[0].Online {
		t.Errorf("node 0 should be linked and online: %+v", rows[0])
	}
	if rows[1].L2Link || rows[1].Online {
		t.Errorf("node 1 is down and must report no link: %+v", rows[1])
	}
	if !rows[2].L2Link {
		t.Errorf("node 2 heard a frame and should be linked: %+v", rows[2])
	}

	for i := 0; i < 3; i++ {
		if conn.WindowSize(i) != 0 {
			t.Errorf("window %d not cleared after tick", i)
		}
	}
}

func TestConnectivityEmptyWindowMeansNoLink(t *testing.T) {
	reg := world.NewRegistry(2)
	rec := NewRecorder()
	conn := NewConnectivity(reg, rec)

	conn.Tick(1.0)
	for _, row := range rec.Connectivity() {
		if row.L2Link {
			t.Errorf("node %d reported a link with an empty window", row.Node)
		}
		if !row.Online {
			t.Errorf("node %d should still be online", row.Node)
		}
	}
}
