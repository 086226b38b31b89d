package sim

import "testing"

func TestRecorderIDsAreContiguousPerStream(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMovement(1, 0, false, 1, 2, 0, 3)
	rec.RecordConnectivity(1, 0, true, true)
	rec.RecordMovement(2, 1, true, 4, 5, 0, 6)
	rec.RecordPacket(2, 1, 0, 512, false)
	rec.RecordConnectivity(2, 1, false, true)
	rec.RecordMovement(3, 0, false, 7, 8, 0, 9)

	for i, row := range rec.Movement() {
		if row.ID != int64(i) {
			t.Errorf("movement row %d has id %d", i, row.ID)
		}
	}
	for i, row := range rec.Connectivity() {
		if row.ID != int64(i) {
			t.Errorf("connectivity row %d has id %d", i, row.ID)
		}
	}
	for i, row := range rec.Packets() {
		if row.ID != int64(i) {
			t.Errorf("packet row %d has id %d", i, row.ID)
		}
	}
}

func TestRecorderFlushWritesAllRows(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMovement(1, 0, false, 1, 2, 0, 3)
	rec.RecordMovement(2, 1, false, 4, 5, 0, 6)
	rec.RecordConnectivity(1, 0, true, true)
	rec.RecordPacket(1, 0, 42, 512, false)

	w := &mockWriter{}
	if err := rec.Flush(w); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if len(w.movement) != 2 || len(w.connectivity) != 1 || len(w.packets) != 1 {
		t.Errorf("unexpected row counts: %d movement, %d connectivity, %d packets",
			len(w.movement), len(w.connectivity), len(w.packets))
	}
}

func TestRecorderFlushIsExactlyOnce(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMovement(1, 0, false, 0, 0, 0, 0)

	w := &mockWriter{}
	if err := rec.Flush(w); err != nil {
		t.Fatalf("first flush failed: %v", err)
	}
	if err := rec.Flush(w); err == nil {
		t.Fatal("second flush should fail")
	}
	if len(w.movement) != 1 {
		t.Errorf("second flush duplicated rows: %d", len(w.movement))
	}
}

func TestRecorderFlushUsesBatchMode(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMovement(1, 0, false, 0, 0, 0, 0)
	rec.RecordConnectivity(1, 0, true, true)
	rec.RecordPacket(1, 0, 0, 512, false)

	w := &mockBatchWriter{}
	if err := rec.Flush(w); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if w.batchCalls != 3 {
		t.Errorf("expected 3 batch calls, got %d", w.batchCalls)
	}
}
