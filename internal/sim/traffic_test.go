package sim

import (
	"testing"

	"github.com/iti/evt/evtm"

	"manet-sim/internal/config"
	"manet-sim/internal/engine"
	"manet-sim/internal/radio"
	"manet-sim/internal/world"
)

func trafficFixture(t *testing.T, positions []world.Vector, spine []int) (*world.Registry, *Traffic, *Recorder) {
	t.Helper()
	reg := world.NewRegistry(len(positions))
	placeAt(reg, positions)
	for _, id := range spine {
		reg.Node(id).Spine = true
	}
	cfg := config.Default()
	cfg.AreaSizeX, cfg.AreaSizeY = 10, 10
	ch := radio.NewChannel(reg, cfg)
	rec := NewRecorder()
	return reg, NewTraffic(reg, ch, rec, spine, cfg.PacketsSize), rec
}

// runTraffic fires the generator once at t=1 and drains the queue.
func runTraffic(tr *Traffic) {
	evtMgr := evtm.New()
	s := engine.NewSampler("traffic", 1, 1.5, tr.Tick)
	s.Start(evtMgr, 1)
	evtMgr.Run(5)
}

func TestTrafficSendsFromEveryUpNonSpineNode(t *testing.T) {
	_, tr, rec := trafficFixture(t, []world.Vector{
		{X: 1, Y: 5}, {X: 5, Y: 5}, {X: 9, Y: 5},
	}, []int{1})

	runTraffic(tr)

	sends, receives := 0, 0
	for _, p := range rec.Packets() {
		if p.Received {
			receives++
		} else {
			sends++
		}
	}
	if sends != 2 {
		t.Errorf("sends = %d, want 2", sends)
	}
	if receives != 2 {
		t.Errorf("receives = %d, want 2", receives)
	}
	if tr.Sent() != 2 {
		t.Errorf("Sent() = %d, want 2", tr.Sent())
	}
}

func TestTrafficReceivesLandAtNearestSpine(t *testing.T) {
	// Spines at x=0 and x=10; the sender at x=2 is nearer to spine 0.
	_, tr, rec := trafficFixture(t, []world.Vector{
		{X: 0, Y: 5}, {X: 2, Y: 5}, {X: 10, Y: 5},
	}, []int{0, 2})

	runTraffic(tr)

	for _, p := range rec.Packets() {
		if p.Received && p.Node != 0 {
			t.Errorf("packet %d delivered to node %d, want nearest spine 0", p.UID, p.Node)
		}
	}
}

func TestTrafficDownSenderStaysSilent(t *testing.T) {
	reg, tr, rec := trafficFixture(t, []world.Vector{
		{X: 1, Y: 5}, {X: 5, Y: 5}, {X: 9, Y: 5},
	}, []int{1})
	reg.SetInterfaceDown(0)

	runTraffic(tr)

	for _, p := range rec.Packets() {
		if p.Node == 0 {
			t.Errorf("down node 0 produced a packet row: %+v", p)
		}
	}
}

func TestTrafficDeadSinkRecordsSendWithoutReceive(t *testing.T) {
	reg, tr, rec := trafficFixture(t, []world.Vector{
		{X: 1, Y: 5}, {X: 5, Y: 5},
	}, []int{1})
	reg.SetInterfaceDown(1)

	runTraffic(tr)

	sends, receives := 0, 0
	for _, p := range rec.Packets() {
		if p.Received {
			receives++
		} else {
			sends++
		}
	}
	if sends != 1 || receives != 0 {
		t.Errorf("sends=%d receives=%d, want 1 send and 0 receives", sends, receives)
	}
}

func TestTrafficUIDsIncreaseMonotonically(t *testing.T) {
	_, tr, rec := trafficFixture(t, []world.Vector{
		{X: 1, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 9, Y: 5},
	}, []int{1})

	runTraffic(tr)

	var lastUID uint64
	first := true
	for _, p := range rec.Packets() {
		if p.Received {
			continue
		}
		if !first && p.UID <= lastUID {
			t.Errorf("send uid %d not above previous %d", p.UID, lastUID)
		}
		lastUID, first = p.UID, false
	}
}
