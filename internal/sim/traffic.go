// Spine-sink traffic generation
package sim

import (
	"math"

	"github.com/iti/evt/evtm"
	"github.com/iti/evt/vrtime"

	"manet-sim/internal/radio"
	"manet-sim/internal/world"
)

// Traffic makes every non-spine node send fixed-size packets to its
// nearest spine sink. A send always records a packet row; a successful
// delivery records the matching receive row one serialization delay
// later. UIDs are shared between a send and its receive and increase
// monotonically across all senders.
type Traffic struct {
	reg     *world.Registry
	ch      *radio.Channel
	rec     *Recorder
	spine   []int
	size    int
	nextUID uint64
}

// delivery is the event payload carrying a packet to its sink.
type delivery struct {
	sink int
	uid  uint64
	size int
}

// NewTraffic wires the generator to the fixed spine set.
func NewTraffic(reg *world.Registry, ch *radio.Channel, rec *Recorder, spine []int, size int) *Traffic {
	return &Traffic{reg: reg, ch: ch, rec: rec, spine: spine, size: size}
}

// Tick sends one packet from every up non-spine node to its nearest
// spine sink.
func (t *Traffic) Tick(evtMgr *evtm.EventManager, now float64) {
	for _, n := range t.reg.Nodes() {
		if n.Spine || !n.Up {
			continue
		}
		t.send(evtMgr, now, n)
	}
}

func (t *Traffic) send(evtMgr *evtm.EventManager, now float64, src *world.Node) {
	sink := t.nearestSpine(src)
	if sink < 0 {
		return
	}
	uid := t.nextUID
	t.nextUID++

	t.rec.RecordPacket(now, src.ID, uid, t.size, false)
	if t.ch.Unicast(src.ID, sink) {
		d := delivery{sink: sink, uid: uid, size: t.size}
		evtMgr.Schedule(t, d, deliverPacket, vrtime.SecondsToTime(t.ch.TxDuration(t.size)))
	}
}

// deliverPacket records the receive event. The sink may have gone down
// between transmission and delivery; the frame is then lost.
func deliverPacket(evtMgr *evtm.EventManager, context any, data any) any {
	t := context.(*Traffic)
	d := data.(delivery)
	if !t.reg.Node(d.sink).Up {
		return nil
	}
	t.rec.RecordPacket(evtMgr.CurrentSeconds(), d.sink, d.uid, d.size, true)
	return nil
}

// nearestSpine picks the closest spine node by current distance, up or
// not: the spine set is fixed, and sending at a dead sink is exactly
// the failure the wipe experiment wants to observe.
func (t *Traffic) nearestSpine(src *world.Node) int {
	best, bestDist := -1, math.Inf(1)
	for _, id := range t.spine {
		if id == src.ID {
			continue
		}
		d := src.Position.DistanceTo(t.reg.Node(id).Position)
		if d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

// Sent reports how many packets have been transmitted so far.
func (t *Traffic) Sent() uint64 {
	return t.nextUID
}
