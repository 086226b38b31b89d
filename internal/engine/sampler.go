// Periodic sampling over the virtual-time event queue
package engine

import (
	"github.com/iti/evt/evtm"
	"github.com/iti/evt/vrtime"
)

// TickFunc is invoked once per sampling tick with the current virtual
// time in seconds.
type TickFunc func(evtMgr *evtm.EventManager, now float64)

// Sampler drives a handler at a fixed period over virtual time. Each
// completed fire schedules exactly one follow-up while the next fire
// time is still before StopAt; a fire never schedules more than one.
// Execution is serialized by the event queue, so no two fires of the
// same sampler overlap.
type Sampler struct {
	Name   string
	Period float64 // seconds between fires
	StopAt float64 // virtual time after which no fire is scheduled

	fn    TickFunc
	fires int
}

// NewSampler builds a sampler; Start must be called to arm it.
func NewSampler(name string, period, stopAt float64, fn TickFunc) *Sampler {
	return &Sampler{Name: name, Period: period, StopAt: stopAt, fn: fn}
}

// Start arms the first fire at the given offset from the current
// virtual time.
func (s *Sampler) Start(evtMgr *evtm.EventManager, offset float64) {
	evtMgr.Schedule(s, nil, sampleEvent, vrtime.SecondsToTime(offset))
}

// Fires reports how many times the sampler has fired.
func (s *Sampler) Fires() int {
	return s.fires
}

// sampleEvent runs one tick and re-arms the sampler. The re-arm happens
// after the handler returns, so a panicking handler terminates the
// stream rather than leaving a stray event behind.
func sampleEvent(evtMgr *evtm.EventManager, context any, data any) any {
	s := context.(*Sampler)
	now := evtMgr.CurrentSeconds()

	s.fn(evtMgr, now)
	s.fires++

	if now+s.Period < s.StopAt {
		evtMgr.Schedule(s, nil, sampleEvent, vrtime.SecondsToTime(s.Period))
	}
	return nil
}
