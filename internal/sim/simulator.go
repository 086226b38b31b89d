// Simulator orchestrating the experiment over the virtual clock
package sim

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/iti/evt/evtm"
	"github.com/iti/rngstream"

	"manet-sim/internal/config"
	"manet-sim/internal/engine"
	"manet-sim/internal/radio"
	"manet-sim/internal/telemetry"
	"manet-sim/internal/world"
)

// helloPeriod is the beacon interval every up node broadcasts at. The
// connectivity window is fed by these beacons, so the sampling period
// must not be shorter than this or windows can come up empty on a
// healthy network.
const helloPeriod = 1.0

// mobilityStep is the virtual time between mobility updates.
const mobilityStep = 1.0

// Simulator wires the world, radio, and experiment collaborators
// together and runs them over one virtual-time event queue. All state
// mutation happens inside event handlers, which the queue serializes,
// so none of the collaborators lock.
type Simulator struct {
	cfg *config.Config
	log *slog.Logger
	run telemetry.RunInfo

	reg      *world.Registry
	mobility *world.RandomWalk2D
	channel  *radio.Channel
	rec      *Recorder
	conn     *Connectivity
	spine    []int
	traffic  *Traffic
	wipe     *WipeController

	evtMgr   *evtm.EventManager
	samplers []*engine.Sampler
}

// NewSimulator builds every collaborator from the validated config.
// Stream allocation order is fixed: mobility streams first (one per
// node), then the wipe stream, then rngRun-1 runs' worth of already
// consumed slots are burned up front so each run index draws from its
// own region of the generator sequence.
func NewSimulator(cfg *config.Config, log *slog.Logger) *Simulator {
	rngstream.SetRngStreamMasterSeed(cfg.RngSeed)
	for i := 1; i < cfg.RngRun; i++ {
		for j := 0; j < cfg.NodesNum+1; j++ {
			rngstream.New(fmt.Sprintf("run-%d-slot-%d", i, j))
		}
	}

	s := &Simulator{
		cfg: cfg,
		log: log,
		run: telemetry.RunInfo{
			RunID: uuid.NewString(),
			Seed:  cfg.RngSeed,
			Run:   cfg.RngRun,
		},
		rec: NewRecorder(),
	}

	s.reg = world.NewRegistry(cfg.NodesNum)
	s.mobility = world.NewRandomWalk2D(s.reg, cfg.AreaSizeX, cfg.AreaSizeY, cfg.MinSpeed, cfg.MaxSpeed)
	s.mobility.Place()

	s.channel = radio.NewChannel(s.reg, cfg)
	s.conn = NewConnectivity(s.reg, s.rec)
	s.channel.SetFrameCallback(s.conn.ObserveFrame)

	s.spine = SelectSpine(s.reg, cfg.SpineNodesPercent, config.SpineVariant(cfg.SpineVariant),
		cfg.AreaSizeX, cfg.AreaSizeY)
	s.traffic = NewTraffic(s.reg, s.channel, s.rec, s.spine, cfg.PacketsSize)

	if config.Scenario(cfg.Scenario) == config.ScenarioWipe {
		s.wipe = NewWipeController(s.reg, cfg, log)
	}

	log.Info("experiment prepared",
		"run_id", s.run.RunID,
		"seed", cfg.RngSeed,
		"run", cfg.RngRun,
		"nodes", cfg.NodesNum,
		"spine", s.spine,
		"radio_range_m", s.channel.RangeM,
		"scenario", cfg.Scenario,
	)
	return s
}

// RunInfo identifies this run for exporters.
func (s *Simulator) RunInfo() telemetry.RunInfo { return s.run }

// Registry exposes the node registry, mainly for post-run summaries.
func (s *Simulator) Registry() *world.Registry { return s.reg }

// Recorder exposes the metric buffers.
func (s *Simulator) Recorder() *Recorder { return s.rec }

// Spine returns the selected spine ids in rank order.
func (s *Simulator) Spine() []int { return s.spine }

// Run executes the whole experiment: warmup, measured phase, and stop,
// entirely in virtual time. It returns after the event queue drains at
// the configured total time.
func (s *Simulator) Run() {
	s.evtMgr = evtm.New()
	stop := s.cfg.TotalTime()
	freq := s.cfg.SamplingFreq

	s.arm("mobility", mobilityStep, stop, mobilityStep, func(_ *evtm.EventManager, now float64) {
		s.mobility.Step(mobilityStep)
	})
	s.arm("hello", helloPeriod, stop, helloPeriod, func(_ *evtm.EventManager, now float64) {
		for _, n := range s.reg.Nodes() {
			s.channel.Broadcast(n.ID)
		}
	})

	// Measurement samplers start one period after the warmup so the
	// first sample reflects a full window.
	first := s.cfg.WarmupTime + freq
	s.arm("movement", freq, stop, first, func(_ *evtm.EventManager, now float64) {
		for _, n := range s.reg.Nodes() {
			s.rec.RecordMovement(now, n.ID, n.Spine,
				n.Position.X, n.Position.Y, n.Position.Z, n.Velocity.Length())
		}
	})
	s.arm("connectivity", freq, stop, first, func(_ *evtm.EventManager, now float64) {
		s.conn.Tick(now)
	})
	if s.wipe != nil {
		s.arm("wipe", freq, stop, first, func(_ *evtm.EventManager, now float64) {
			s.wipe.Tick(now)
		})
	}
	if s.cfg.PacketsPerSecond > 0 {
		pktPeriod := 1 / s.cfg.PacketsPerSecond
		s.arm("traffic", pktPeriod, stop, s.cfg.WarmupTime+pktPeriod, s.traffic.Tick)
	}

	s.log.Info("run starting", "total_time", stop, "warmup", s.cfg.WarmupTime)
	s.evtMgr.Run(stop)
	s.log.Info("run finished", "virtual_time", s.evtMgr.CurrentSeconds())
}

func (s *Simulator) arm(name string, period, stop, offset float64, fn engine.TickFunc) {
	sampler := engine.NewSampler(name, period, stop, fn)
	sampler.Start(s.evtMgr, offset)
	s.samplers = append(s.samplers, sampler)
}

// Flush writes the recorded metrics through the writer exactly once.
func (s *Simulator) Flush(w RowWriter) error {
	return s.rec.Flush(w)
}

// Summarize computes the run's aggregate statistics.
func (s *Simulator) Summarize() Summary {
	return Summarize(s.rec, s.reg)
}
