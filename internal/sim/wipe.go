// Progressive-failure ("wipe") state machine
package sim

import (
	"log/slog"

	"github.com/iti/rngstream"

	"manet-sim/internal/config"
	"manet-sim/internal/world"
)

// WipeState tracks the controller's lifecycle. There is no terminal
// state: the sampler simply stops re-arming at the run's stop time.
type WipeState int

const (
	WipeIdle WipeState = iota
	WipeInitialized
	WipeAdvancing
)

// WipeDirection is the resolved sweep direction.
type WipeDirection int

const (
	WipeNorth WipeDirection = iota // boundary starts at y=0, moves up
	WipeEast                       // starts at x=0, moves right
	WipeSouth                      // starts at y=areaY, moves down
	WipeWest                       // starts at x=areaX, moves left
)

func (d WipeDirection) String() string {
	switch d {
	case WipeNorth:
		return "north"
	case WipeEast:
		return "east"
	case WipeSouth:
		return "south"
	default:
		return "west"
	}
}

// WipeController sweeps a boundary line across the area, forcing nodes
// the line has passed into the down state through the registry. A node
// taken down is never re-evaluated; interface state under the wipe is
// monotonically non-increasing.
type WipeController struct {
	reg          *world.Registry
	log          *slog.Logger
	areaX, areaY float64
	speed        float64 // boundary speed, m/s
	period       float64 // sampling period, s

	state    WipeState
	dir      WipeDirection
	random   bool
	boundary float64
	rng      *rngstream.RngStream
}

// NewWipeController parses the configured direction letter; "R" defers
// the choice to the first tick, where it is resolved exactly once for
// the whole run.
func NewWipeController(reg *world.Registry, cfg *config.Config, log *slog.Logger) *WipeController {
	w := &WipeController{
		reg:    reg,
		log:    log,
		areaX:  cfg.AreaSizeX,
		areaY:  cfg.AreaSizeY,
		speed:  cfg.WipeSpeed,
		period: cfg.SamplingFreq,
		state:  WipeIdle,
	}
	switch cfg.WipeDirection {
	case "N":
		w.dir = WipeNorth
	case "E":
		w.dir = WipeEast
	case "S":
		w.dir = WipeSouth
	case "W":
		w.dir = WipeWest
	case "R":
		w.random = true
		w.rng = rngstream.New("wipe")
	}
	return w
}

// Tick advances the state machine by one sampling period. The first
// tick only resolves the starting boundary; every later tick moves the
// boundary and takes crossed nodes offline.
func (w *WipeController) Tick(now float64) {
	switch w.state {
	case WipeIdle:
		w.initialize(now)
		w.state = WipeInitialized
	case WipeInitialized:
		w.state = WipeAdvancing
		w.advance(now)
	case WipeAdvancing:
		w.advance(now)
	}
}

func (w *WipeController) initialize(now float64) {
	if w.random {
		w.dir = WipeDirection(w.rng.RandInt(0, 3))
	}
	switch w.dir {
	case WipeNorth:
		w.boundary = 0
	case WipeEast:
		w.boundary = 0
	case WipeSouth:
		w.boundary = w.areaY
	case WipeWest:
		w.boundary = w.areaX
	}
	w.log.Info("wipe initialized", "time", now, "direction", w.dir.String(),
		"boundary", w.boundary, "speed", w.speed)
}

func (w *WipeController) advance(now float64) {
	step := w.speed * w.period
	switch w.dir {
	case WipeNorth, WipeEast:
		w.boundary += step
	case WipeSouth, WipeWest:
		w.boundary -= step
	}

	wiped := 0
	for _, n := range w.reg.Nodes() {
		if !n.Up {
			continue
		}
		if w.crossed(n.Position) {
			w.reg.SetInterfaceDown(n.ID)
			wiped++
		}
	}
	if wiped > 0 {
		w.log.Info("wipe advanced", "time", now, "boundary", w.boundary,
			"wiped", wiped, "still_up", w.reg.UpCount())
	}
}

func (w *WipeController) crossed(p world.Vector) bool {
	switch w.dir {
	case WipeNorth:
		return p.Y <= w.boundary
	case WipeEast:
		return p.X <= w.boundary
	case WipeSouth:
		return p.Y >= w.boundary
	default:
		return p.X >= w.boundary
	}
}

// State returns the controller state.
func (w *WipeController) State() WipeState { return w.state }

// Direction returns the resolved direction; meaningful once the state
// has left WipeIdle.
func (w *WipeController) Direction() WipeDirection { return w.dir }

// Boundary returns the current boundary coordinate.
func (w *WipeController) Boundary() float64 { return w.boundary }
