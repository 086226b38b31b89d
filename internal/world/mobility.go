package world

import (
	"fmt"
	"math"

	"github.com/iti/rngstream"
)

// RandomWalk2D moves nodes over a bounded rectangle: every step each
// node walks with its current velocity, reflecting off the area edges,
// then draws a fresh heading and speed. Each node has its own rng
// stream so trajectories are reproducible per (seed, run) regardless
// of node count changes elsewhere in the experiment.
type RandomWalk2D struct {
	reg          *Registry
	areaX, areaY float64
	minSpeed     float64
	maxSpeed     float64
	streams      []*rngstream.RngStream
}

// NewRandomWalk2D builds the mobility model; Place must be called
// before the first Step.
func NewRandomWalk2D(reg *Registry, areaX, areaY, minSpeed, maxSpeed float64) *RandomWalk2D {
	m := &RandomWalk2D{
		reg:      reg,
		areaX:    areaX,
		areaY:    areaY,
		minSpeed: minSpeed,
		maxSpeed: maxSpeed,
		streams:  make([]*rngstream.RngStream, reg.Len()),
	}
	for i := range m.streams {
		m.streams[i] = rngstream.New(fmt.Sprintf("mobility-%d", i))
	}
	return m
}

// Place scatters nodes uniformly over the area and draws their initial
// velocities.
func (m *RandomWalk2D) Place() {
	for _, n := range m.reg.Nodes() {
		rng := m.streams[n.ID]
		n.Position = Vector{
			X: rng.RandU01() * m.areaX,
			Y: rng.RandU01() * m.areaY,
		}
		n.Velocity = m.drawVelocity(rng)
	}
}

// Step advances every node by dt seconds and redraws its course. Down
// nodes keep moving: the wipe takes radios offline, not the platforms
// carrying them.
func (m *RandomWalk2D) Step(dt float64) {
	for _, n := range m.reg.Nodes() {
		n.Position.X, n.Velocity.X = reflect(n.Position.X+n.Velocity.X*dt, n.Velocity.X, m.areaX)
		n.Position.Y, n.Velocity.Y = reflect(n.Position.Y+n.Velocity.Y*dt, n.Velocity.Y, m.areaY)
		n.Velocity = m.drawVelocity(m.streams[n.ID])
	}
}

func (m *RandomWalk2D) drawVelocity(rng *rngstream.RngStream) Vector {
	heading := rng.RandU01() * 2 * math.Pi
	speed := m.minSpeed + rng.RandU01()*(m.maxSpeed-m.minSpeed)
	return Vector{X: speed * math.Cos(heading), Y: speed * math.Sin(heading)}
}

// reflect bounces a coordinate off the [0, limit] walls, flipping the
// velocity component when a wall is hit.
func reflect(pos, vel, limit float64) (float64, float64) {
	for pos < 0 || pos > limit {
		if pos < 0 {
			pos = -pos
			vel = -vel
		}
		if pos > limit {
			pos = 2*limit - pos
			vel = -vel
		}
	}
	return pos, vel
}
