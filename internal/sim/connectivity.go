// Windowed single-hop connectivity aggregation
package sim

import "manet-sim/internal/world"

// Connectivity turns raw frame-overheard notifications into per-node
// windowed link state. A node's window holds the distinct senders it
// overheard since the previous sampling tick; the tick reads the
// window into one connectivity row and clears it.
//
// This is deliberately a single-hop "heard anything" proxy, not
// multi-hop reachability.
type Connectivity struct {
	reg     *world.Registry
	rec     *Recorder
	windows []map[int]struct{}
	ticks   int
}

// NewConnectivity builds the aggregator with one empty window per node.
func NewConnectivity(reg *world.Registry, rec *Recorder) *Connectivity {
	c := &Connectivity{
		reg:     reg,
		rec:     rec,
		windows: make([]map[int]struct{}, reg.Len()),
	}
	for i := range c.windows {
		c.windows[i] = make(map[int]struct{})
	}
	return c
}

// ObserveFrame records that observer overheard a frame from sender.
// Duplicate senders collapse; a frame from the observer itself is
// ignored; down observers accumulate nothing.
func (c *Connectivity) ObserveFrame(observer, sender int) {
	if observer == sender {
		return
	}
	if !c.reg.Node(observer).Up {
		return
	}
	c.windows[observer][sender] = struct{}{}
}

// Tick emits one connectivity row per node in id order and clears
// every window. After Tick returns all windows are empty.
func (c *Connectivity) Tick(now float64) {
	for _, n := range c.reg.Nodes() {
		up := n.Up
		link := up && len(c.windows[n.ID]) > 0
		c.rec.RecordConnectivity(now, n.ID, link, up)
		clear(c.windows[n.ID])
	}
	c.ticks++
}

// WindowSize reports how many distinct senders a node has overheard in
// the current window.
func (c *Connectivity) WindowSize(node int) int {
	return len(c.windows[node])
}

// Ticks reports how many sampling ticks have fired.
func (c *Connectivity) Ticks() int {
	return c.ticks
}
