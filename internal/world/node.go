// Node registry and geometry primitives
package world

import "math"

// Vector is a position or velocity in area coordinates (meters).
type Vector struct {
	X, Y, Z float64
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vector) DistanceTo(o Vector) float64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Node is one simulated station. Position and Velocity are owned by
// the mobility model; Up is owned by the registry; Spine is fixed once
// selection has run.
type Node struct {
	ID       int
	Position Vector
	Velocity Vector
	Up       bool
	Spine    bool
}

// Registry owns every node for the run and acts as the node lifecycle
// collaborator: interface state changes go through it.
type Registry struct {
	nodes []*Node
}

// NewRegistry creates count nodes, all up, in creation order.
func NewRegistry(count int) *Registry {
	r := &Registry{nodes: make([]*Node, count)}
	for i := range r.nodes {
		r.nodes[i] = &Node{ID: i, Up: true}
	}
	return r
}

// Nodes returns all nodes in creation order.
func (r *Registry) Nodes() []*Node {
	return r.nodes
}

// Node returns the node with the given id.
func (r *Registry) Node(id int) *Node {
	return r.nodes[id]
}

// Len returns the node count.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// SetInterfaceDown takes a node's radio offline. Idempotent.
func (r *Registry) SetInterfaceDown(id int) {
	r.nodes[id].Up = false
}

// SetInterfaceUp brings a node's radio online. Idempotent.
func (r *Registry) SetInterfaceUp(id int) {
	r.nodes[id].Up = true
}

// UpCount returns how many nodes are currently online.
func (r *Registry) UpCount() int {
	n := 0
	for _, nd := range r.nodes {
		if nd.Up {
			n++
		}
	}
	return n
}
