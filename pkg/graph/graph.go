// Package graph holds the mutable state of a force-directed layout:
// the node set (position, velocity, mass), the edge list, and the
// serialization formats used by files, renderers, and the HTTP API.
//
// A Graph is constructed once from a topology (node count plus edges)
// and then mutated tick by tick by the physics integrator. Positions
// are (re)randomized with Scatter, which also assigns a fresh run id;
// the topology itself never changes after construction.
package graph

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/esonju/forcegraph/pkg/geom"
)

// DefaultMass is the node mass used when none is specified.
const DefaultMass = 1.0

// Node is a single body in the simulation. ID is dense in [0, N) and
// immutable; Pos and Vel are mutated by the integrator only.
type Node struct {
	ID   int
	Pos  geom.Vec2
	Vel  geom.Vec2
	Mass float64
}

// Edge is an unordered pair of node ids. The physics treats every edge
// as symmetric; Directed on the owning Graph only affects rendering.
type Edge struct {
	A, B int
}

// Bounds is the rectangular region used for random node placement.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// DefaultBounds mirrors the [-2,2]² region the layout historically
// starts from. The simulation is unbounded afterwards; this only seeds
// initial positions.
func DefaultBounds() Bounds {
	return Bounds{MinX: -2, MinY: -2, MaxX: 2, MaxY: 2}
}

// Graph owns the node and edge state for one simulation.
type Graph struct {
	name     string
	runID    string
	directed bool
	nodes    map[int]*Node
	ids      []int // ascending, the canonical iteration order
	edges    []Edge
}

// Option configures graph construction.
type Option func(*Graph)

// WithName sets a display name carried into snapshots.
func WithName(name string) Option {
	return func(g *Graph) { g.name = name }
}

// WithDirected marks edges as directed for rendering purposes.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// New builds a graph with nodeCount nodes (ids 0..nodeCount-1, default
// mass, zero position and velocity) and the given edges. It returns an
// error wrapping ErrInvalidTopology if nodeCount is not positive, an
// edge is a self-loop, or an edge endpoint is out of range.
func New(nodeCount int, edges []Edge, opts ...Option) (*Graph, error) {
	if nodeCount <= 0 {
		return nil, fmt.Errorf("%w: node count %d, want > 0", ErrInvalidTopology, nodeCount)
	}
	for _, e := range edges {
		if e.A == e.B {
			return nil, fmt.Errorf("%w: self-loop on node %d", ErrInvalidTopology, e.A)
		}
		if e.A < 0 || e.A >= nodeCount || e.B < 0 || e.B >= nodeCount {
			return nil, fmt.Errorf("%w: edge (%d,%d) outside [0,%d)", ErrInvalidTopology, e.A, e.B, nodeCount)
		}
	}

	g := &Graph{
		runID: uuid.NewString(),
		nodes: make(map[int]*Node, nodeCount),
		ids:   make([]int, nodeCount),
		edges: append([]Edge(nil), edges...),
	}
	for i := 0; i < nodeCount; i++ {
		g.nodes[i] = &Node{ID: i, Mass: DefaultMass}
		g.ids[i] = i
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Scatter places every node uniformly at random within b, zeroes all
// velocities, and assigns a fresh run id. Used at simulation start and
// on restart; the topology is untouched.
func (g *Graph) Scatter(rng *rand.Rand, b Bounds) {
	for _, id := range g.ids {
		n := g.nodes[id]
		n.Pos = geom.Vec2{
			X: b.MinX + rng.Float64()*(b.MaxX-b.MinX),
			Y: b.MinY + rng.Float64()*(b.MaxY-b.MinY),
		}
		n.Vel = geom.Vec2{}
	}
	g.runID = uuid.NewString()
}

// Name returns the display name, possibly empty.
func (g *Graph) Name() string { return g.name }

// RunID identifies the current layout generation. It changes on every
// Scatter, so two snapshots with equal run ids come from the same
// placement.
func (g *Graph) RunID() string { return g.runID }

// Directed reports whether edges should be rendered with direction.
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// IDs returns node ids in ascending order. The slice is shared; do not
// modify it.
func (g *Graph) IDs() []int { return g.ids }

// Node returns the node with the given id, or false if absent.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns the nodes in ascending id order. The pointers alias
// live simulation state.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.ids))
	for i, id := range g.ids {
		out[i] = g.nodes[id]
	}
	return out
}

// Edges returns the edge list in construction order. The slice is
// shared; do not modify it.
func (g *Graph) Edges() []Edge { return g.edges }

// TotalVelocity returns the sum of node speed magnitudes, the
// equilibrium metric: near zero means the layout has settled.
func (g *Graph) TotalVelocity() float64 {
	var v float64
	for _, id := range g.ids {
		v += g.nodes[id].Vel.Len()
	}
	return v
}

// Snapshot returns an immutable copy of the current positions for
// external renderers. Nodes appear in ascending id order.
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		RunID:    g.runID,
		Name:     g.name,
		Directed: g.directed,
		Nodes:    make([]NodePosition, len(g.ids)),
		Edges:    append([]Edge(nil), g.edges...),
	}
	for i, id := range g.ids {
		n := g.nodes[id]
		s.Nodes[i] = NodePosition{ID: id, X: n.Pos.X, Y: n.Pos.Y}
	}
	return s
}
