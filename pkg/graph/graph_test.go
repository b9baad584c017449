package graph

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/esonju/forcegraph/pkg/geom"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		nodeCount int
		edges     []Edge
		wantErr   bool
	}{
		{"SingleNode", 1, nil, false},
		{"Triangle", 3, []Edge{{0, 1}, {1, 2}, {2, 0}}, false},
		{"NoEdges", 5, []Edge{}, false},
		{"ZeroNodes", 0, nil, true},
		{"NegativeNodes", -3, nil, true},
		{"EdgeOutOfRangeHigh", 3, []Edge{{0, 3}}, true},
		{"EdgeOutOfRangeNegative", 3, []Edge{{-1, 1}}, true},
		{"SelfLoop", 3, []Edge{{1, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.nodeCount, tt.edges)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTopology) {
					t.Fatalf("err = %v, want ErrInvalidTopology", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if g.NodeCount() != tt.nodeCount {
				t.Errorf("NodeCount = %d, want %d", g.NodeCount(), tt.nodeCount)
			}
			if g.EdgeCount() != len(tt.edges) {
				t.Errorf("EdgeCount = %d, want %d", g.EdgeCount(), len(tt.edges))
			}

			// Ids must be exactly 0..N-1 with default mass.
			seen := map[int]bool{}
			for _, n := range g.Nodes() {
				if n.ID < 0 || n.ID >= tt.nodeCount {
					t.Errorf("node id %d outside [0,%d)", n.ID, tt.nodeCount)
				}
				if seen[n.ID] {
					t.Errorf("duplicate node id %d", n.ID)
				}
				seen[n.ID] = true
				if n.Mass != DefaultMass {
					t.Errorf("node %d mass = %v, want %v", n.ID, n.Mass, DefaultMass)
				}
			}
			if len(seen) != tt.nodeCount {
				t.Errorf("distinct ids = %d, want %d", len(seen), tt.nodeCount)
			}
		})
	}
}

func TestScatter(t *testing.T) {
	g, err := New(10, Cycle(10))
	if err != nil {
		t.Fatal(err)
	}
	firstID := g.RunID()

	b := DefaultBounds()
	g.Scatter(rand.New(rand.NewSource(42)), b)

	for _, n := range g.Nodes() {
		if n.Pos.X < b.MinX || n.Pos.X > b.MaxX || n.Pos.Y < b.MinY || n.Pos.Y > b.MaxY {
			t.Errorf("node %d scattered outside bounds: %+v", n.ID, n.Pos)
		}
		if n.Vel != (geom.Vec2{}) {
			t.Errorf("node %d velocity = %+v, want zero", n.ID, n.Vel)
		}
	}
	if g.RunID() == firstID {
		t.Error("Scatter did not assign a fresh run id")
	}
}

func TestScatterDeterminism(t *testing.T) {
	build := func() *Graph {
		g, err := New(8, Star(8))
		if err != nil {
			t.Fatal(err)
		}
		g.Scatter(rand.New(rand.NewSource(7)), DefaultBounds())
		return g
	}

	a, b := build(), build()
	for i, n := range a.Nodes() {
		m := b.Nodes()[i]
		if n.Pos != m.Pos {
			t.Fatalf("node %d position differs across identically seeded runs: %+v vs %+v", i, n.Pos, m.Pos)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g, err := New(3, []Edge{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	g.Scatter(rand.New(rand.NewSource(1)), DefaultBounds())

	s := g.Snapshot()
	if len(s.Nodes) != 3 || len(s.Edges) != 1 {
		t.Fatalf("snapshot shape = %d nodes, %d edges", len(s.Nodes), len(s.Edges))
	}

	// Mutating the snapshot must not touch the live graph.
	s.Nodes[0].X += 100
	s.Edges[0] = Edge{2, 0}
	n, _ := g.Node(0)
	if n.Pos.X == s.Nodes[0].X {
		t.Error("snapshot aliases live node positions")
	}
	if g.Edges()[0] != (Edge{0, 1}) {
		t.Error("snapshot aliases live edge list")
	}

	// Order: ascending ids.
	for i, np := range s.Nodes {
		if np.ID != i {
			t.Errorf("snapshot node %d has id %d, want %d", i, np.ID, i)
		}
	}
}

func TestTotalVelocity(t *testing.T) {
	g, err := New(2, []Edge{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if tv := g.TotalVelocity(); tv != 0 {
		t.Errorf("TotalVelocity of fresh graph = %v, want 0", tv)
	}
	n0, _ := g.Node(0)
	n0.Vel.X = 3
	n0.Vel.Y = 4
	n1, _ := g.Node(1)
	n1.Vel.X = -1
	if tv := g.TotalVelocity(); tv != 6 {
		t.Errorf("TotalVelocity = %v, want 6", tv)
	}
}
