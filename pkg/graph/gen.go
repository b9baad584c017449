package graph

import (
	"fmt"
	"math/rand"
)

// Shape names accepted by Generate.
const (
	ShapeCycle    = "cycle"
	ShapePath     = "path"
	ShapeStar     = "star"
	ShapeComplete = "complete"
	ShapeRandom   = "random"
)

// Shapes lists the supported generator names.
func Shapes() []string {
	return []string{ShapeCycle, ShapePath, ShapeStar, ShapeComplete, ShapeRandom}
}

// Cycle returns the edges of the n-cycle 0-1-...-(n-1)-0.
func Cycle(n int) []Edge {
	edges := make([]Edge, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, Edge{A: i, B: i + 1})
	}
	if n > 2 {
		edges = append(edges, Edge{A: n - 1, B: 0})
	}
	return edges
}

// Path returns the edges of the simple path 0-1-...-(n-1).
func Path(n int) []Edge {
	edges := make([]Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, Edge{A: i, B: i + 1})
	}
	return edges
}

// Star returns edges from node 0 to every other node.
func Star(n int) []Edge {
	edges := make([]Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{A: 0, B: i})
	}
	return edges
}

// Complete returns every unordered pair of distinct nodes.
func Complete(n int) []Edge {
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{A: i, B: j})
		}
	}
	return edges
}

// Random returns a path through all n nodes plus extra random chords,
// so the result is always connected. Duplicate chords are possible,
// matching the classic example generator this mirrors.
func Random(n, extra int, rng *rand.Rand) []Edge {
	edges := Path(n)
	for k := 0; k < extra; k++ {
		a := rng.Intn(n)
		b := rng.Intn(n)
		for b == a {
			b = rng.Intn(n)
		}
		edges = append(edges, Edge{A: a, B: b})
	}
	return edges
}

// Generate builds a graph file description for the named shape with n
// nodes. extra is only meaningful for the random shape (number of
// chords beyond the connecting path); rng may be nil unless the shape
// is random.
func Generate(shape string, n, extra int, rng *rand.Rand) (File, error) {
	if n <= 0 {
		return File{}, fmt.Errorf("%w: node count %d, want > 0", ErrInvalidTopology, n)
	}

	var edges []Edge
	switch shape {
	case ShapeCycle:
		edges = Cycle(n)
	case ShapePath:
		edges = Path(n)
	case ShapeStar:
		edges = Star(n)
	case ShapeComplete:
		edges = Complete(n)
	case ShapeRandom:
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		if extra <= 0 {
			extra = n / 3
		}
		edges = Random(n, extra, rng)
	default:
		return File{}, fmt.Errorf("unknown shape %q (want one of %v)", shape, Shapes())
	}

	return File{
		Name:  fmt.Sprintf("%s-%d", shape, n),
		Nodes: NodeSpecs{Count: n},
		Edges: edges,
	}, nil
}
