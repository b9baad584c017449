package physics

import (
	"github.com/esonju/forcegraph/pkg/geom"
	"github.com/esonju/forcegraph/pkg/graph"
)

// ComputeForces returns the net force on every node: repulsion between
// all pairs, spring attraction along edges, and gravity toward the
// origin when enabled. It is a pure function of the graph state and
// params; the map is keyed by node id and holds an entry for every
// node, including isolated ones.
//
// The pair loop is O(N²), which is fine for the graph sizes this
// engine targets (tens to low hundreds of nodes).
func ComputeForces(g *graph.Graph, p Params) map[int]geom.Vec2 {
	ids := g.IDs()
	forces := make(map[int]geom.Vec2, len(ids))
	for _, id := range ids {
		forces[id] = geom.Vec2{}
	}

	// Repulsion: each unordered pair pushed apart by k/d².
	for i := 0; i < len(ids); i++ {
		a, _ := g.Node(ids[i])
		for j := i + 1; j < len(ids); j++ {
			b, _ := g.Node(ids[j])

			delta := b.Pos.Sub(a.Pos)
			dist := delta.Len()
			dir := delta.Normalize()
			if dist < p.MinDistance {
				dist = p.MinDistance
				if dir == (geom.Vec2{}) {
					// Coincident nodes have no direction; push along x
					// so they still separate deterministically.
					dir = geom.Vec2{X: 1}
				}
			}

			f := dir.Scale(p.Repulsion / (dist * dist))
			forces[a.ID] = forces[a.ID].Sub(f)
			forces[b.ID] = forces[b.ID].Add(f)
		}
	}

	// Attraction: Hooke springs along edges, equal and opposite. A
	// positive magnitude pulls the pair together, negative pushes it
	// apart toward the rest length.
	for _, e := range g.Edges() {
		a, _ := g.Node(e.A)
		b, _ := g.Node(e.B)

		delta := b.Pos.Sub(a.Pos)
		dist := delta.Len()
		dir := delta.Normalize()

		f := dir.Scale(p.Spring * (dist - p.SpringLength))
		forces[a.ID] = forces[a.ID].Add(f)
		forces[b.ID] = forces[b.ID].Sub(f)
	}

	// Gravity: linear pull toward the origin.
	if p.GravityEnabled {
		for _, id := range ids {
			n, _ := g.Node(id)
			forces[id] = forces[id].Add(n.Pos.Scale(-p.Gravity))
		}
	}

	return forces
}
