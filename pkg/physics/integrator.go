package physics

import (
	"github.com/esonju/forcegraph/pkg/geom"
	"github.com/esonju/forcegraph/pkg/graph"
)

// Step advances the graph by one time step using semi-implicit Euler:
//
//	v' = (v + F/m·dt) · damping
//	p' = p + v'·dt
//
// Positions are not clamped; mapping simulation coordinates to a
// viewport is the renderer's job. If a node's new velocity or position
// comes out non-finite (pathological parameter combinations can do
// this), the node keeps its previous position, its velocity is zeroed,
// and its id is included in the returned slice so the caller can log
// the instability. The rest of the graph is unaffected.
func Step(g *graph.Graph, forces map[int]geom.Vec2, p Params) []int {
	var unstable []int
	for _, id := range g.IDs() {
		n, _ := g.Node(id)

		vel := n.Vel.Add(forces[id].Scale(p.TimeStep / n.Mass)).Scale(p.Damping)
		pos := n.Pos.Add(vel.Scale(p.TimeStep))

		if !vel.IsFinite() || !pos.IsFinite() {
			n.Vel = geom.Vec2{}
			unstable = append(unstable, id)
			continue
		}
		n.Vel = vel
		n.Pos = pos
	}
	return unstable
}
