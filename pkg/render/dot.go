// Package render exports computed layouts as Graphviz DOT and renders
// them to SVG or PNG. Node positions come from the simulation and are
// pinned, so Graphviz only draws; it never re-layouts.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/esonju/forcegraph/pkg/graph"
)

// Options configures DOT emission.
type Options struct {
	// Scale converts simulation units to DOT points. Zero means
	// DefaultScale.
	Scale float64

	// Labels draws node ids inside the circles.
	Labels bool
}

// DefaultScale spreads a typical settled layout (a few simulation
// units across) over a few hundred points.
const DefaultScale = 72.0

// ToDOT converts a layout snapshot to DOT with pinned positions
// (neato "x,y!" syntax). Directed snapshots use digraph/->, undirected
// graph/--, so arrowheads follow the source topology.
func ToDOT(s graph.Snapshot, opts Options) string {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	kind, op := "graph", "--"
	if s.Directed {
		kind, op = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#4a90d9\", fontcolor=white, fixedsize=true, width=0.35];\n")
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		label := ""
		if !opts.Labels {
			label = `, label=""`
		}
		fmt.Fprintf(&buf, "  %d [pos=\"%.2f,%.2f!\"%s];\n", n.ID, n.X*scale, n.Y*scale, label)
	}

	buf.WriteString("\n")
	for _, e := range s.Edges {
		fmt.Fprintf(&buf, "  %d %s %d;\n", e.A, op, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders pinned DOT to SVG using the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders pinned DOT to PNG using the neato engine.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer func() { _ = g.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
