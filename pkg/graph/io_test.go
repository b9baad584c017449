package graph

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.json")

	f := File{
		Name:  "triangle",
		Nodes: NodeSpecs{Count: 3},
		Edges: []Edge{{0, 1}, {1, 2}, {2, 0}},
	}
	if err := WriteGraphFile(f, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	g, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if g.Name() != "triangle" {
		t.Errorf("name = %q, want triangle", g.Name())
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("shape = %d nodes, %d edges, want 3/3", g.NodeCount(), g.EdgeCount())
	}
}

func TestFileNodeList(t *testing.T) {
	var f File
	raw := `{"nodes": [{"id": 0, "mass": 2.5}, {"id": 1}], "edges": [[0,1]]}`
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	g, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	n0, _ := g.Node(0)
	if n0.Mass != 2.5 {
		t.Errorf("node 0 mass = %v, want 2.5", n0.Mass)
	}
	n1, _ := g.Node(1)
	if n1.Mass != DefaultMass {
		t.Errorf("node 1 mass = %v, want default", n1.Mass)
	}
}

func TestFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"EdgeOutOfRange", `{"nodes": 2, "edges": [[0,2]]}`, ErrInvalidTopology},
		{"ZeroNodes", `{"nodes": 0, "edges": []}`, ErrInvalidTopology},
		{"NodeSpecOutOfRange", `{"nodes": [{"id": 5}], "edges": []}`, ErrInvalidTopology},
		{"BadNodesField", `{"nodes": "twenty", "edges": []}`, ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f File
			err := json.Unmarshal([]byte(tt.raw), &f)
			if err == nil {
				_, err = f.Build()
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEdgeJSON(t *testing.T) {
	data, err := json.Marshal(Edge{3, 7})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[3,7]" {
		t.Errorf("marshal = %s, want [3,7]", data)
	}

	var e Edge
	if err := json.Unmarshal([]byte("[1,2]"), &e); err != nil {
		t.Fatal(err)
	}
	if e != (Edge{1, 2}) {
		t.Errorf("unmarshal = %+v, want {1 2}", e)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		shape     string
		n         int
		wantEdges int
	}{
		{ShapeCycle, 6, 6},
		{ShapeCycle, 2, 1}, // degenerate cycle collapses to a single edge
		{ShapePath, 6, 5},
		{ShapeStar, 6, 5},
		{ShapeComplete, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			f, err := Generate(tt.shape, tt.n, 0, nil)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(f.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(f.Edges), tt.wantEdges)
			}
			// Every generated file must build cleanly.
			if _, err := f.Build(); err != nil {
				t.Errorf("generated file does not build: %v", err)
			}
		})
	}

	if _, err := Generate("moebius", 5, 0, nil); err == nil {
		t.Error("unknown shape did not error")
	}
	if _, err := Generate(ShapeCycle, 0, 0, nil); !errors.Is(err, ErrInvalidTopology) {
		t.Error("zero node count did not return ErrInvalidTopology")
	}
}
