package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Serialization Types
// =============================================================================

// Snapshot is the canonical serialization of a computed (or in-flight)
// layout: node positions plus the edge list. It is what renderers read
// and what the layout command writes.
type Snapshot struct {
	RunID    string         `json:"run_id"`
	Name     string         `json:"name,omitempty"`
	Directed bool           `json:"directed,omitempty"`
	Nodes    []NodePosition `json:"nodes"`
	Edges    []Edge         `json:"edges"`
}

// NodePosition is one node's id and position within a Snapshot.
type NodePosition struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// MarshalJSON encodes an edge as the two-element array [a, b].
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.A, e.B})
}

// UnmarshalJSON decodes an edge from [a, b].
func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	e.A, e.B = pair[0], pair[1]
	return nil
}

// =============================================================================
// Graph Files
// =============================================================================

// File is the on-disk graph description. Nodes is either a bare count
// (all nodes get default mass) or a list of node specs.
//
//	{"name": "cycle", "nodes": 20, "edges": [[0,1],[1,2]]}
//	{"nodes": [{"id": 0, "mass": 2.5}, {"id": 1}], "edges": [[0,1]]}
type File struct {
	Name     string    `json:"name,omitempty"`
	Directed bool      `json:"directed,omitempty"`
	Nodes    NodeSpecs `json:"nodes"`
	Edges    []Edge    `json:"edges"`
}

// NodeSpec describes one node in a graph file.
type NodeSpec struct {
	ID   int     `json:"id"`
	Mass float64 `json:"mass,omitempty"`
}

// NodeSpecs accepts either an integer node count or an explicit list.
type NodeSpecs struct {
	Count int
	List  []NodeSpec
}

// MarshalJSON writes the compact count form when no node carries
// explicit attributes, the list form otherwise.
func (ns NodeSpecs) MarshalJSON() ([]byte, error) {
	if ns.List == nil {
		return json.Marshal(ns.Count)
	}
	return json.Marshal(ns.List)
}

// UnmarshalJSON reads either form.
func (ns *NodeSpecs) UnmarshalJSON(data []byte) error {
	var count int
	if err := json.Unmarshal(data, &count); err == nil {
		ns.Count = count
		ns.List = nil
		return nil
	}
	var list []NodeSpec
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%w: nodes must be a count or a node list", ErrUnknownFormat)
	}
	ns.List = list
	ns.Count = len(list)
	return nil
}

// Build constructs a Graph from the file description, applying
// per-node masses when the list form is used.
func (f File) Build() (*Graph, error) {
	opts := []Option{}
	if f.Name != "" {
		opts = append(opts, WithName(f.Name))
	}
	if f.Directed {
		opts = append(opts, WithDirected())
	}

	g, err := New(f.Nodes.Count, f.Edges, opts...)
	if err != nil {
		return nil, err
	}
	for _, spec := range f.Nodes.List {
		n, ok := g.Node(spec.ID)
		if !ok {
			return nil, fmt.Errorf("%w: node spec id %d outside [0,%d)", ErrInvalidTopology, spec.ID, f.Nodes.Count)
		}
		if spec.Mass > 0 {
			n.Mass = spec.Mass
		}
	}
	return g, nil
}

// ReadGraphFile loads and builds a graph from a JSON file.
func ReadGraphFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Build()
}

// WriteGraphFile writes a graph description to a JSON file.
func WriteGraphFile(f File, path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// WriteSnapshotFile writes a layout snapshot to a JSON file.
func WriteSnapshotFile(s Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
