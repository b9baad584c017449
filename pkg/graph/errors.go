package graph

import "errors"

var (
	// ErrInvalidTopology indicates malformed construction input: a
	// non-positive node count, a self-loop, or an edge endpoint outside
	// the node id range.
	ErrInvalidTopology = errors.New("graph: invalid topology")

	// ErrUnknownFormat indicates a graph file that is neither a node
	// count nor a node list.
	ErrUnknownFormat = errors.New("graph: unknown file format")
)
