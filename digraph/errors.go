package digraph

import "errors"

// Sentinel errors for graph construction and traversal.
var (
	// ErrNegativeSize is the value NewBuilder panics with when n < 0.
	ErrNegativeSize = errors.New("digraph: negative vertex count")

	// ErrVertexOutOfRange is returned when an edge endpoint or an extra
	// BFS root given via WithBFSRoots falls outside [0,n).
	ErrVertexOutOfRange = errors.New("digraph: vertex id out of range")

	// ErrGraphNil is returned when a nil *Graph is passed to a
	// traversal or subgraph operation.
	ErrGraphNil = errors.New("digraph: graph is nil")

	// ErrStartVertexNotFound is returned when a DFS/BFS root is not a
	// valid vertex of the graph.
	ErrStartVertexNotFound = errors.New("digraph: start vertex not found")

	// ErrOverflow is returned when the requested edge count would
	// exceed what an int-addressed edge list can represent.
	ErrOverflow = errors.New("digraph: edge count overflow")
)
