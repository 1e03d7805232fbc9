package transform

import "errors"

// Sentinel errors for the graph transforms.
var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("transform: graph is nil")

	// ErrSizeMismatch is returned when a capacity or flow vector's
	// length does not equal the graph's edge count.
	ErrSizeMismatch = errors.New("transform: capacity/flow vector size does not match edge count")

	// ErrOverflow is returned when 2|E| + |V| exceeds what an
	// int-addressed edge list can represent.
	ErrOverflow = errors.New("transform: edge count overflow in reduction")
)
