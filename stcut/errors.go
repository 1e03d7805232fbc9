package stcut

import "errors"

// Sentinel errors for the enumeration engine and its façades.
var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("stcut: graph is nil")

	// ErrVertexOutOfRange is returned when source or target falls
	// outside the graph's vertex range.
	ErrVertexOutOfRange = errors.New("stcut: vertex id out of range")

	// ErrSameSourceTarget is returned when source equals target.
	ErrSameSourceTarget = errors.New("stcut: source equals target")

	// ErrAlreadyMember is returned when pushing a vertex already
	// present in a markedQueue or elementStack.
	ErrAlreadyMember = errors.New("stcut: vertex already a member")

	// ErrCapacitySizeMismatch is returned when the capacity slice's
	// length does not equal the graph's edge count.
	ErrCapacitySizeMismatch = errors.New("stcut: capacity slice length does not match edge count")

	// ErrNonPositiveCapacity is returned by AllSTMinCuts when any
	// capacity entry is not strictly positive.
	ErrNonPositiveCapacity = errors.New("stcut: non-positive edge capacity")
)
