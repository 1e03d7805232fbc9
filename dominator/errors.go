package dominator

import "errors"

// Sentinel errors for dominator tree construction.
var (
	// ErrGraphNil is returned when a nil graph is passed to Tree.
	ErrGraphNil = errors.New("dominator: graph is nil")

	// ErrRootOutOfRange is returned when root is not a valid vertex id.
	ErrRootOutOfRange = errors.New("dominator: root vertex id out of range")

	// ErrInvalidMode is returned when Mode is neither Out nor In.
	ErrInvalidMode = errors.New("dominator: mode must be Out or In")
)
