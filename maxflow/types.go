package maxflow

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for max-flow construction and validation.
var (
	// ErrGraphNil is returned when a nil graph is passed to Dinic.
	ErrGraphNil = errors.New("maxflow: graph is nil")

	// ErrVertexOutOfRange is returned when source or target falls
	// outside the graph's vertex range.
	ErrVertexOutOfRange = errors.New("maxflow: vertex id out of range")

	// ErrSameSourceTarget is returned when source equals target.
	ErrSameSourceTarget = errors.New("maxflow: source equals target")

	// ErrCapacitySizeMismatch is returned when the capacity slice's
	// length does not equal the graph's edge count.
	ErrCapacitySizeMismatch = errors.New("maxflow: capacity slice length does not match edge count")

	// ErrNegativeCapacity is returned when any capacity entry is
	// negative.
	ErrNegativeCapacity = errors.New("maxflow: negative edge capacity")
)

// FlowOption configures Dinic, mirroring lvlath's flow.FlowOptions but as
// functional options rather than a struct literal, matching the rest of
// this module's Option/DefaultOptions convention.
type FlowOption func(*flowOptions)

type flowOptions struct {
	logger               *zap.Logger
	levelRebuildInterval int
}

func defaultFlowOptions() flowOptions {
	return flowOptions{
		logger:               zap.NewNop(),
		levelRebuildInterval: 0,
	}
}

// WithLogger injects a structured logger. Debug-level records capture
// each blocking-flow phase's number, augmentation count, pushed value and
// running total.
func WithLogger(l *zap.Logger) FlowOption {
	return func(o *flowOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLevelRebuildInterval ends a phase and rebuilds the level graph after
// every n augmenting paths, even if the blocking flow is not yet
// exhausted; 0 (the default) rebuilds only once the blocking flow of the
// current level graph is exhausted.
func WithLevelRebuildInterval(n int) FlowOption {
	return func(o *flowOptions) {
		if n >= 0 {
			o.levelRebuildInterval = n
		}
	}
}
