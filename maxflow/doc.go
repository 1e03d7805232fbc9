// Package maxflow computes maximum flow over digraph.Graph with int64
// edge capacities, supplying the per-edge flow values the reverse
// residual graph and minimum-cut enumeration depend on.
package maxflow
