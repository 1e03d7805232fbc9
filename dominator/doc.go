// Package dominator computes Lengauer-Tarjan dominator trees over
// digraph.Graph, including the BucketForest scratch structure the
// semidominator computation drains during its main pass.
package dominator
