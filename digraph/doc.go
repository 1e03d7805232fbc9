// Package digraph provides a minimal, immutable-after-construction directed
// graph on 0-based integer vertices and edges, together with the traversal,
// induced-subgraph, and strongly-connected-component primitives the rest of
// this module treats as external collaborators: restricted DFS/BFS, induced
// subgraph with forward/backward index maps, and SCC contraction.
//
// Vertices are integers in [0,n). Edges are integers in [0,m), each with
// endpoint accessors From(e) and To(e). Graphs are built once via Builder
// and never mutated afterwards — callers that need a different graph build
// a new one.
//
// Complexity:
//
//	Time:   O(V+E) to build; O(V+E) for DFS/BFS/SCC.
//	Memory: O(V+E) for adjacency, plus O(V) scratch per traversal.
package digraph
