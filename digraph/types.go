package digraph

// Mode selects the direction a traversal or dominator computation walks
// edges in. It mirrors lvlath's directed-vs-mixed distinction, specialized
// to the two orientations the dominator tree and BFS/DFS collaborators
// require.
type Mode int

const (
	// Out follows edges from → to, the graph's native orientation.
	Out Mode = iota
	// In follows edges to → from, i.e. the reverse graph.
	In
)

// edge is the internal endpoint pair backing every Edge id. Only From and To
// are stored; capacities and flows live in caller-owned parallel vectors
// indexed by edge id.
type edge struct {
	From, To int
}

// Graph is a directed graph on vertices [0,n) and edges [0,m), built once
// via Builder and never mutated afterward.
//
// out[v] and in[v] hold edge ids, not vertex ids, so that From/To lookups
// and parallel-edge enumeration share the same O(1) accessor.
type Graph struct {
	n     int
	edges []edge
	out   [][]int // out[v] = edge ids leaving v, in insertion order
	in    [][]int // in[v]  = edge ids entering v, in insertion order
}

// NumVertices returns |V|.
//
// Complexity: O(1)
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns |E|.
//
// Complexity: O(1)
func (g *Graph) NumEdges() int { return len(g.edges) }

// From returns the tail vertex of edge e.
//
// Complexity: O(1)
func (g *Graph) From(e int) int { return g.edges[e].From }

// To returns the head vertex of edge e.
//
// Complexity: O(1)
func (g *Graph) To(e int) int { return g.edges[e].To }

// Out returns the ids of edges leaving v, in insertion order. The returned
// slice is owned by the graph and must not be mutated.
//
// Complexity: O(1)
func (g *Graph) Out(v int) []int { return g.out[v] }

// In returns the ids of edges entering v, in insertion order. The returned
// slice is owned by the graph and must not be mutated.
//
// Complexity: O(1)
func (g *Graph) In(v int) []int { return g.in[v] }

// Neighbors returns the ids of the edges leaving or entering v according to
// mode — Out for v's successors, In for v's predecessors.
//
// Complexity: O(1)
func (g *Graph) Neighbors(v int, mode Mode) []int {
	if mode == Out {
		return g.out[v]
	}

	return g.in[v]
}

// Endpoint returns the "far" endpoint of edge e relative to mode: the head
// when walking Out, the tail when walking In. It is the vertex a forward
// adjacency walk in direction mode would step to next.
//
// Complexity: O(1)
func (g *Graph) Endpoint(e int, mode Mode) int {
	if mode == Out {
		return g.edges[e].To
	}

	return g.edges[e].From
}
