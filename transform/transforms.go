package transform

import (
	"math"

	"github.com/provanshier/gocuts/digraph"
)

// EvenTarjanReduction splits every vertex v of g into an "in" copy v and
// an "out" copy v+n, turning vertex-capacity constraints into edge
// constraints a plain max-flow algorithm can enforce.
//
// The result has 2n vertices and 2m+n edges: one inner edge v -> v+n per
// original vertex (capacity 1), and two outer edges per original edge
// (u,v): u+n -> v and v+n -> u, both carrying the infinity sentinel n
// (the original graph's vertex count — see the design notes on why a
// finite sentinel substitutes for true infinity). capacity is populated
// only when withCapacity is true.
//
// Complexity: O(V+E)
func EvenTarjanReduction(g *digraph.Graph, withCapacity bool) (reduced *digraph.Graph, capacity []int64, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	n, m := g.NumVertices(), g.NumEdges()
	newEdges, overflowed := safeAdd(safeMul2(m), n)
	if overflowed {
		return nil, nil, ErrOverflow
	}

	b := digraph.NewBuilder(2 * n)
	if withCapacity {
		capacity = make([]int64, 0, newEdges)
	}

	for v := 0; v < n; v++ {
		if _, err := b.AddEdge(v, v+n); err != nil {
			return nil, nil, err
		}
		if withCapacity {
			capacity = append(capacity, 1)
		}
	}

	infinity := int64(n)
	for e := 0; e < m; e++ {
		from, to := g.From(e), g.To(e)
		if _, err := b.AddEdge(from+n, to); err != nil {
			return nil, nil, err
		}
		if _, err := b.AddEdge(to+n, from); err != nil {
			return nil, nil, err
		}
		if withCapacity {
			capacity = append(capacity, infinity, infinity)
		}
	}

	return b.Build(), capacity, nil
}

// safeMul2 returns 2*m, saturating to math.MaxInt on overflow so the
// caller's subsequent addition also overflows and is caught by safeAdd.
func safeMul2(m int) int {
	if m > math.MaxInt/2 {
		return math.MaxInt
	}

	return 2 * m
}

func safeAdd(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, true
	}

	return a + b, false
}

// ResidualGraph builds the residual graph of g given capacity and flow
// vectors of length m: one edge (from(e),to(e)) per original edge e with
// c(e)-f(e) > 0, plus the parallel residualCapacity vector holding that
// positive residual.
//
// Complexity: O(V+E)
func ResidualGraph(g *digraph.Graph, capacity, flow []int64) (residual *digraph.Graph, residualCapacity []int64, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	m := g.NumEdges()
	if len(capacity) != m || len(flow) != m {
		return nil, nil, ErrSizeMismatch
	}

	b := digraph.NewBuilder(g.NumVertices())
	for e := 0; e < m; e++ {
		c := capacity[e] - flow[e]
		if c <= 0 {
			continue
		}
		if _, err := b.AddEdge(g.From(e), g.To(e)); err != nil {
			return nil, nil, err
		}
		residualCapacity = append(residualCapacity, c)
	}

	return b.Build(), residualCapacity, nil
}

// ReverseResidualGraph builds the reverse residual graph of g: for each
// original edge e, include (from(e),to(e)) when f(e) > 0, and include
// (to(e),from(e)) when f(e) < c(e). capacity may be nil, in which case
// every edge is treated as having capacity 1.
//
// Complexity: O(V+E)
func ReverseResidualGraph(g *digraph.Graph, capacity, flow []int64) (*digraph.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	m := g.NumEdges()
	if capacity != nil && len(capacity) != m {
		return nil, ErrSizeMismatch
	}
	if len(flow) != m {
		return nil, ErrSizeMismatch
	}

	b := digraph.NewBuilder(g.NumVertices())
	for e := 0; e < m; e++ {
		c := int64(1)
		if capacity != nil {
			c = capacity[e]
		}
		from, to := g.From(e), g.To(e)
		if flow[e] > 0 {
			if _, err := b.AddEdge(from, to); err != nil {
				return nil, err
			}
		}
		if flow[e] < c {
			if _, err := b.AddEdge(to, from); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}
