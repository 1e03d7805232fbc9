package stcut

import (
	"go.uber.org/zap"

	"github.com/provanshier/gocuts/digraph"
)

// minCutsPivot implements CutPivot_MinCuts: it operates on the
// SCC-contracted reverse residual graph, picking the first minimal
// active vertex (under reachability, not dominance) of the induced
// subgraph on V\S that is neither the target nor already in T.
type minCutsPivot struct {
	graph  *digraph.Graph
	active digraph.VertexSet
	target int
	logger *zap.Logger
}

func newMinCutsPivot(g *digraph.Graph, active digraph.VertexSet, target int, logger *zap.Logger) *minCutsPivot {
	return &minCutsPivot{graph: g, active: active, target: target, logger: logger}
}

func (p *minCutsPivot) asPivot() pivot {
	return p.pivot
}

func (p *minCutsPivot) pivot(S *markedQueue, T *elementStack) (v int, isv []int, found bool, err error) {
	g := p.graph
	n := g.NumVertices()

	if S.size() == n {
		return 0, nil, false, nil
	}

	keep := digraph.NewVertexSet(n)
	for i := 0; i < n; i++ {
		if !S.isElement(i) {
			keep.Add(i)
		}
	}

	sbar, vm, err := digraph.InducedSubgraph(g, keep)
	if err != nil {
		return 0, nil, false, err
	}

	minimal := minimalActiveElements(sbar, p.active, vm.ToGlobal)

	for _, localIdx := range minimal {
		mv := vm.ToGlobal[localIdx]
		if mv == p.target || T.isElement(mv) {
			continue
		}

		// The source code's note on restricted == keep resolves here:
		// the reverse BFS walks only within the induced set K, not
		// some separately tracked "restricted" set.
		bfsRes, err := digraph.BFS(g, mv, digraph.WithBFSMode(digraph.In), digraph.WithBFSRestricted(keep))
		if err != nil {
			return 0, nil, false, err
		}

		var out []int
		for _, u := range bfsRes.Order {
			if !T.isElement(u) {
				out = append(out, u)
			}
		}

		p.logger.Debug("stcut: min-cuts pivot accepted", zap.Int("v", mv))

		return mv, out, true, nil
	}

	return 0, nil, false, nil
}

// minimalActiveElements finds the minimal active vertices of sbar: the
// active vertices with in-degree 0 once every non-active vertex's
// out-edges are conceptually removed from its successors' in-degrees.
// Returned indices are local to sbar.
func minimalActiveElements(sbar *digraph.Graph, active digraph.VertexSet, invmap []int) []int {
	n := sbar.NumVertices()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		indeg[v] = len(sbar.In(v))
	}
	for i := 0; i < n; i++ {
		if !active.Has(invmap[i]) {
			for _, e := range sbar.Out(i) {
				indeg[sbar.To(e)]--
			}
		}
	}

	var minimal []int
	for i := 0; i < n; i++ {
		if active.Has(invmap[i]) && indeg[i] == 0 {
			minimal = append(minimal, i)
		}
	}

	return minimal
}
