package stcut

import (
	"go.uber.org/zap"

	"github.com/provanshier/gocuts/digraph"
	"github.com/provanshier/gocuts/dominator"
)

// allCutsPivot implements CutPivot_AllCuts: given (S,T), it produces a
// pivot vertex and its I(S,v) by building the dominator tree of the
// induced graph on V\S, reverse-oriented and rooted at the target, and
// searching for a minimal element of Gamma(S) whose dominator subtree
// stays clear of T and target.
type allCutsPivot struct {
	graph          *digraph.Graph
	source, target int
	logger         *zap.Logger
}

func newAllCutsPivot(g *digraph.Graph, source, target int, logger *zap.Logger) *allCutsPivot {
	return &allCutsPivot{graph: g, source: source, target: target, logger: logger}
}

func (p *allCutsPivot) asPivot() pivot {
	return p.pivot
}

func (p *allCutsPivot) pivot(S *markedQueue, T *elementStack) (v int, isv []int, found bool, err error) {
	g := p.graph
	n := g.NumVertices()

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

	root := vm.ToLocal[p.target]

	domRes, err := dominator.Tree(sbar, root, digraph.In, dominator.WithEmitTree(), dominator.WithEmitLeftout())
	if err != nil {
		return 0, nil, false, err
	}

	// leftout, relabeled to original vertex ids.
	leftout := make([]int, len(domRes.Leftout))
	for i, local := range domRes.Leftout {
		leftout[i] = vm.ToGlobal[local]
	}
	gammaS := digraph.NewVertexSet(n)
	if S.size() == 0 {
		gammaS.Add(p.source)
	} else {
		for _, u := range S.asVector() {
			for _, e := range g.Out(u) {
				nei := g.To(e)
				if !S.isElement(nei) {
					gammaS.Add(nei)
				}
			}
		}
	}
	for _, u := range leftout {
		gammaS.Remove(u)
	}

	var m []int
	if domRes.Tree != nil && domRes.Tree.NumEdges() > 0 {
		m = minimalElements(domRes.Tree, root, gammaS, vm.ToGlobal, n)
	}

	var gammaSVec []int
	for i := 0; i < n; i++ {
		if gammaS.Has(i) {
			gammaSVec = append(gammaSVec, i)
		}
	}

	for _, mv := range m {
		min := vm.ToLocal[mv]

		nuv := dominatorSubtree(domRes.Tree, min, vm.ToGlobal)

		nuvSet := digraph.VertexSetOf(n, nuv)
		bfsRes, err := digraph.BFS(g, gammaSVec[0],
			digraph.WithBFSRoots(gammaSVec[1:]),
			digraph.WithBFSRestricted(nuvSet),
		)
		if err != nil {
			return 0, nil, false, err
		}

		accepted := true
		for _, u := range bfsRes.Order {
			if T.isElement(u) || u == p.target {
				accepted = false

				break
			}
		}
		if !accepted {
			continue
		}

		nuvPlusLeftout := append(append([]int(nil), nuv...), leftout...)
		restrict := digraph.VertexSetOf(n, nuvPlusLeftout)
		finalBFS, err := digraph.BFS(g, mv, digraph.WithBFSRestricted(restrict))
		if err != nil {
			return 0, nil, false, err
		}

		p.logger.Debug("stcut: all-cuts pivot accepted", zap.Int("v", mv))

		return mv, finalBFS.Order, true, nil
	}

	return 0, nil, false, nil
}

// minimalElements finds the minimal elements of gammaS under the
// dominance relation encoded by domtree: a reverse DFS from root (which,
// because domtree's edges run child -> parent, means walking In from
// root down to the leaves) marks any gammaS vertex lying above another
// gammaS vertex on the same root-to-leaf path as non-minimal.
func minimalElements(domtree *digraph.Graph, root int, gammaS digraph.VertexSet, invmap []int, numOriginal int) []int {
	nomark := make([]bool, numOriginal)
	for i := 0; i < numOriginal; i++ {
		nomark[i] = !gammaS.Has(i)
	}

	var stack []int
	var walk func(w int)
	walk = func(w int) {
		realID := invmap[w]
		pushed := false
		if gammaS.Has(realID) {
			if len(stack) > 0 {
				nomark[stack[len(stack)-1]] = true
			}
			stack = append(stack, realID)
			pushed = true
		}

		for _, e := range domtree.In(w) {
			walk(domtree.Endpoint(e, digraph.In))
		}

		if pushed && stack[len(stack)-1] == realID {
			stack = stack[:len(stack)-1]
		}
	}
	walk(root)

	var minimal []int
	for i := 0; i < numOriginal; i++ {
		if !nomark[i] {
			minimal = append(minimal, i)
		}
	}

	return minimal
}

// dominatorSubtree returns Nu(v): the descendants of v in domtree
// (domtree edges run child -> parent, so descendants are reached by
// walking In), translated back to original vertex ids via invmap.
func dominatorSubtree(domtree *digraph.Graph, v int, invmap []int) []int {
	var out []int
	var walk func(w int)
	walk = func(w int) {
		out = append(out, invmap[w])
		for _, e := range domtree.In(w) {
			walk(domtree.Endpoint(e, digraph.In))
		}
	}
	walk(v)

	return out
}
