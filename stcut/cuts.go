package stcut

import (
	"go.uber.org/zap"

	"github.com/provanshier/gocuts/digraph"
	"github.com/provanshier/gocuts/maxflow"
	"github.com/provanshier/gocuts/transform"
)

// CutsOption configures AllSTCuts and AllSTMinCuts.
type CutsOption func(*cutsOptions)

type cutsOptions struct {
	logger *zap.Logger
}

func defaultCutsOptions() cutsOptions {
	return cutsOptions{logger: zap.NewNop()}
}

// WithLogger injects a structured logger shared by the search engine and
// both pivots.
func WithLogger(l *zap.Logger) CutsOption {
	return func(o *cutsOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func validateSourceTarget(n, source, target int) error {
	if source < 0 || source >= n || target < 0 || target >= n {
		return ErrVertexOutOfRange
	}
	if source == target {
		return ErrSameSourceTarget
	}

	return nil
}

// edgeCutsForPartitions converts each source-side vertex partition into
// the edge cut it induces: every edge whose tail lies in the partition
// and whose head does not.
func edgeCutsForPartitions(g *digraph.Graph, partitions [][]int, onlyPositiveFlow []int64) [][]int {
	n := g.NumVertices()
	inPartition := make([]int, n) // 0 means "no partition", else partition index+1

	cuts := make([][]int, len(partitions))
	for i, part := range partitions {
		for _, v := range part {
			inPartition[v] = i + 1
		}

		var cut []int
		for e := 0; e < g.NumEdges(); e++ {
			if onlyPositiveFlow != nil && onlyPositiveFlow[e] <= 0 {
				continue
			}
			from, to := g.From(e), g.To(e)
			if inPartition[from] == i+1 && inPartition[to] != i+1 {
				cut = append(cut, e)
			}
		}
		cuts[i] = cut
	}

	return cuts
}

// AllSTCuts enumerates every (s,t) edge cut of g: it drives the
// Provan-Shier search from empty (S,T) with allCutsPivot, then translates
// each emitted source-side partition into the edge cut it induces.
//
// Complexity:
//
//	Time: O(n*(|V|+|E|)), where n is the number of cuts found.
func AllSTCuts(g *digraph.Graph, source, target int, opts ...CutsOption) (cuts [][]int, partitions [][]int, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	n := g.NumVertices()
	if err := validateSourceTarget(n, source, target); err != nil {
		return nil, nil, err
	}

	o := defaultCutsOptions()
	for _, fn := range opts {
		fn(&o)
	}

	S := newMarkedQueue(n)
	T := newElementStack(n)
	p := newAllCutsPivot(g, source, target, o.logger)

	srch := &search{
		n:      n,
		pivot:  p.asPivot(),
		logger: o.logger,
		emit: func(part []int) {
			partitions = append(partitions, append([]int(nil), part...))
		},
	}
	if err := srch.run(S, T); err != nil {
		return nil, nil, err
	}

	cuts = edgeCutsForPartitions(g, partitions, nil)

	return cuts, partitions, nil
}

// AllSTMinCuts enumerates every minimum-capacity (s,t) edge cut of g.
//
// It computes a maximum flow, builds the reverse residual graph,
// SCC-contracts it, marks the active vertex set, and runs the
// Provan-Shier search on the contracted graph with minCutsPivot before
// expanding contracted partitions back through the component map.
//
// Per the resolved newsource == newtarget open question, a graph where
// source and target collapse into the same strong component after
// contraction yields zero cuts rather than an error: that situation
// arises only when source and target are already mutually reachable
// across every min-cut-saturating path, which is a valid graph shape for
// a caller to enumerate over, not API misuse.
//
// Complexity:
//
//	Time: O(n*(|V|+|E|)) + O(F), where F is the maxflow running time.
func AllSTMinCuts(g *digraph.Graph, source, target int, capacity []int64, opts ...CutsOption) (value int64, cuts [][]int, partitions [][]int, err error) {
	if g == nil {
		return 0, nil, nil, ErrGraphNil
	}
	n, m := g.NumVertices(), g.NumEdges()
	if err := validateSourceTarget(n, source, target); err != nil {
		return 0, nil, nil, err
	}
	if len(capacity) != m {
		return 0, nil, nil, ErrCapacitySizeMismatch
	}
	for _, c := range capacity {
		if c <= 0 {
			return 0, nil, nil, ErrNonPositiveCapacity
		}
	}

	o := defaultCutsOptions()
	for _, fn := range opts {
		fn(&o)
	}

	flow, value, err := maxflow.Dinic(g, source, target, capacity, maxflow.WithLogger(o.logger))
	if err != nil {
		return 0, nil, nil, err
	}

	residual, err := transform.ReverseResidualGraph(g, capacity, flow)
	if err != nil {
		return 0, nil, nil, err
	}

	sccRes, err := digraph.SCC(residual)
	if err != nil {
		return 0, nil, nil, err
	}
	contracted, err := digraph.Contract(residual, sccRes)
	if err != nil {
		return 0, nil, nil, err
	}

	newSource, newTarget := sccRes.Comp[source], sccRes.Comp[target]
	if newSource == newTarget {
		o.logger.Debug("stcut: source and target share a strong component after contraction",
			zap.Int64("value", value))

		return value, nil, nil, nil
	}

	active := digraph.NewVertexSet(contracted.NumVertices())
	for e := 0; e < m; e++ {
		if flow[e] > 0 {
			active.Add(sccRes.Comp[g.From(e)])
			active.Add(sccRes.Comp[g.To(e)])
		}
	}

	cn := contracted.NumVertices()
	S := newMarkedQueue(cn)
	T := newElementStack(cn)
	p := newMinCutsPivot(contracted, active, newTarget, o.logger)

	var closedSets [][]int
	srch := &search{
		n:      cn,
		pivot:  p.asPivot(),
		logger: o.logger,
		emit: func(part []int) {
			closedSets = append(closedSets, append([]int(nil), part...))
		},
	}
	if err := srch.run(S, T); err != nil {
		return 0, nil, nil, err
	}

	// revmap: component id -> original vertex ids.
	revmap := make([][]int, cn)
	for v := 0; v < n; v++ {
		revmap[sccRes.Comp[v]] = append(revmap[sccRes.Comp[v]], v)
	}

	partitions = make([][]int, len(closedSets))
	for i, supercut := range closedSets {
		var part []int
		for _, comp := range supercut {
			part = append(part, revmap[comp]...)
		}
		partitions[i] = part
	}

	cuts = edgeCutsForPartitions(g, partitions, flow)

	return value, cuts, partitions, nil
}
