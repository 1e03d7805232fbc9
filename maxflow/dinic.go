package maxflow

import (
	"math"

	"go.uber.org/zap"

	"github.com/provanshier/gocuts/digraph"
)

// arc is one direction of residual capacity. Arcs are allocated in
// forward/backward pairs: arc 2i is the forward residual for original
// edge i, arc 2i+1 is its twin, seeded at capacity 0 and credited as flow
// is pushed — the array-of-arcs shape competitive Dinic implementations
// use instead of lvlath's map-of-maps capMap, since this package keys
// everything by int vertex id rather than string vertex name.
type arc struct {
	to  int
	cap int64
}

// Dinic computes the maximum flow from source to target in g using
// Dinic's algorithm (level graph plus blocking flow via DFS), re-keyed
// from lvlath's flow.Dinic to operate on digraph.Graph with int64
// capacities instead of *core.Graph with float64 weights.
//
// capacity must have exactly g.NumEdges() entries, none negative; it may
// contain the transform package's infinity sentinel (NumVertices), which
// Dinic treats as an ordinary large integer.
//
// flow[e] is the flow carried on original edge e, 0 <= flow[e] <= capacity[e].
//
// Steps:
//  1. Validate source, target, and capacity shape.
//  2. Build the arc array: one forward/backward pair per original edge.
//  3. Repeat until the target is unreachable in the level graph:
//     a. BFS to assign levels from source.
//     b. DFS-based blocking flow with per-vertex arc iterators, pushing
//     until the blocking flow is exhausted or levelRebuildInterval
//     augmenting paths have been pushed in this phase.
//  4. Read flow[e] back off the forward arc's capacity deficit.
//
// Complexity:
//
//	Time:   O(V^2 * E) in general; O(E * sqrt(V)) on unit-capacity networks.
//	Memory: O(V + E)
func Dinic(g *digraph.Graph, source, target int, capacity []int64, opts ...FlowOption) (flow []int64, value int64, err error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n, m := g.NumVertices(), g.NumEdges()
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, 0, ErrVertexOutOfRange
	}
	if source == target {
		return nil, 0, ErrSameSourceTarget
	}
	if len(capacity) != m {
		return nil, 0, ErrCapacitySizeMismatch
	}
	for _, c := range capacity {
		if c < 0 {
			return nil, 0, ErrNegativeCapacity
		}
	}

	o := defaultFlowOptions()
	for _, fn := range opts {
		fn(&o)
	}

	arcs := make([]arc, 2*m)
	adj := make([][]int, n)
	for e := 0; e < m; e++ {
		u, v := g.From(e), g.To(e)
		fwd, bwd := 2*e, 2*e+1
		arcs[fwd] = arc{to: v, cap: capacity[e]}
		arcs[bwd] = arc{to: u, cap: 0}
		adj[u] = append(adj[u], fwd)
		adj[v] = append(adj[v], bwd)
	}

	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)
	phase := 0

	for {
		for v := range level {
			level[v] = -1
		}
		level[source] = 0
		queue = queue[:0]
		queue = append(queue, source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, ai := range adj[u] {
				a := arcs[ai]
				if a.cap > 0 && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[target] < 0 {
			break
		}

		for v := range iter {
			iter[v] = 0
		}
		blockingFlow, augments := int64(0), 0
		phase++
		for {
			pushed := dinicPush(arcs, adj, level, iter, source, target, math.MaxInt64)
			if pushed == 0 {
				break
			}
			value += pushed
			blockingFlow += pushed
			augments++
			if o.levelRebuildInterval > 0 && augments%o.levelRebuildInterval == 0 {
				break
			}
		}
		o.logger.Debug("dinic: blocking flow phase",
			zap.Int("phase", phase),
			zap.Int("augments", augments),
			zap.Int64("pushed", blockingFlow),
			zap.Int64("total", value),
		)
	}

	flow = make([]int64, m)
	for e := 0; e < m; e++ {
		flow[e] = capacity[e] - arcs[2*e].cap
	}

	return flow, value, nil
}

// dinicPush pushes one DFS blocking-flow augmentation along the level
// graph rooted at u, advancing iter[u] past any arc found saturated or
// off-level so the next call never re-examines it.
func dinicPush(arcs []arc, adj [][]int, level, iter []int, u, target int, available int64) int64 {
	if u == target {
		return available
	}
	for ; iter[u] < len(adj[u]); iter[u]++ {
		ai := adj[u][iter[u]]
		a := &arcs[ai]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		pushed := dinicPush(arcs, adj, level, iter, a.to, target, send)
		if pushed > 0 {
			a.cap -= pushed
			arcs[ai^1].cap += pushed

			return pushed
		}
	}

	return 0
}
