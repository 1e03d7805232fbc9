package digraph

import (
	"context"
	"fmt"
)

// DFSOption configures a DFS traversal. The shape mirrors lvlath's
// dfs.Option: a functional option over a private options struct, with
// hooks, a depth limit, and context cancellation.
type DFSOption func(*dfsOptions)

type dfsOptions struct {
	ctx        context.Context
	mode       Mode
	restricted VertexSet // nil means unrestricted
	onVisit    func(v int) error
	maxDepth   int
}

func defaultDFSOptions() dfsOptions {
	return dfsOptions{
		ctx:      context.Background(),
		mode:     Out,
		maxDepth: -1,
	}
}

// WithDFSContext sets the cancellation context for the traversal.
func WithDFSContext(ctx context.Context) DFSOption {
	return func(o *dfsOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithDFSMode selects which adjacency direction the traversal follows.
func WithDFSMode(mode Mode) DFSOption {
	return func(o *dfsOptions) { o.mode = mode }
}

// WithDFSRestricted limits the traversal to vertices in set. Edges leading
// outside set are not followed.
func WithDFSRestricted(set VertexSet) DFSOption {
	return func(o *dfsOptions) { o.restricted = set }
}

// WithDFSOnVisit installs a pre-order hook invoked when a vertex is first
// discovered. Returning a non-nil error aborts the traversal.
func WithDFSOnVisit(fn func(v int) error) DFSOption {
	return func(o *dfsOptions) { o.onVisit = fn }
}

// WithDFSMaxDepth limits recursion to the given depth; -1 (the default)
// means unlimited.
func WithDFSMaxDepth(d int) DFSOption {
	return func(o *dfsOptions) { o.maxDepth = d }
}

// DFSResult captures a depth-first traversal in discovery (preorder) order,
// the ordering the Lengauer-Tarjan dominator algorithm needs from its
// initial DFS. Unvisited vertices carry Parent == -2 and Depth == -1, the
// same "unreachable" convention (< -1) the dominator package uses for its
// own parent tracking.
type DFSResult struct {
	Order   []int // vertices in discovery order
	Parent  []int // Parent[v] = DFS parent, -1 for the root, -2 if unvisited
	Depth   []int // Depth[v], -1 if unvisited
	Visited []bool
}

// DFS performs a depth-first traversal of g starting at root, honoring
// opts. If root is out of range, DFS returns ErrStartVertexNotFound.
//
// Complexity:
//
//	Time:   O(V+E)
//	Memory: O(V) for the result plus an explicit stack of frames.
func DFS(g *Graph, root int, opts ...DFSOption) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if root < 0 || root >= g.n {
		return nil, ErrStartVertexNotFound
	}

	o := defaultDFSOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &DFSResult{
		Order:   make([]int, 0, g.n),
		Parent:  make([]int, g.n),
		Depth:   make([]int, g.n),
		Visited: make([]bool, g.n),
	}
	for v := 0; v < g.n; v++ {
		res.Parent[v] = -2
		res.Depth[v] = -1
	}

	if err := dfsWalk(g, root, -1, 0, &o, res); err != nil {
		return res, err
	}

	return res, nil
}

// frame is one level of an explicit DFS stack, used instead of Go-call
// recursion so deep graphs cannot overflow the goroutine stack.
type frame struct {
	v      int
	parent int
	depth  int
}

func dfsWalk(g *Graph, root, parent, depth int, o *dfsOptions, res *DFSResult) error {
	stack := []frame{{v: root, parent: parent, depth: depth}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if res.Visited[top.v] {
			continue
		}

		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}

		if o.maxDepth >= 0 && top.depth > o.maxDepth {
			continue
		}
		if o.restricted != nil && !o.restricted.Has(top.v) {
			continue
		}

		res.Visited[top.v] = true
		res.Parent[top.v] = top.parent
		res.Depth[top.v] = top.depth
		res.Order = append(res.Order, top.v)

		if o.onVisit != nil {
			if err := o.onVisit(top.v); err != nil {
				return fmt.Errorf("digraph: DFS OnVisit for %d: %w", top.v, err)
			}
		}

		nbrs := g.Neighbors(top.v, o.mode)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nxt := g.Endpoint(nbrs[i], o.mode)
			if !res.Visited[nxt] {
				stack = append(stack, frame{v: nxt, parent: top.v, depth: top.depth + 1})
			}
		}
	}

	return nil
}
