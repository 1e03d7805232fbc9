package digraph

import (
	"container/list"
	"context"
	"fmt"
)

// BFSOption configures a BFS traversal, mirroring lvlath's bfs.Option shape.
type BFSOption func(*bfsOptions)

type bfsOptions struct {
	ctx        context.Context
	mode       Mode
	restricted VertexSet
	extraRoots []int
	onVisit    func(v int) error
	maxDepth   int
}

func defaultBFSOptions() bfsOptions {
	return bfsOptions{
		ctx:      context.Background(),
		mode:     Out,
		maxDepth: -1,
	}
}

// WithBFSContext sets the cancellation context for the traversal.
func WithBFSContext(ctx context.Context) BFSOption {
	return func(o *bfsOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithBFSMode selects which adjacency direction the traversal follows.
func WithBFSMode(mode Mode) BFSOption {
	return func(o *bfsOptions) { o.mode = mode }
}

// WithBFSRestricted limits the traversal to vertices in set.
func WithBFSRestricted(set VertexSet) BFSOption {
	return func(o *bfsOptions) { o.restricted = set }
}

// WithBFSRoots adds extra seed vertices, enqueued at depth 0 alongside the
// primary root before traversal begins. The Provan-Shier search seeds a
// frontier from an entire set rather than a single vertex, so multi-source
// BFS is a first-class collaborator rather than a one-off loop at call sites.
func WithBFSRoots(roots []int) BFSOption {
	return func(o *bfsOptions) { o.extraRoots = roots }
}

// WithBFSOnVisit installs a hook invoked when a vertex is dequeued.
func WithBFSOnVisit(fn func(v int) error) BFSOption {
	return func(o *bfsOptions) { o.onVisit = fn }
}

// WithBFSMaxDepth limits the traversal to the given depth; -1 means
// unlimited.
func WithBFSMaxDepth(d int) BFSOption {
	return func(o *bfsOptions) { o.maxDepth = d }
}

// BFSResult captures a breadth-first traversal.
type BFSResult struct {
	Order   []int // vertices in visit order
	Parent  []int // Parent[v] = BFS parent, -1 for a root, -2 if unvisited
	Depth   []int // Depth[v], -1 if unvisited
	Visited []bool
}

// PathTo reconstructs the path from whichever root discovered v back to
// that root, root-first. It returns (nil, false) if v was never visited.
func (r *BFSResult) PathTo(v int) ([]int, bool) {
	if v < 0 || v >= len(r.Visited) || !r.Visited[v] {
		return nil, false
	}

	var rev []int
	for cur := v; cur != -1; cur = r.Parent[cur] {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}

// BFS performs a breadth-first traversal of g starting at root (plus any
// WithBFSRoots) honoring opts.
//
// Complexity:
//
//	Time:   O(V+E)
//	Memory: O(V)
func BFS(g *Graph, root int, opts ...BFSOption) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if root < 0 || root >= g.n {
		return nil, ErrStartVertexNotFound
	}

	o := defaultBFSOptions()
	for _, fn := range opts {
		fn(&o)
	}
	for _, r := range o.extraRoots {
		if r < 0 || r >= g.n {
			return nil, ErrVertexOutOfRange
		}
	}

	res := &BFSResult{
		Order:   make([]int, 0, g.n),
		Parent:  make([]int, g.n),
		Depth:   make([]int, g.n),
		Visited: make([]bool, g.n),
	}
	for v := 0; v < g.n; v++ {
		res.Parent[v] = -2
		res.Depth[v] = -1
	}

	queue := list.New()
	seed := func(v int) {
		if res.Visited[v] {
			return
		}
		if o.restricted != nil && !o.restricted.Has(v) {
			return
		}
		res.Visited[v] = true
		res.Parent[v] = -1
		res.Depth[v] = 0
		queue.PushBack(v)
	}
	seed(root)
	for _, r := range o.extraRoots {
		seed(r)
	}

	for queue.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}

		front := queue.Remove(queue.Front()).(int)
		res.Order = append(res.Order, front)

		if o.onVisit != nil {
			if err := o.onVisit(front); err != nil {
				return res, fmt.Errorf("digraph: BFS OnVisit for %d: %w", front, err)
			}
		}

		if o.maxDepth >= 0 && res.Depth[front] >= o.maxDepth {
			continue
		}

		for _, e := range g.Neighbors(front, o.mode) {
			nxt := g.Endpoint(e, o.mode)
			if res.Visited[nxt] {
				continue
			}
			if o.restricted != nil && !o.restricted.Has(nxt) {
				continue
			}
			res.Visited[nxt] = true
			res.Parent[nxt] = front
			res.Depth[nxt] = res.Depth[front] + 1
			queue.PushBack(nxt)
		}
	}

	return res, nil
}
