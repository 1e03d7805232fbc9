package dominator

import (
	"go.uber.org/zap"

	"github.com/provanshier/gocuts/digraph"
)

// TreeOption configures Tree.
type TreeOption func(*treeOptions)

type treeOptions struct {
	logger      *zap.Logger
	emitTree    bool
	emitLeftout bool
}

func defaultTreeOptions() treeOptions {
	return treeOptions{logger: zap.NewNop()}
}

// WithLogger injects a structured logger. Debug-level records capture
// each bucket drain during the main pass.
func WithLogger(l *zap.Logger) TreeOption {
	return func(o *treeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEmitTree requests that Tree also materialize the dominator tree as
// a *digraph.Graph on the same vertex set, with unreachable vertices left
// isolated.
func WithEmitTree() TreeOption {
	return func(o *treeOptions) { o.emitTree = true }
}

// WithEmitLeftout requests that Tree also collect the vertices
// unreachable from root.
func WithEmitLeftout() TreeOption {
	return func(o *treeOptions) { o.emitLeftout = true }
}

// Result is the output of Tree.
type Result struct {
	// Dom[v] is v's immediate dominator: -1 for root, -2 if v is
	// unreachable from root, otherwise a vertex id.
	Dom []int
	// Tree is the dominator tree as a graph, present only if
	// WithEmitTree was given.
	Tree *digraph.Graph
	// Leftout holds the vertices unreachable from root, present only
	// if WithEmitLeftout was given.
	Leftout []int
}

func opposite(mode digraph.Mode) digraph.Mode {
	if mode == digraph.Out {
		return digraph.In
	}

	return digraph.Out
}

// Tree computes the dominator tree of g rooted at root, walking edges in
// the direction mode specifies (In conceptually reverses every edge for
// the whole computation), via the Lengauer-Tarjan algorithm: DFS
// numbering, semidominators via LINK/EVAL/COMPRESS over a path-compressed
// forest, bucket-drain per preorder step, and a preorder fix-up pass.
//
// Complexity:
//
//	Time:   O((|V|+|E|) * log|V|), since LINK is the simple unbalanced variant
//	Memory: O(|V|+|E|)
func Tree(g *digraph.Graph, root int, mode digraph.Mode, opts ...TreeOption) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumVertices()
	if root < 0 || root >= n {
		return nil, ErrRootOutOfRange
	}
	if mode != digraph.Out && mode != digraph.In {
		return nil, ErrInvalidMode
	}

	o := defaultTreeOptions()
	for _, fn := range opts {
		fn(&o)
	}

	invmode := opposite(mode)

	dfsRes, err := digraph.DFS(g, root, digraph.WithDFSMode(mode))
	if err != nil {
		return nil, err
	}

	semi := make([]int, n)   // 1-based; 0 means unset
	vertex := make([]int, n) // vertex[i]-1 = i-th preorder vertex, for i < componentSize
	componentSize := len(dfsRes.Order)
	for i, v := range dfsRes.Order {
		semi[v] = i + 1
		vertex[i] = v + 1
	}

	res := &Result{Dom: make([]int, n)}
	for v := range res.Dom {
		res.Dom[v] = -2
	}

	if o.emitLeftout {
		for v := 0; v < n; v++ {
			if dfsRes.Parent[v] < -1 {
				res.Leftout = append(res.Leftout, v)
			}
		}
	}

	// Pruned predecessor adjacency: for each reachable w, the reachable
	// vertices v with an edge v->w in the mode direction.
	pred := make([][]int, n)
	for w := 0; w < n; w++ {
		for _, e := range g.Neighbors(w, invmode) {
			pred[w] = append(pred[w], g.Endpoint(e, invmode))
		}
	}
	for w := range pred {
		list := pred[w]
		i := 0
		for i < len(list) {
			if dfsRes.Parent[list[i]] >= -1 {
				i++
			} else {
				list[i] = list[len(list)-1]
				list = list[:len(list)-1]
			}
		}
		pred[w] = list
	}

	ancestor := make([]int, n)
	label := make([]int, n)
	for v := range label {
		label[v] = v
	}
	bucket := NewBucketForest(n)

	eval := func(v int) int {
		if ancestor[v] == 0 {
			return v
		}
		compress(v, ancestor, label, semi)

		return label[v]
	}

	for i := componentSize - 1; i > 0; i-- {
		w := vertex[i] - 1
		for _, v := range pred[w] {
			u := eval(v)
			if semi[u] < semi[w] {
				semi[w] = semi[u]
			}
		}
		bucket.Insert(vertex[semi[w]-1]-1, w)
		link(dfsRes.Parent[w], w, ancestor)

		pw := dfsRes.Parent[w]
		for !bucket.IsEmpty(pw) {
			v := bucket.PopAny(pw)
			u := eval(v)
			if semi[u] < semi[v] {
				res.Dom[v] = u
			} else {
				res.Dom[v] = pw
			}
		}
		o.logger.Debug("dominator: bucket drain",
			zap.Int("w", w),
			zap.Int("parent", pw),
		)
	}

	for i := 1; i < componentSize; i++ {
		w := vertex[i] - 1
		if res.Dom[w] != vertex[semi[w]-1]-1 {
			res.Dom[w] = res.Dom[res.Dom[w]]
		}
	}
	res.Dom[root] = -1

	if o.emitTree {
		b := digraph.NewBuilder(n)
		for v := 0; v < n; v++ {
			if v == root || res.Dom[v] < 0 {
				continue
			}
			var err error
			if mode == digraph.Out {
				_, err = b.AddEdge(res.Dom[v], v)
			} else {
				_, err = b.AddEdge(v, res.Dom[v])
			}
			if err != nil {
				return nil, err
			}
		}
		res.Tree = b.Build()
	}

	return res, nil
}

// link records ancestor[w] = v+1, the simple (non-balanced) LINK variant.
// With path compression alone this gives the O(m log n) running time of
// simple Lengauer-Tarjan, not the O(m * alpha(m,n)) of the balanced one.
func link(v, w int, ancestor []int) {
	ancestor[w] = v + 1
}

// compress walks up the LINK/EVAL forest from v via an explicit stack,
// then re-processes the path from the highest non-root element down,
// propagating the minimum-semidominator label and splicing every visited
// node's ancestor pointer to the path top's ancestor.
func compress(v int, ancestor, label, semi []int) {
	var path []int
	w := v
	for ancestor[w] != 0 {
		path = append(path, w)
		w = ancestor[w] - 1
	}
	if len(path) == 0 {
		return
	}

	top := path[len(path)-1]
	path = path[:len(path)-1]
	for len(path) > 0 {
		pretop := path[len(path)-1]
		path = path[:len(path)-1]

		if semi[label[top]] < semi[label[pretop]] {
			label[pretop] = label[top]
		}
		ancestor[pretop] = ancestor[top]
		top = pretop
	}
}
