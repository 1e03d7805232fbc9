package digraph

// SCCResult assigns every vertex of a graph to a strongly connected
// component, numbered in reverse topological order of the component DAG —
// the numbering CutPivot_MinCuts relies on when it contracts the reverse
// residual graph.
type SCCResult struct {
	Comp    []int // Comp[v] = component id of v
	NumComp int
}

// SCC computes the strongly connected components of g using Tarjan's
// algorithm, implemented over an explicit stack so recursion depth never
// tracks graph depth.
//
// Complexity:
//
//	Time:   O(V+E)
//	Memory: O(V)
func SCC(g *Graph) (*SCCResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.n
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for v := range index {
		index[v] = -1
		comp[v] = -1
	}

	var stack []int
	nextIndex := 0
	numComp := 0

	type call struct {
		v       int
		edgePos int
	}

	for root := 0; root < n; root++ {
		if index[root] != -1 {
			continue
		}

		work := []call{{v: root, edgePos: 0}}
		index[root] = nextIndex
		lowlink[root] = nextIndex
		nextIndex++
		stack = append(stack, root)
		onStack[root] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.v
			out := g.Out(v)

			if top.edgePos < len(out) {
				e := out[top.edgePos]
				top.edgePos++
				w := g.To(e)

				switch {
				case index[w] == -1:
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					work = append(work, call{v: w, edgePos: 0})
				case onStack[w]:
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			// v's adjacency is exhausted.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = numComp
					if w == v {
						break
					}
				}
				numComp++
			}
		}
	}

	return &SCCResult{Comp: comp, NumComp: numComp}, nil
}

// Contract builds the quotient graph over r's components: one vertex per
// component, one edge per distinct (component-of-from, component-of-to)
// pair with from-component != to-component. Parallel edges and self-loops
// introduced by the contraction are collapsed, matching how
// CutPivot_MinCuts consumes the contracted reverse residual graph — it
// only needs reachability between components, never edge multiplicity.
//
// Complexity: O(V+E)
func Contract(g *Graph, r *SCCResult) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[[2]int]bool)
	b := NewBuilder(r.NumComp)
	for id := range g.edges {
		cu, cv := r.Comp[g.From(id)], r.Comp[g.To(id)]
		if cu == cv {
			continue
		}
		key := [2]int{cu, cv}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := b.AddEdge(cu, cv); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}
