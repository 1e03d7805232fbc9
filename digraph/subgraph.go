package digraph

// VertexMap translates between a subgraph's local vertex ids and the
// parent graph's vertex ids it was carved from: a local-to-global map and
// its global-to-local inverse.
type VertexMap struct {
	ToGlobal []int // ToGlobal[local] = global vertex id
	ToLocal  []int // ToLocal[global] = local vertex id, or -1 if excluded
}

// InducedSubgraph returns the subgraph induced by keep: a fresh Graph over
// the vertices in keep (renumbered contiguously from 0 in ascending global
// order) containing exactly the edges of g whose endpoints both lie in
// keep, plus the VertexMap relating local and global ids.
//
// Complexity: O(V+E)
func InducedSubgraph(g *Graph, keep VertexSet) (*Graph, *VertexMap, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	vm := &VertexMap{ToLocal: make([]int, g.n)}
	for v := 0; v < g.n; v++ {
		vm.ToLocal[v] = -1
	}
	for v := 0; v < g.n; v++ {
		if keep.Has(v) {
			vm.ToLocal[v] = len(vm.ToGlobal)
			vm.ToGlobal = append(vm.ToGlobal, v)
		}
	}

	b := NewBuilder(len(vm.ToGlobal))
	for id := range g.edges {
		from, to := g.From(id), g.To(id)
		if vm.ToLocal[from] == -1 || vm.ToLocal[to] == -1 {
			continue
		}
		if _, err := b.AddEdge(vm.ToLocal[from], vm.ToLocal[to]); err != nil {
			return nil, nil, err
		}
	}

	return b.Build(), vm, nil
}
