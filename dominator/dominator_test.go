package dominator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/provanshier/gocuts/digraph"
	"github.com/provanshier/gocuts/dominator"
)

func TestTree_NilGraph(t *testing.T) {
	_, err := dominator.Tree(nil, 0, digraph.Out)
	require.ErrorIs(t, err, dominator.ErrGraphNil)
}

func TestTree_RootOutOfRange(t *testing.T) {
	g := digraph.NewBuilder(2).Build()
	_, err := dominator.Tree(g, 5, digraph.Out)
	require.ErrorIs(t, err, dominator.ErrRootOutOfRange)
}

// TestTree_ClassicLengauerTarjanExample reproduces the textbook 13-vertex
// example used to introduce semidominators and the bucket-drain algorithm.
func TestTree_ClassicLengauerTarjanExample(t *testing.T) {
	b := digraph.NewBuilder(13)
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 4},
		{2, 1}, {2, 4}, {2, 5},
		{3, 6}, {3, 7},
		{4, 12},
		{5, 8},
		{6, 9},
		{7, 9}, {7, 10},
		{8, 5}, {8, 11},
		{9, 11},
		{10, 9},
		{11, 0}, {11, 9},
		{12, 8},
	}
	for _, e := range edges {
		_, err := b.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	g := b.Build()

	res, err := dominator.Tree(g, 0, digraph.Out)
	require.NoError(t, err)

	// 12's only predecessor is 4, so 4 is its immediate dominator.
	want := []int{-1, 0, 0, 0, 0, 0, 3, 3, 0, 0, 7, 0, 4}
	require.Equal(t, want, res.Dom)
}

// TestTree_UnreachableVertex reproduces the minimal unreachable-dominator
// example: a lone edge plus an isolated third vertex.
func TestTree_UnreachableVertex(t *testing.T) {
	b := digraph.NewBuilder(3)
	_, err := b.AddEdge(0, 1)
	require.NoError(t, err)
	g := b.Build()

	res, err := dominator.Tree(g, 0, digraph.Out, dominator.WithEmitLeftout())
	require.NoError(t, err)

	require.Equal(t, []int{-1, 0, -2}, res.Dom)
	require.Equal(t, []int{2}, res.Leftout)
}

func TestTree_EmitTreeBuildsDominatorEdges(t *testing.T) {
	// Diamond: 0->1, 0->2, 1->3, 2->3. idom(3) = 0.
	b := digraph.NewBuilder(4)
	_, _ = b.AddEdge(0, 1)
	_, _ = b.AddEdge(0, 2)
	_, _ = b.AddEdge(1, 3)
	_, _ = b.AddEdge(2, 3)
	g := b.Build()

	res, err := dominator.Tree(g, 0, digraph.Out, dominator.WithEmitTree())
	require.NoError(t, err)
	require.Equal(t, []int{-1, 0, 0, 0}, res.Dom)
	require.NotNil(t, res.Tree)
	require.Equal(t, 4, res.Tree.NumVertices())
	require.Equal(t, 3, res.Tree.NumEdges()) // 0->1, 0->2, 0->3

	var sawRootToThree bool
	for e := 0; e < res.Tree.NumEdges(); e++ {
		if res.Tree.From(e) == 0 && res.Tree.To(e) == 3 {
			sawRootToThree = true
		}
	}
	require.True(t, sawRootToThree)
}

// TestTree_InModeReversesOrientation exercises the reverse-oriented
// dominator tree CutPivot_AllCuts relies on: with mode In, dominance is
// computed over the reverse graph, and emitted tree edges run child -> parent.
func TestTree_InModeReversesOrientation(t *testing.T) {
	// 0->1, 0->2, 1->3, 2->3: reverse-rooted at 3, everything is dominated by 3.
	b := digraph.NewBuilder(4)
	_, _ = b.AddEdge(0, 1)
	_, _ = b.AddEdge(0, 2)
	_, _ = b.AddEdge(1, 3)
	_, _ = b.AddEdge(2, 3)
	g := b.Build()

	res, err := dominator.Tree(g, 3, digraph.In, dominator.WithEmitTree())
	require.NoError(t, err)
	require.Equal(t, -1, res.Dom[3])
	require.Equal(t, 3, res.Dom[1])
	require.Equal(t, 3, res.Dom[2])

	// Edges run child -> parent under mode In.
	var sawChildToParent bool
	for e := 0; e < res.Tree.NumEdges(); e++ {
		if res.Tree.From(e) == 1 && res.Tree.To(e) == 3 {
			sawChildToParent = true
		}
	}
	require.True(t, sawChildToParent)
}

func TestTree_InvalidMode(t *testing.T) {
	g := digraph.NewBuilder(1).Build()
	_, err := dominator.Tree(g, 0, digraph.Mode(99))
	require.ErrorIs(t, err, dominator.ErrInvalidMode)
}
