package digraph_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/provanshier/gocuts/digraph"
)

func buildLinear(t *testing.T) *digraph.Graph {
	t.Helper()
	b := digraph.NewBuilder(3)
	_, err := b.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2)
	require.NoError(t, err)

	return b.Build()
}

func TestDFS_NilGraph(t *testing.T) {
	_, err := digraph.DFS(nil, 0)
	require.ErrorIs(t, err, digraph.ErrGraphNil)
}

func TestDFS_RootOutOfRange(t *testing.T) {
	g := buildLinear(t)
	_, err := digraph.DFS(g, 5)
	require.ErrorIs(t, err, digraph.ErrStartVertexNotFound)
}

func TestDFS_LinearDiscoveryOrder(t *testing.T) {
	g := buildLinear(t)

	res, err := digraph.DFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
	require.Equal(t, -1, res.Parent[0])
	require.Equal(t, 0, res.Parent[1])
	require.Equal(t, 1, res.Parent[2])
	require.Equal(t, []int{0, 1, 2}, res.Depth)
}

func TestDFS_UnreachableVertexMarkedUnvisited(t *testing.T) {
	b := digraph.NewBuilder(3)
	_, _ = b.AddEdge(0, 1)
	g := b.Build()

	res, err := digraph.DFS(g, 0)
	require.NoError(t, err)
	require.False(t, res.Visited[2])
	require.Equal(t, -2, res.Parent[2])
	require.Equal(t, -1, res.Depth[2])
}

func TestDFS_Cycle(t *testing.T) {
	b := digraph.NewBuilder(3)
	_, _ = b.AddEdge(0, 1)
	_, _ = b.AddEdge(1, 2)
	_, _ = b.AddEdge(2, 0)
	g := b.Build()

	res, err := digraph.DFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, 3)
}

func TestDFS_OnVisitErrorAborts(t *testing.T) {
	g := buildLinear(t)
	halt := errors.New("halt")

	res, err := digraph.DFS(g, 0, digraph.WithDFSOnVisit(func(v int) error {
		if v == 1 {
			return halt
		}

		return nil
	}))
	require.ErrorIs(t, err, halt)
	require.Equal(t, []int{0, 1}, res.Order)
}

func TestDFS_Restricted(t *testing.T) {
	g := buildLinear(t)
	restricted := digraph.VertexSetOf(3, []int{0, 1})

	res, err := digraph.DFS(g, 0, digraph.WithDFSRestricted(restricted))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)
	require.False(t, res.Visited[2])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildLinear(t)

	res, err := digraph.DFS(g, 0, digraph.WithDFSMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)
}

func TestDFS_InMode(t *testing.T) {
	g := buildLinear(t)

	res, err := digraph.DFS(g, 2, digraph.WithDFSMode(digraph.In))
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, res.Order)
}

func TestDFS_ContextCancellation(t *testing.T) {
	b := digraph.NewBuilder(2)
	_, _ = b.AddEdge(0, 1)
	g := b.Build()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := digraph.DFS(g, 0, digraph.WithDFSContext(ctx))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
