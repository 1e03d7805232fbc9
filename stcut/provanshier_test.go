package stcut

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestSearch_SingleBranchEmitsOnePartition drives the generic engine with a
// hand-built pivot that fires exactly once at the root call, exercising the
// push/recurse/pop discipline on both the T branch and the S batch branch.
func TestSearch_SingleBranchEmitsOnePartition(t *testing.T) {
	p := func(S *markedQueue, T *elementStack) (int, []int, bool, error) {
		if S.size() == 0 && !T.isElement(0) && !T.isElement(1) {
			return 0, []int{0}, true, nil
		}

		return 0, nil, false, nil
	}

	var partitions [][]int
	srch := &search{
		n:     2,
		pivot: p,
		logger: zap.NewNop(),
		emit: func(part []int) {
			partitions = append(partitions, append([]int(nil), part...))
		},
	}

	S := newMarkedQueue(2)
	T := newElementStack(2)
	require.NoError(t, srch.run(S, T))

	require.Equal(t, [][]int{{0}}, partitions)
	require.Equal(t, 0, S.size())
	require.Equal(t, 0, len(T.items))
}

// TestSearch_NeverEmitsTrivialPartitions checks that a pivot which never
// finds a vertex produces zero partitions, since S starts (and stays) empty.
func TestSearch_NeverEmitsTrivialPartitions(t *testing.T) {
	p := func(S *markedQueue, T *elementStack) (int, []int, bool, error) {
		return 0, nil, false, nil
	}

	var partitions [][]int
	srch := &search{
		n:      1,
		pivot:  p,
		logger: zap.NewNop(),
		emit: func(part []int) {
			partitions = append(partitions, part)
		},
	}

	require.NoError(t, srch.run(newMarkedQueue(1), newElementStack(1)))
	require.Empty(t, partitions)
}

// TestSearch_PivotErrorPropagates ensures a pivot failure aborts the search
// without emitting anything.
func TestSearch_PivotErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	p := func(S *markedQueue, T *elementStack) (int, []int, bool, error) {
		return 0, nil, false, boom
	}

	var partitions [][]int
	srch := &search{
		n:      1,
		pivot:  p,
		logger: zap.NewNop(),
		emit: func(part []int) {
			partitions = append(partitions, part)
		},
	}

	err := srch.run(newMarkedQueue(1), newElementStack(1))
	require.ErrorIs(t, err, boom)
	require.Empty(t, partitions)
}
