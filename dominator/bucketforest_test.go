package dominator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/provanshier/gocuts/dominator"
)

func TestBucketForest_EmptyOnCreation(t *testing.T) {
	f := dominator.NewBucketForest(4)
	for i := 0; i < 4; i++ {
		require.True(t, f.IsEmpty(i))
	}
}

func TestBucketForest_InsertAndPopAny(t *testing.T) {
	f := dominator.NewBucketForest(4)
	f.Insert(0, 1)
	f.Insert(0, 2)

	require.False(t, f.IsEmpty(0))

	seen := map[int]bool{}
	seen[f.PopAny(0)] = true
	require.False(t, f.IsEmpty(0))
	seen[f.PopAny(0)] = true
	require.True(t, f.IsEmpty(0))

	require.True(t, seen[1])
	require.True(t, seen[2])
}

func TestBucketForest_DistinctBucketsIndependent(t *testing.T) {
	f := dominator.NewBucketForest(3)
	f.Insert(0, 1)
	f.Insert(1, 2)

	require.False(t, f.IsEmpty(0))
	require.False(t, f.IsEmpty(1))
	require.True(t, f.IsEmpty(2))

	require.Equal(t, 1, f.PopAny(0))
	require.Equal(t, 2, f.PopAny(1))
}
