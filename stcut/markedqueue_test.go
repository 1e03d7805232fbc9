package stcut

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkedQueue_PushAndMembership(t *testing.T) {
	q := newMarkedQueue(4)
	require.Equal(t, 0, q.size())

	require.NoError(t, q.push(1))
	require.NoError(t, q.push(2))
	require.True(t, q.isElement(1))
	require.False(t, q.isElement(3))
	require.Equal(t, 2, q.size())
	require.Equal(t, []int{1, 2}, q.asVector())
}

func TestMarkedQueue_PushDuplicateFails(t *testing.T) {
	q := newMarkedQueue(4)
	require.NoError(t, q.push(1))
	require.ErrorIs(t, q.push(1), ErrAlreadyMember)
}

func TestMarkedQueue_BatchNesting(t *testing.T) {
	q := newMarkedQueue(5)
	require.NoError(t, q.push(0))

	q.startBatch()
	require.NoError(t, q.push(1))
	require.NoError(t, q.push(2))

	q.startBatch()
	require.NoError(t, q.push(3))

	require.Equal(t, 4, q.size())

	q.popBackBatch() // undoes push(3)
	require.Equal(t, 3, q.size())
	require.False(t, q.isElement(3))
	require.True(t, q.isElement(1))

	q.popBackBatch() // undoes push(1), push(2)
	require.Equal(t, 1, q.size())
	require.False(t, q.isElement(1))
	require.False(t, q.isElement(2))
	require.True(t, q.isElement(0))
}
