package dsa_test

import (
	"slices"
	"testing"

	"deedles.dev/dsa"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	var q dsa.Queue[string]
	q.Enqueue("5")
	q.Enqueue("7")
	q.Enqueue("9")
	require.Equal(t, 3, q.Len())

	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "5", v)

	v, _ = q.Dequeue()
	require.Equal(t, "7", v)

	v, ok = q.Peek()
	require.True(t, ok)
	require.Equal(t, "9", v)
	require.Equal(t, 1, q.Len())

	v, _ = q.Dequeue()
	require.Equal(t, "9", v)
	require.True(t, q.IsEmpty())

	v, ok = q.Dequeue()
	require.False(t, ok)
	require.Equal(t, "", v)

	v, ok = q.Peek()
	require.False(t, ok)
	require.Equal(t, "", v)
	require.Equal(t, 0, q.Len())
}

func TestQueueWrap(t *testing.T) {
	var q dsa.Queue[int]
	var next, want int

	// Interleave so that the front of the queue moves around the ring
	// buffer while it grows.
	for round := range 50 {
		for range round%7 + 3 {
			q.Enqueue(next)
			next++
		}
		for range round%5 + 1 {
			v, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, want, v)
			want++
		}
		require.Equal(t, next-want, q.Len())
	}

	expected := make([]int, 0, q.Len())
	for i := want; i < next; i++ {
		expected = append(expected, i)
	}
	require.Equal(t, expected, slices.Collect(q.All()))

	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		require.Equal(t, want, v)
		want++
	}
	require.Equal(t, next, want)
}

func TestQueueRoundTrip(t *testing.T) {
	var q dsa.Queue[int]
	for i := range 100 {
		q.Enqueue(i)
		require.False(t, q.IsEmpty())
	}
	for i := range 100 {
		require.False(t, q.IsEmpty())
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, q.IsEmpty())
}

func BenchmarkQueue(b *testing.B) {
	var q dsa.Queue[int]
	for i := range b.N {
		q.Enqueue(i)
		if i%2 == 1 {
			q.Dequeue()
		}
	}
}
