package dsa_test

import (
	"slices"
	"testing"

	"deedles.dev/dsa"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s dsa.Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	v, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, []int{3, 2, 1}, slices.Collect(s.All()))

	v, _ = s.Pop()
	require.Equal(t, 3, v)
	v, _ = s.Pop()
	require.Equal(t, 2, v)
	require.Equal(t, 1, s.Len())
	require.False(t, s.IsEmpty())

	v, _ = s.Pop()
	require.Equal(t, 1, v)
	require.True(t, s.IsEmpty())
}

func TestStackEmpty(t *testing.T) {
	var s dsa.Stack[string]

	v, ok := s.Pop()
	require.False(t, ok)
	require.Equal(t, "", v)

	v, ok = s.Peek()
	require.False(t, ok)
	require.Equal(t, "", v)
	require.Equal(t, 0, s.Len())

	s.Push("a")
	v, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestStackRoundTrip(t *testing.T) {
	var s dsa.Stack[int]
	for i := range 100 {
		s.Push(i)
	}
	for i := 99; i >= 0; i-- {
		v, ok := s.Pop()
		if !ok || v != i {
			t.Fatalf("expected %v but got %v (%v)", i, v, ok)
		}
	}
	if !s.IsEmpty() {
		t.Fatal(s.Len())
	}
}

func BenchmarkStack(b *testing.B) {
	var s dsa.Stack[int]
	for i := range b.N {
		s.Push(i)
		if i%2 == 1 {
			s.Pop()
		}
	}
}
