package dsa

// A Stack collects values and returns them in LIFO order. A zero
// value Stack is ready to use.
type Stack[T any] struct {
	items []T
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the value on top of the stack. If the stack
// is empty, it returns the zero value and false.
func (s *Stack[T]) Pop() (v T, ok bool) {
	last := len(s.items) - 1
	if last < 0 {
		return v, false
	}

	v = s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]

	return v, true
}

// Peek returns the value on top of the stack without removing it. If
// the stack is empty, it returns the zero value and false.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
