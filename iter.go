package dsa

import "iter"

// All returns an iterator over the values of the queue from front to
// back. It does not remove them. The queue must not be modified
// during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range q.len {
			if !yield(q.buf[q.index(i)]) {
				return
			}
		}
	}
}

// All returns an iterator over the values of the stack from the top
// down, the order in which Pop would return them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// All returns an iterator over the values of the priority queue in
// the order in which Dequeue would return them.
func (pq *PriorityQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range pq.high.All() {
			if !yield(v) {
				return
			}
		}
		for v := range pq.low.All() {
			if !yield(v) {
				return
			}
		}
	}
}
