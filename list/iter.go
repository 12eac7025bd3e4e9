package list

import "iter"

// All returns an iterator over the values of the list from head to
// tail.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range ls.Nodes() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes of the list from head to
// tail. The list must not be modified during iteration.
func (ls *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}
