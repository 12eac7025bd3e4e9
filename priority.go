package dsa

// A PriorityQueue is a FIFO queue with two tiers. Values enqueued as
// high priority are always returned before any low priority value,
// regardless of the order in which they were added. Within a tier,
// values come out in the order they went in. A zero value
// PriorityQueue is ready to use.
//
// There is no aging, so low priority values wait for as long as high
// priority values keep arriving.
type PriorityQueue[T any] struct {
	high, low Queue[T]
}

// Enqueue adds v to the back of the high priority tier if high is
// true, and to the back of the low priority tier otherwise.
func (pq *PriorityQueue[T]) Enqueue(v T, high bool) {
	pq.tier(high).Enqueue(v)
}

// Dequeue removes and returns the front value of the high priority
// tier, or of the low priority tier if there are no high priority
// values. If both are empty, it returns the zero value and false.
func (pq *PriorityQueue[T]) Dequeue() (v T, ok bool) {
	return pq.next().Dequeue()
}

// Peek returns the value that Dequeue would return without removing
// it.
func (pq *PriorityQueue[T]) Peek() (v T, ok bool) {
	return pq.next().Peek()
}

// IsEmpty returns true if neither tier holds any values.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.high.IsEmpty() && pq.low.IsEmpty()
}

// Len returns the total number of values across both tiers.
func (pq *PriorityQueue[T]) Len() int {
	return pq.high.Len() + pq.low.Len()
}

func (pq *PriorityQueue[T]) tier(high bool) *Queue[T] {
	if high {
		return &pq.high
	}
	return &pq.low
}

func (pq *PriorityQueue[T]) next() *Queue[T] {
	return pq.tier(!pq.high.IsEmpty())
}
