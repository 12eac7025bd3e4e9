package dsa

const minQueueCap = 8

// A Queue collects values and returns them in FIFO order. A zero
// value Queue is ready to use.
//
// Values are kept in a ring buffer that doubles in size when it fills
// up, so both Enqueue and Dequeue run in amortized constant time.
type Queue[T any] struct {
	buf  []T
	head int
	len  int
}

// Enqueue adds v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	if q.len == len(q.buf) {
		q.grow()
	}

	q.buf[q.index(q.len)] = v
	q.len++
}

// Dequeue removes and returns the value at the front of the queue. If
// the queue is empty, it returns the zero value and false.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.len == 0 {
		return v, false
	}

	v = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero

	q.head = q.index(1)
	q.len--
	if q.len == 0 {
		q.head = 0
	}

	return v, true
}

// Peek returns the value at the front of the queue without removing
// it. If the queue is empty, it returns the zero value and false.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.len == 0 {
		return v, false
	}
	return q.buf[q.head], true
}

// IsEmpty returns true if the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.len == 0
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.len
}

// index maps an offset from the front of the queue to a position in
// buf.
func (q *Queue[T]) index(offset int) int {
	return (q.head + offset) % len(q.buf)
}

func (q *Queue[T]) grow() {
	buf := make([]T, max(2*len(q.buf), minQueueCap))

	// Only called when full, so the two halves hold every value.
	n := copy(buf, q.buf[q.head:])
	copy(buf[n:], q.buf[:q.head])

	q.buf = buf
	q.head = 0
}
