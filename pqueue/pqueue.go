// Package pqueue implements the binary-heap priority queue used by the
// Dijkstra, Prim, and A* packages of this module.
package pqueue

import (
	"cmp"
	"errors"
)

// ErrNilLess is the panic value raised by NewFunc when it receives a nil
// comparator. A nil comparator is a programming error, not a runtime
// condition, so construction fails loudly rather than returning an error
// that every heap-backed algorithm would have to thread through.
var ErrNilLess = errors.New("pqueue: nil less comparator")

// Option configures a Queue at construction time.
type Option func(*config)

// config holds construction-time settings shared by both constructors.
type config struct {
	descending bool
	capacity   int
}

// WithDescending flips the queue into max-heap mode: Pop returns the
// largest element per the comparison relation instead of the smallest.
func WithDescending() Option {
	return func(c *config) { c.descending = true }
}

// WithCapacity pre-allocates the backing slice for n elements.
// Values ≤ 0 are ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Queue is a binary-heap priority queue over T.
// The zero value is not usable; construct with New or NewFunc.
type Queue[T any] struct {
	data []T
	less func(a, b T) bool
}

// New constructs a Queue ordered by the natural < relation of T.
// Ascending (min-heap) by default; use WithDescending for a max-heap.
// Complexity: O(1).
func New[T cmp.Ordered](opts ...Option) *Queue[T] {
	return NewFunc(func(a, b T) bool { return a < b }, opts...)
}

// NewFunc constructs a Queue ordered by the supplied comparator.
// less(a, b) must report whether a sorts strictly before b; WithDescending
// inverts the relation. Panics with ErrNilLess if less is nil.
// Complexity: O(1).
func NewFunc[T any](less func(a, b T) bool, opts ...Option) *Queue[T] {
	if less == nil {
		panic(ErrNilLess)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	q := &Queue[T]{}
	if cfg.descending {
		q.less = func(a, b T) bool { return less(b, a) }
	} else {
		q.less = less
	}
	if cfg.capacity > 0 {
		q.data = make([]T, 0, cfg.capacity)
	}

	return q
}

// Len returns the number of queued elements. Complexity: O(1).
func (q *Queue[T]) Len() int { return len(q.data) }

// Empty reports whether the queue holds no elements. Complexity: O(1).
func (q *Queue[T]) Empty() bool { return len(q.data) == 0 }

// Push inserts item, restoring the heap invariant by sifting it up from
// the last slot. Complexity: O(log N) amortized.
func (q *Queue[T]) Push(item T) {
	q.data = append(q.data, item)
	q.up(len(q.data) - 1)
}

// Peek returns the extremal element without removing it.
// ok is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (item T, ok bool) {
	if len(q.data) == 0 {
		return item, false
	}

	return q.data[0], true
}

// Pop removes and returns the extremal element per the configured ordering:
// the minimum when ascending, the maximum when descending.
// ok is false when the queue is empty. Complexity: O(log N).
func (q *Queue[T]) Pop() (item T, ok bool) {
	n := len(q.data)
	if n == 0 {
		return item, false
	}
	item = q.data[0]
	q.data[0] = q.data[n-1]
	var zero T
	q.data[n-1] = zero // release the slot so the GC can reclaim pointer elements
	q.data = q.data[:n-1]
	if len(q.data) > 0 {
		q.down(0)
	}

	return item, true
}

// up restores the heap invariant by moving the element at index i toward
// the root while it sorts before its parent.
func (q *Queue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.data[i], q.data[parent]) {
			break
		}
		q.data[i], q.data[parent] = q.data[parent], q.data[i]
		i = parent
	}
}

// down restores the heap invariant by moving the element at index i toward
// the leaves while a child sorts before it.
func (q *Queue[T]) down(i int) {
	n := len(q.data)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && q.less(q.data[right], q.data[left]) {
			smallest = right
		}
		if !q.less(q.data[smallest], q.data[i]) {
			return
		}
		q.data[i], q.data[smallest] = q.data[smallest], q.data[i]
		i = smallest
	}
}
