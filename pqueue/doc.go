// Package pqueue provides a binary-heap priority queue, generic over its
// element type, with configurable ascending (min-heap) or descending
// (max-heap) ordering.
//
// Two constructors cover the common cases:
//
//   - New[T cmp.Ordered]     — order elements by their natural < relation.
//   - NewFunc[T any](less)   — order elements by a caller-supplied comparator,
//     for composite entries such as (vertex, distance) pairs.
//
// The queue supports Push, Pop, Peek, Len, and Empty. Pop and Peek report
// ok=false on an empty queue rather than panicking, so exhaustion is an
// ordinary control-flow outcome for the search algorithms built on top.
//
// Ordering contract:
//
//   - Ascending (default): Pop returns the minimum element.
//   - Descending (WithDescending): Pop returns the maximum element.
//   - The heap is NOT stable: elements that compare equal are returned in
//     no guaranteed order, in particular not insertion order.
//
// Complexity:
//
//   - Push: O(log N) — sift-up after append.
//   - Pop:  O(log N) — swap root with last, shrink, sift-down.
//   - Peek, Len, Empty: O(1).
//   - Space: O(N) in a single backing slice.
//
// A Queue is not safe for concurrent use; each algorithm run owns its own
// instance for the duration of the run.
package pqueue
