// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on a core.WeightedGraph.
//
// Dijkstra computes the minimum-cost path from a root vertex to every
// other reachable vertex in a graph with non-negative edge weights. It
// processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances as shorter paths
// are found.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V pops from the heap.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance slice and predecessor map.
//   - O(E) worst case for heap entries under lazy decrease-key.
//
// Implementation notes:
//
//   - Decrease-key is lazy: a strictly shorter path re-pushes the vertex,
//     and stale entries are discarded on pop when their distance no longer
//     matches the recorded best.
//   - Unreachable vertices report a distance of +Inf and have no
//     predecessor entry.
//   - Non-negative weights are a precondition for correctness; they are
//     not re-verified per edge at runtime.
//
// Errors (sentinel):
//
//	ErrNilGraph       - the graph pointer is nil.
//	ErrVertexNotFound - the root vertex is not in the graph.
//	ErrNegativeStart  - WithStartDistance was given a negative value.
//	ErrNoPath         - PathTo was asked for an unreachable vertex.
package dijkstra
