// Package mst computes minimum spanning trees of a core.WeightedGraph
// with two classic algorithms.
//
// Prim (Jarník) grows a tree outward from a start vertex: at every step
// the minimum-weight edge crossing the visited/unvisited cut is extracted
// from a min-heap and its far endpoint joins the tree. On a disconnected
// graph the result spans only the connected component containing the
// start vertex — documented behavior, not an error.
//
// Kruskal sorts all edges by ascending weight and joins components
// through a disjoint-set (union-find) structure with path compression and
// union by rank. On a disconnected graph it yields a minimum spanning
// forest.
//
// Both assume non-negative weights; this is a precondition shared with
// the dijkstra package and is not checked at runtime.
//
// Complexity:
//
//   - Prim:    O(E log V) time, O(V + E) memory.
//   - Kruskal: O(E log E + α(V)·E) ≈ O(E log V) time, O(V + E) memory.
package mst
