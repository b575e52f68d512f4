// Package core defines the central graph types of solvekit: Graph for
// unweighted adjacency and WeightedGraph for weighted adjacency, both
// generic over the vertex type.
//
// Vertices are index-addressed: AddVertex appends the vertex and returns
// its stable integer index (insertion order = index). Edges reference
// endpoints by index, and every graph is undirected — adding edge (u,v)
// inserts both (u,v) into u's adjacency list and the reversed (v,u) into
// v's. Vertices and edges only grow; there is no deletion.
//
// Both graph kinds are plain containers: the search, dijkstra, and mst
// packages treat them as read-only. A graph is owned by the caller that
// constructs it, and no synchronization is provided — callers must not
// mutate a graph while an algorithm is traversing it.
//
// Errors:
//
//	ErrVertexOutOfRange - an endpoint index is outside [0, VertexCount).
//	ErrVertexNotFound   - a vertex value lookup found no match.
//
// Lookup by value (IndexOf) is an O(n) linear scan; when duplicate vertex
// values exist the first inserted match wins. This is a documented
// limitation of value-addressed helpers, not a defect — callers needing
// unambiguous addressing should hold on to the indices AddVertex returns.
package core
