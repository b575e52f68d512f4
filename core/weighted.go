// This file implements WeightedGraph, the weighted counterpart of Graph.
// The two types are kept separate rather than unified behind an edge-type
// parameter: the weighted algorithms (dijkstra, mst) need typed access to
// Weight, and a two-type API stays closer to how callers think about the
// distinction.
package core

import (
	"fmt"
	"strings"
)

// WeightedGraph is an undirected graph whose edges carry float64 weights.
// Indexing and growth semantics are identical to Graph: append-only
// vertices, stable indices, symmetric undirected insertion.
type WeightedGraph[V comparable] struct {
	vertices []V
	edges    [][]WeightedEdge
}

// NewWeightedGraph constructs a WeightedGraph pre-populated with the given
// vertices, indexed in argument order. Complexity: O(len(vertices)).
func NewWeightedGraph[V comparable](vertices ...V) *WeightedGraph[V] {
	g := &WeightedGraph[V]{
		vertices: make([]V, 0, len(vertices)),
		edges:    make([][]WeightedEdge, 0, len(vertices)),
	}
	for _, v := range vertices {
		g.AddVertex(v)
	}

	return g
}

// AddVertex appends v and returns its stable integer index.
// Complexity: O(1) amortized.
func (g *WeightedGraph[V]) AddVertex(v V) int {
	g.vertices = append(g.vertices, v)
	g.edges = append(g.edges, nil)

	return len(g.vertices) - 1
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *WeightedGraph[V]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of adjacency entries; undirected insertions
// count twice. Complexity: O(V).
func (g *WeightedGraph[V]) EdgeCount() int {
	n := 0
	for _, adj := range g.edges {
		n += len(adj)
	}

	return n
}

// VertexAt returns the vertex stored at index i.
// Returns ErrVertexOutOfRange if i is not a valid index. Complexity: O(1).
func (g *WeightedGraph[V]) VertexAt(i int) (V, error) {
	if i < 0 || i >= len(g.vertices) {
		var zero V
		return zero, fmt.Errorf("%w: %d (have %d vertices)", ErrVertexOutOfRange, i, len(g.vertices))
	}

	return g.vertices[i], nil
}

// IndexOf returns the index of the first vertex equal to v; first match
// wins for duplicates. Complexity: O(V).
func (g *WeightedGraph[V]) IndexOf(v V) (int, bool) {
	for i, candidate := range g.vertices {
		if candidate == v {
			return i, true
		}
	}

	return -1, false
}

// AddEdge connects u and v by index with the given weight, inserting the
// edge and its reverse. Returns ErrVertexOutOfRange for invalid endpoints;
// on error the graph is left unmodified. Complexity: O(1) amortized.
func (g *WeightedGraph[V]) AddEdge(u, v int, weight float64) error {
	if err := g.checkIndex(u); err != nil {
		return err
	}
	if err := g.checkIndex(v); err != nil {
		return err
	}
	e := WeightedEdge{U: u, V: v, Weight: weight}
	g.edges[u] = append(g.edges[u], e)
	g.edges[v] = append(g.edges[v], e.Reversed())

	return nil
}

// AddEdgeBetween connects two vertices by value with the given weight.
// Returns ErrVertexNotFound when either value is absent. Complexity: O(V).
func (g *WeightedGraph[V]) AddEdgeBetween(a, b V, weight float64) error {
	u, ok := g.IndexOf(a)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, a)
	}
	v, ok := g.IndexOf(b)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, b)
	}

	return g.AddEdge(u, v, weight)
}

// Neighbors returns the vertex values adjacent to vertex i, in edge
// insertion order. Complexity: O(degree).
func (g *WeightedGraph[V]) Neighbors(i int) ([]V, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	neighbors := make([]V, 0, len(g.edges[i]))
	for _, e := range g.edges[i] {
		neighbors = append(neighbors, g.vertices[e.V])
	}

	return neighbors, nil
}

// EdgesOf returns a copy of the adjacency list of vertex i.
// Complexity: O(degree).
func (g *WeightedGraph[V]) EdgesOf(i int) ([]WeightedEdge, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]WeightedEdge, len(g.edges[i]))
	copy(out, g.edges[i])

	return out, nil
}

// String renders one line per vertex: "value -> [(neighbor, weight) ...]".
func (g *WeightedGraph[V]) String() string {
	var sb strings.Builder
	for i, v := range g.vertices {
		fmt.Fprintf(&sb, "%v ->", v)
		for _, e := range g.edges[i] {
			fmt.Fprintf(&sb, " (%v, %g)", g.vertices[e.V], e.Weight)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// checkIndex validates that i addresses an existing vertex.
func (g *WeightedGraph[V]) checkIndex(i int) error {
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("%w: %d (have %d vertices)", ErrVertexOutOfRange, i, len(g.vertices))
	}

	return nil
}
