// This file implements Graph, the unweighted index-addressed graph.
package core

import (
	"fmt"
	"strings"
)

// Graph is an undirected, unweighted graph generic over the vertex type.
//
// Vertices live in an append-only slice; a vertex's index is assigned at
// insertion and never changes. The adjacency list edges[i] holds every
// edge leaving vertex i.
type Graph[V comparable] struct {
	vertices []V
	edges    [][]Edge
}

// NewGraph constructs a Graph pre-populated with the given vertices,
// indexed in argument order. Complexity: O(len(vertices)).
func NewGraph[V comparable](vertices ...V) *Graph[V] {
	g := &Graph[V]{
		vertices: make([]V, 0, len(vertices)),
		edges:    make([][]Edge, 0, len(vertices)),
	}
	for _, v := range vertices {
		g.AddVertex(v)
	}

	return g
}

// AddVertex appends v and returns its stable integer index.
// Duplicate values are allowed; each occurrence gets its own index.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) int {
	g.vertices = append(g.vertices, v)
	g.edges = append(g.edges, nil)

	return len(g.vertices) - 1
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of adjacency entries. Every undirected
// insertion contributes two entries (the edge and its reverse).
// Complexity: O(V).
func (g *Graph[V]) EdgeCount() int {
	n := 0
	for _, adj := range g.edges {
		n += len(adj)
	}

	return n
}

// VertexAt returns the vertex stored at index i.
// Returns ErrVertexOutOfRange if i is not a valid index. Complexity: O(1).
func (g *Graph[V]) VertexAt(i int) (V, error) {
	if i < 0 || i >= len(g.vertices) {
		var zero V
		return zero, fmt.Errorf("%w: %d (have %d vertices)", ErrVertexOutOfRange, i, len(g.vertices))
	}

	return g.vertices[i], nil
}

// IndexOf returns the index of the first vertex equal to v, scanning in
// insertion order. ok is false when v is absent. With duplicate vertex
// values the first match wins — a documented limitation, see package doc.
// Complexity: O(V).
func (g *Graph[V]) IndexOf(v V) (int, bool) {
	for i, candidate := range g.vertices {
		if candidate == v {
			return i, true
		}
	}

	return -1, false
}

// AddEdge connects vertices u and v by index. Because the graph is
// undirected, the edge is appended to u's adjacency list and its reverse
// to v's. Returns ErrVertexOutOfRange when either endpoint is invalid;
// on error the graph is left unmodified. Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v int) error {
	if err := g.checkIndex(u); err != nil {
		return err
	}
	if err := g.checkIndex(v); err != nil {
		return err
	}
	e := Edge{U: u, V: v}
	g.edges[u] = append(g.edges[u], e)
	g.edges[v] = append(g.edges[v], e.Reversed())

	return nil
}

// AddEdgeBetween connects two vertices by value, resolving each through
// IndexOf. Returns ErrVertexNotFound when either value is absent.
// Complexity: O(V) for the lookups.
func (g *Graph[V]) AddEdgeBetween(a, b V) error {
	u, ok := g.IndexOf(a)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, a)
	}
	v, ok := g.IndexOf(b)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, b)
	}

	return g.AddEdge(u, v)
}

// Neighbors returns the vertex values adjacent to vertex i, in edge
// insertion order. The slice is freshly allocated; mutating it does not
// affect the graph. Complexity: O(degree).
func (g *Graph[V]) Neighbors(i int) ([]V, error) {
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
func (g *Graph[V]) EdgesOf(i int) ([]Edge, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.edges[i]))
	copy(out, g.edges[i])

	return out, nil
}

// String renders one line per vertex: "value -> [neighbor values]".
// Intended for debugging and examples, not machine parsing.
func (g *Graph[V]) String() string {
	var sb strings.Builder
	for i, v := range g.vertices {
		neighbors, _ := g.Neighbors(i)
		fmt.Fprintf(&sb, "%v -> %v\n", v, neighbors)
	}

	return sb.String()
}

// checkIndex validates that i addresses an existing vertex.
func (g *Graph[V]) checkIndex(i int) error {
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("%w: %d (have %d vertices)", ErrVertexOutOfRange, i, len(g.vertices))
	}

	return nil
}
