// Package core declares the edge types and sentinel errors shared by
// Graph and WeightedGraph.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an endpoint index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrVertexNotFound indicates a vertex value that is not present in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is an unweighted connection between two vertices, referenced by index.
type Edge struct {
	// U is the index of the source vertex.
	U int

	// V is the index of the destination vertex.
	V int
}

// Reversed returns the edge pointing the opposite way.
// Used to mirror every insertion in an undirected graph.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// String renders the edge as "u -> v".
func (e Edge) String() string { return fmt.Sprintf("%d -> %d", e.U, e.V) }

// WeightedEdge is a weighted connection between two vertices.
// Weight is a float64 so it supports both ordering (edge comparison in the
// MST and shortest-path packages) and addition (total path cost).
type WeightedEdge struct {
	// U is the index of the source vertex.
	U int

	// V is the index of the destination vertex.
	V int

	// Weight is the cost of traversing the edge.
	Weight float64
}

// Reversed returns the edge pointing the opposite way with the same weight.
func (e WeightedEdge) Reversed() WeightedEdge {
	return WeightedEdge{U: e.V, V: e.U, Weight: e.Weight}
}

// String renders the edge as "u -(w)-> v".
func (e WeightedEdge) String() string {
	return fmt.Sprintf("%d -(%g)-> %d", e.U, e.Weight, e.V)
}
