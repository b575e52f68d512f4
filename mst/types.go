// Package mst declares the sentinel errors and the Tree result type
// shared by Prim and Kruskal.
package mst

import (
	"errors"

	"github.com/solvekit/solvekit/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrStartOutOfRange is returned when Prim's start index is invalid.
	ErrStartOutOfRange = errors.New("mst: start vertex index out of range")
)

// Tree is a spanning tree (or, for Kruskal on disconnected input, a
// spanning forest): the selected edges and their total weight.
type Tree struct {
	// Edges holds the selected edges in the order they were adopted.
	Edges []core.WeightedEdge

	// Weight is the sum of the selected edge weights.
	Weight float64
}

// Spans reports whether the tree connects all n vertices of the source
// graph, i.e. whether it holds exactly n-1 edges. A single-vertex graph
// (n == 1) is trivially spanned by an empty tree.
func (t *Tree) Spans(n int) bool {
	if n == 0 {
		return false
	}

	return len(t.Edges) == n-1
}
