// This file implements Prim's (Jarník's) algorithm.
package mst

import (
	"fmt"

	"github.com/solvekit/solvekit/core"
	"github.com/solvekit/solvekit/pqueue"
)

// Prim computes a minimum spanning tree of g by growing outward from the
// vertex at index start, using a min-heap of candidate edges.
//
// Steps:
//  1. Validate: g non-nil (ErrNilGraph), start in range (ErrStartOutOfRange).
//  2. Mark start visited; push all its edges into the heap.
//  3. While the heap is non-empty: pop the lightest edge crossing the
//     visited/unvisited cut; if its far endpoint is already visited the
//     edge would close a cycle, skip it; otherwise adopt the edge, mark
//     the endpoint, and push that endpoint's edges to unvisited vertices.
//  4. Return the adopted edges and their total weight.
//
// If g is disconnected the returned tree spans only the component
// containing start — use Tree.Spans to detect whether the whole graph was
// covered. This is documented behavior, not an error.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[V comparable](g *core.WeightedGraph[V], start int) (*Tree, error) {
	// 1. Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrStartOutOfRange, start, n)
	}

	// 2. Seed the cut with the start vertex.
	visited := make([]bool, n)
	visited[start] = true
	pq := pqueue.NewFunc(func(a, b core.WeightedEdge) bool { return a.Weight < b.Weight })
	pushFrontier(g, pq, visited, start)

	tree := &Tree{Edges: make([]core.WeightedEdge, 0, n-1)}

	// 3. Main loop: adopt the lightest crossing edge until the component
	//    is exhausted or the tree is complete.
	for len(tree.Edges) < n-1 {
		e, ok := pq.Pop()
		if !ok {
			break // heap exhausted: start's component fully spanned
		}
		if visited[e.V] {
			continue // both endpoints in the tree, edge would close a cycle
		}
		visited[e.V] = true
		tree.Edges = append(tree.Edges, e)
		tree.Weight += e.Weight
		pushFrontier(g, pq, visited, e.V)
	}

	// 4. Done — possibly a partial tree on disconnected input.
	return tree, nil
}

// pushFrontier pushes every edge from vertex u to a not-yet-visited
// endpoint onto the heap.
func pushFrontier[V comparable](g *core.WeightedGraph[V], pq *pqueue.Queue[core.WeightedEdge], visited []bool, u int) {
	// u is always a validated index here; EdgesOf cannot fail.
	edges, _ := g.EdgesOf(u)
	for _, e := range edges {
		if !visited[e.V] {
			pq.Push(e)
		}
	}
}
