// This file implements the Dijkstra entry point and its runner.
package dijkstra

import (
	"math"

	"github.com/solvekit/solvekit/core"
	"github.com/solvekit/solvekit/pqueue"
)

// Dijkstra computes shortest distances from root to every vertex of g.
//
// The root is given by value and resolved through g.IndexOf; passing a
// value not present in the graph is a configuration error and returns
// ErrVertexNotFound (first-match-wins applies to duplicate values, see
// the core package doc).
//
// Returns a Result with per-index distances and predecessor edges, or an
// error for invalid input. Unreachable vertices are not an error: their
// distance is +Inf.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrNegativeStart).
//  3. root must exist in g (ErrVertexNotFound).
//
// Non-negative edge weights are assumed, not checked.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[V comparable](g *core.WeightedGraph[V], root V, opts ...Option) (*Result, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Build options and surface violations recorded during parsing.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3. Resolve the root vertex by value.
	rootIdx, ok := g.IndexOf(root)
	if !ok {
		return nil, ErrVertexNotFound
	}

	// 4. Initialize per-vertex state and the heap, then run to exhaustion.
	r := newRunner(g, rootIdx, cfg.StartDistance)
	r.process()

	return &Result{Root: rootIdx, Dist: r.dist, Prev: r.prev}, nil
}

// entry pairs a vertex index with the distance it was queued at. Stored
// in the min-heap to order vertices by increasing distance; stale entries
// are recognized by comparing dist against the recorded best.
type entry struct {
	vertex int
	dist   float64
}

// runner holds the mutable state of a single Dijkstra execution.
type runner[V comparable] struct {
	g    *core.WeightedGraph[V]
	dist []float64
	prev map[int]core.WeightedEdge
	pq   *pqueue.Queue[entry]
}

// newRunner allocates the distance slice (all +Inf except the root),
// the predecessor map, and the heap seeded with the root.
func newRunner[V comparable](g *core.WeightedGraph[V], root int, startDistance float64) *runner[V] {
	n := g.VertexCount()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[root] = startDistance

	pq := pqueue.NewFunc(func(a, b entry) bool { return a.dist < b.dist }, pqueue.WithCapacity(n))
	pq.Push(entry{vertex: root, dist: startDistance})

	return &runner[V]{
		g:    g,
		dist: dist,
		prev: make(map[int]core.WeightedEdge, n),
		pq:   pq,
	}
}

// process is the main loop: repeatedly pop the nearest queued vertex,
// discard stale entries, and relax its outgoing edges.
func (r *runner[V]) process() {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return // heap exhausted, all reachable vertices finalized
		}

		// Lazy deletion: a pop is stale when a cheaper path to the vertex
		// was recorded after this entry was pushed.
		if item.dist > r.dist[item.vertex] {
			continue
		}

		r.relax(item.vertex)
	}
}

// relax attempts to improve the distances of every neighbor of u.
// A strictly shorter path updates dist and prev and re-pushes the
// neighbor; equal-cost paths are ignored to avoid duplicate entries.
// Assumes r.dist[u] is final when called.
func (r *runner[V]) relax(u int) {
	// u came off the heap, so its index is valid; EdgesOf cannot fail.
	edges, _ := r.g.EdgesOf(u)
	for _, e := range edges {
		newDist := r.dist[u] + e.Weight
		if newDist >= r.dist[e.V] {
			continue
		}
		r.dist[e.V] = newDist
		r.prev[e.V] = e
		r.pq.Push(entry{vertex: e.V, dist: newDist})
	}
}
