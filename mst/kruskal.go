// This file implements Kruskal's algorithm with a union-find structure.
package mst

import (
	"sort"

	"github.com/solvekit/solvekit/core"
)

// Kruskal computes a minimum spanning tree of g by sorting all edges by
// ascending weight and joining disjoint components.
//
// Steps:
//  1. Validate: g non-nil (ErrNilGraph).
//  2. Collect each undirected edge once (keep the U < V orientation,
//     skip the mirrored duplicates and self-loops).
//  3. Stable-sort by weight; stability keeps tie-breaking deterministic
//     in insertion order.
//  4. Walk the sorted edges, adopting any edge whose endpoints lie in
//     different disjoint-set components, merging the components.
//  5. Stop early once |V|-1 edges are adopted.
//
// On disconnected input the result is a minimum spanning forest; use
// Tree.Spans to check coverage.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal[V comparable](g *core.WeightedGraph[V]) (*Tree, error) {
	// 1. Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	tree := &Tree{Edges: []core.WeightedEdge{}}
	if n <= 1 {
		return tree, nil // trivially spanned, no edges possible
	}

	// 2. Deduplicate the symmetric adjacency: every undirected edge is
	//    stored twice, once per direction, so keep only U < V.
	edges := make([]core.WeightedEdge, 0, g.EdgeCount()/2)
	for u := 0; u < n; u++ {
		adj, _ := g.EdgesOf(u)
		for _, e := range adj {
			if e.U < e.V {
				edges = append(edges, e)
			}
		}
	}

	// 3. Ascending weight, stable for deterministic ties.
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	// 4. Union-find with path compression and union by rank.
	uf := newUnionFind(n)
	for _, e := range edges {
		if !uf.union(e.U, e.V) {
			continue // same component, edge would close a cycle
		}
		tree.Edges = append(tree.Edges, e)
		tree.Weight += e.Weight
		// 5. |V|-1 edges span the whole graph; nothing left to add.
		if len(tree.Edges) == n-1 {
			break
		}
	}

	return tree, nil
}

// unionFind is a disjoint-set forest over vertex indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find returns the root of u's component, halving the path as it walks.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]] // path compression
		u = uf.parent[u]
	}

	return u
}

// union merges the components of u and v by rank.
// Reports false when they were already joined.
func (uf *unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	if uf.rank[ru] < uf.rank[rv] {
		ru, rv = rv, ru
	}
	uf.parent[rv] = ru
	if uf.rank[ru] == uf.rank[rv] {
		uf.rank[ru]++
	}

	return true
}
