// Package dijkstra declares options, sentinel errors, and the Result type
// for the shortest-path computation.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/solvekit/solvekit/core"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is returned when the root vertex is absent.
	ErrVertexNotFound = errors.New("dijkstra: root vertex not found")

	// ErrNegativeStart is returned when the start distance is negative.
	ErrNegativeStart = errors.New("dijkstra: start distance cannot be negative")

	// ErrNoPath is returned by PathTo for an unreachable destination.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrVertexOutOfRange is returned by PathTo for an invalid index.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")
)

// Option configures a Dijkstra run via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for a single run.
type Options struct {
	// StartDistance is the distance assigned to the root before
	// relaxation begins. Almost always 0; a positive value offsets every
	// reported distance, useful when chaining partial routes.
	StartDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a zero start distance.
func DefaultOptions() Options {
	return Options{StartDistance: 0}
}

// WithStartDistance sets the root's initial distance.
// Negative values are invalid and surface as ErrNegativeStart.
func WithStartDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %g", ErrNegativeStart, d)
			return
		}
		o.StartDistance = d
	}
}

// Result holds the outcome of a Dijkstra run.
type Result struct {
	// Root is the index of the source vertex.
	Root int

	// Dist[i] is the minimum distance from the root to vertex i,
	// math.Inf(1) when vertex i is unreachable.
	Dist []float64

	// Prev maps a vertex index to the edge used to reach it on a
	// shortest path. The root and unreachable vertices have no entry.
	Prev map[int]core.WeightedEdge
}

// Reachable reports whether vertex i was reached from the root.
// Out-of-range indices are simply not reachable.
func (r *Result) Reachable(i int) bool {
	return i >= 0 && i < len(r.Dist) && !math.IsInf(r.Dist[i], 1)
}

// PathTo reconstructs the shortest root→goal path as the sequence of
// edges traversed, by walking the predecessor map backward and reversing.
// Returns ErrVertexOutOfRange for an invalid index and ErrNoPath when
// goal was not reached. The path for goal == Root is empty.
// Complexity: O(path length).
func (r *Result) PathTo(goal int) ([]core.WeightedEdge, error) {
	if goal < 0 || goal >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, goal)
	}
	if goal == r.Root {
		return []core.WeightedEdge{}, nil
	}
	if !r.Reachable(goal) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, goal)
	}

	path := []core.WeightedEdge{}
	for at := goal; at != r.Root; {
		e := r.Prev[at]
		path = append(path, e)
		at = e.U
	}
	for l, rr := 0, len(path)-1; l < rr; l, rr = l+1, rr-1 {
		path[l], path[rr] = path[rr], path[l]
	}

	return path, nil
}
