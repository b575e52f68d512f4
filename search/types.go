// Package search defines the function types, tunable options, sentinel
// errors, and result type shared by BFS, DFS, and A*.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilGoal is returned when the goal test function is nil.
	ErrNilGoal = errors.New("search: goal test is nil")

	// ErrNilSuccessors is returned when the successors function is nil.
	ErrNilSuccessors = errors.New("search: successors function is nil")

	// ErrNilHeuristic is returned when A* is invoked with a nil heuristic.
	ErrNilHeuristic = errors.New("search: heuristic function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// GoalFunc reports whether a state satisfies the goal.
type GoalFunc[S comparable] func(S) bool

// SuccessorsFunc returns the states reachable from s in one step.
// It must be pure: no side effects, same output for the same input.
type SuccessorsFunc[S comparable] func(s S) []S

// HeuristicFunc estimates the remaining cost from s to a goal.
// For A* optimality the estimate must never exceed the true cost.
type HeuristicFunc[S comparable] func(s S) float64

// CostFunc returns the cost of stepping from one state to an adjacent one.
// The default is a uniform cost of 1 per step.
type CostFunc[S comparable] func(from, to S) float64

// Option configures search behavior via functional arguments. Invalid
// values (e.g. a negative depth limit) are recorded and surfaced as
// ErrOptionViolation when the search is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks customizing a search run.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnVisit is called when a state is expanded (popped from the
	// frontier). If it returns an error, the search aborts with it.
	OnVisit func(s S) error

	// MaxDepth, if > 0, stops expanding beyond this depth (in steps from
	// the initial state). 0 disables the limit.
	MaxDepth int

	// Cost returns the per-step cost; defaults to uniform 1.
	Cost CostFunc[S]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no-op hook, no depth limit, uniform unit step cost.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		OnVisit:  func(S) error { return nil },
		MaxDepth: 0,
		Cost:     func(S, S) float64 { return 1 },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked on every expansion; returning
// an error from the callback aborts the search.
func WithOnVisit[S comparable](fn func(s S) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits expansion depth:
//
//	d > 0:  states deeper than d steps are not generated
//	d == 0: explicit no limit
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithCost replaces the uniform unit step cost with a caller-supplied
// cost function. Costs must be non-negative for A* correctness; this is
// a precondition, not checked at runtime.
func WithCost[S comparable](fn CostFunc[S]) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// Result holds the outcome of a search run.
//
// Found distinguishes "goal reached" from "frontier exhausted"; the
// latter is a valid outcome, not an error.
type Result[S comparable] struct {
	// Found reports whether a goal state was reached.
	Found bool

	// Path is the root→goal state sequence, including both endpoints.
	// Nil when Found is false.
	Path []S

	// Goal is the goal state that was reached (zero value if none).
	Goal S

	// Cost is the accumulated path cost to Goal (path length in steps
	// under the default uniform cost).
	Cost float64

	// Expanded counts the states popped from the frontier, a measure of
	// search effort.
	Expanded int
}

// node is one entry of the search-tree arena. Parent back-references are
// arena indices, -1 for the root; the chain is read backward once to
// reconstruct a path, then the arena is discarded with the run.
type node[S comparable] struct {
	state     S
	parent    int
	depth     int
	cost      float64
	heuristic float64
}

// arena is the append-only search tree shared by all three algorithms.
type arena[S comparable] []node[S]

// add appends a node and returns its index.
func (a *arena[S]) add(n node[S]) int {
	*a = append(*a, n)

	return len(*a) - 1
}

// pathTo reconstructs the root→i state sequence by walking parent links
// and reversing. Complexity: O(path length).
func (a arena[S]) pathTo(i int) []S {
	path := []S{}
	for idx := i; idx >= 0; idx = a[idx].parent {
		path = append(path, a[idx].state)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
