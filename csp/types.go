// Package csp declares the Constraint interface, the Assignment type,
// tunable options, and sentinel errors for the backtracking engine.
package csp

import (
	"context"
	"errors"
)

// Sentinel errors for CSP construction and solving.
var (
	// ErrDuplicateVariable is returned by New when a variable is declared twice.
	ErrDuplicateVariable = errors.New("csp: duplicate variable")

	// ErrMissingDomain is returned by New when a declared variable has no domain entry.
	ErrMissingDomain = errors.New("csp: variable has no domain")

	// ErrEmptyDomain is returned by New when a variable's domain is empty.
	ErrEmptyDomain = errors.New("csp: variable domain is empty")

	// ErrNilConstraint is returned by AddConstraint for a nil constraint.
	ErrNilConstraint = errors.New("csp: constraint is nil")

	// ErrUnknownVariable is returned when a constraint or seed references
	// a variable that is not declared in the CSP.
	ErrUnknownVariable = errors.New("csp: unknown variable")

	// ErrValueNotInDomain is returned when a seed assigns a value outside
	// the variable's domain.
	ErrValueNotInDomain = errors.New("csp: value not in variable domain")
)

// Assignment maps variables to chosen domain values. It is partial during
// search and complete when its size equals the number of variables.
type Assignment[V comparable, D comparable] map[V]D

// Clone returns an independent copy of the assignment.
func (a Assignment[V, D]) Clone() Assignment[V, D] {
	out := make(Assignment[V, D], len(a))
	for v, d := range a {
		out[v] = d
	}

	return out
}

// Constraint restricts the values a set of variables may take together.
//
// Implementations must be pure predicates over the assignment and must
// pass vacuously while any of their variables is unassigned: judge only
// what is already decided, never reject for missing information.
type Constraint[V comparable, D comparable] interface {
	// Variables returns the variables the constraint covers.
	Variables() []V

	// Satisfied reports whether the (possibly partial) assignment is
	// compatible with the constraint.
	Satisfied(a Assignment[V, D]) bool
}

// Option configures a Solve run via functional arguments.
type Option[V comparable, D comparable] func(*Options[V, D])

// Options holds parameters and callbacks for a single Solve run.
type Options[V comparable, D comparable] struct {
	// Ctx allows cancellation; checked once per backtracking call.
	Ctx context.Context

	// Seed pre-assigns variables before the search starts. Seeded values
	// are validated against the declared variables and domains; a seed
	// that violates a registered constraint makes Solve report no
	// solution.
	Seed Assignment[V, D]

	// OnAssign is called for every tentative assignment, including ones
	// later undone by backtracking. Useful for tracing search effort.
	OnAssign func(v V, d D)
}

// DefaultOptions returns Options with a background context, no seed, and
// a no-op hook.
func DefaultOptions[V comparable, D comparable]() Options[V, D] {
	return Options[V, D]{
		Ctx:      context.Background(),
		OnAssign: func(V, D) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable, D comparable](ctx context.Context) Option[V, D] {
	return func(o *Options[V, D]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed pre-assigns the given variables before the search starts.
func WithSeed[V comparable, D comparable](seed Assignment[V, D]) Option[V, D] {
	return func(o *Options[V, D]) {
		o.Seed = seed
	}
}

// WithOnAssign registers a callback invoked on every tentative assignment.
func WithOnAssign[V comparable, D comparable](fn func(v V, d D)) Option[V, D] {
	return func(o *Options[V, D]) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}
