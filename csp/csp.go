// This file implements the CSP container: declaration, validation, and
// the consistency check used during search.
package csp

import "fmt"

// CSP is a constraint-satisfaction problem: an ordered set of variables,
// a domain of candidate values per variable, and constraints indexed by
// the variables they cover.
type CSP[V comparable, D comparable] struct {
	variables   []V
	domains     map[V][]D
	constraints map[V][]Constraint[V, D]
}

// New declares a CSP over the given variables and domains.
//
// Validation (all configuration errors, reported explicitly):
//   - variables must be unique (ErrDuplicateVariable);
//   - every variable must have a domain entry (ErrMissingDomain);
//   - every domain must be non-empty (ErrEmptyDomain).
//
// The variable and domain slices are copied; later mutation of the
// caller's slices does not affect the CSP.
func New[V comparable, D comparable](variables []V, domains map[V][]D) (*CSP[V, D], error) {
	c := &CSP[V, D]{
		variables:   make([]V, 0, len(variables)),
		domains:     make(map[V][]D, len(variables)),
		constraints: make(map[V][]Constraint[V, D], len(variables)),
	}
	seen := make(map[V]struct{}, len(variables))
	for _, v := range variables {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateVariable, v)
		}
		seen[v] = struct{}{}

		domain, ok := domains[v]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingDomain, v)
		}
		if len(domain) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrEmptyDomain, v)
		}

		c.variables = append(c.variables, v)
		c.domains[v] = append([]D(nil), domain...)
	}

	return c, nil
}

// Variables returns the declared variables in declaration order.
// The slice is a copy.
func (c *CSP[V, D]) Variables() []V {
	return append([]V(nil), c.variables...)
}

// Domain returns the declared domain of v, in declaration order.
// ok is false for unknown variables. The slice is a copy.
func (c *CSP[V, D]) Domain(v V) ([]D, bool) {
	domain, ok := c.domains[v]
	if !ok {
		return nil, false
	}

	return append([]D(nil), domain...), true
}

// AddConstraint registers a constraint under every variable it covers.
// Returns ErrNilConstraint for nil and ErrUnknownVariable when the
// constraint mentions a variable outside the CSP — a usage error that
// must surface, not be silently ignored.
func (c *CSP[V, D]) AddConstraint(con Constraint[V, D]) error {
	if con == nil {
		return ErrNilConstraint
	}
	vars := con.Variables()
	for _, v := range vars {
		if _, ok := c.domains[v]; !ok {
			return fmt.Errorf("%w: %v (constraint scope %v)", ErrUnknownVariable, v, vars)
		}
	}
	for _, v := range vars {
		c.constraints[v] = append(c.constraints[v], con)
	}

	return nil
}

// Consistent reports whether every constraint registered against v is
// satisfied by the assignment. Constraints covering still-unassigned
// variables pass vacuously per the Constraint contract.
// Complexity: O(constraints on v × their evaluation cost).
func (c *CSP[V, D]) Consistent(v V, a Assignment[V, D]) bool {
	for _, con := range c.constraints[v] {
		if !con.Satisfied(a) {
			return false
		}
	}

	return true
}
