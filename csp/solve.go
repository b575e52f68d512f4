// This file implements the recursive backtracking search.
package csp

import "fmt"

// Solve runs depth-first backtracking search and returns the first
// complete consistent assignment.
//
// found == false with a nil error means the search exhausted every branch
// without a solution — a legitimate outcome, not a failure. A seed whose
// values jointly violate a constraint also reports found == false: the
// seed is never undone, so no extension can repair it. Errors are
// reserved for configuration problems (an invalid seed) and cancellation.
//
// The zero-variable CSP is solved immediately by the empty assignment.
//
// Complexity: O(d^n) worst case, with n variables and maximum domain
// size d; consistency checking prunes failed branches as early as the
// constraints allow. Recursion depth is at most n.
func (c *CSP[V, D]) Solve(opts ...Option[V, D]) (Assignment[V, D], bool, error) {
	// 1. Build options.
	o := DefaultOptions[V, D]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Validate and apply the seed, if any.
	a := make(Assignment[V, D], len(c.variables))
	for v, d := range o.Seed {
		domain, ok := c.domains[v]
		if !ok {
			return nil, false, fmt.Errorf("%w: seed variable %v", ErrUnknownVariable, v)
		}
		if !contains(domain, d) {
			return nil, false, fmt.Errorf("%w: %v = %v", ErrValueNotInDomain, v, d)
		}
		a[v] = d
	}

	// 3. Reject a seed that already violates a constraint: backtracking
	// never removes seeded values, so no extension could repair it.
	for v := range o.Seed {
		if !c.Consistent(v, a) {
			return nil, false, nil
		}
	}

	// 4. Recurse.
	found, err := c.backtrack(a, &o)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return a, true, nil
}

// backtrack extends the assignment one variable at a time, depth-first.
// It reports whether a is now a complete consistent assignment; a is
// mutated in place and holds the solution when found is true.
func (c *CSP[V, D]) backtrack(a Assignment[V, D], o *Options[V, D]) (found bool, err error) {
	// Cancellation check, once per recursive call.
	select {
	case <-o.Ctx.Done():
		return false, o.Ctx.Err()
	default:
	}

	// Base case: every variable assigned.
	if len(a) == len(c.variables) {
		return true, nil
	}

	// Variable selection: first unassigned in declaration order.
	var unassigned V
	for _, v := range c.variables {
		if _, ok := a[v]; !ok {
			unassigned = v
			break
		}
	}

	// Try each candidate value in domain order.
	for _, d := range c.domains[unassigned] {
		a[unassigned] = d
		o.OnAssign(unassigned, d)

		if c.Consistent(unassigned, a) {
			found, err = c.backtrack(a, o)
			if err != nil || found {
				// First success propagates up immediately; no further
				// values are tried.
				return found, err
			}
		}

		// Inconsistent or dead end below: undo and try the next value.
		delete(a, unassigned)
	}

	// No value worked — backtrack in the caller.
	return false, nil
}

// contains reports whether domain holds value.
func contains[D comparable](domain []D, value D) bool {
	for _, d := range domain {
		if d == value {
			return true
		}
	}

	return false
}
