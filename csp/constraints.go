// This file provides the reusable constraint variants. Problem-specific
// constraints (arithmetic puzzles, board geometry) implement the
// Constraint interface in client code.
package csp

// NotEqual is a binary constraint requiring two variables to take
// different values — the map-coloring building block.
type NotEqual[V comparable, D comparable] struct {
	// A and B are the two constrained variables.
	A, B V
}

// Variables returns the two covered variables.
func (n NotEqual[V, D]) Variables() []V { return []V{n.A, n.B} }

// Satisfied passes vacuously until both variables are assigned, then
// requires their values to differ.
func (n NotEqual[V, D]) Satisfied(a Assignment[V, D]) bool {
	va, ok := a[n.A]
	if !ok {
		return true
	}
	vb, ok := a[n.B]
	if !ok {
		return true
	}

	return va != vb
}

// AllDifferent requires all covered variables to take pairwise distinct
// values. Only assigned variables are judged, so the constraint prunes
// duplicates as soon as the second occurrence appears.
type AllDifferent[V comparable, D comparable] struct {
	// Vars are the covered variables.
	Vars []V
}

// Variables returns the covered variables.
func (c AllDifferent[V, D]) Variables() []V { return append([]V(nil), c.Vars...) }

// Satisfied reports whether the assigned subset of Vars holds no
// duplicate values.
func (c AllDifferent[V, D]) Satisfied(a Assignment[V, D]) bool {
	seen := make(map[D]struct{}, len(c.Vars))
	for _, v := range c.Vars {
		d, ok := a[v]
		if !ok {
			continue // unassigned variables are not judged
		}
		if _, dup := seen[d]; dup {
			return false
		}
		seen[d] = struct{}{}
	}

	return true
}
