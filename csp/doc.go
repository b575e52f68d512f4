// Package csp provides a generic constraint-satisfaction engine:
// variables, per-variable domains, constraints over subsets of the
// variables, and a recursive backtracking solver.
//
// A problem is declared once — New validates that every variable has a
// non-empty domain, AddConstraint validates that a constraint only
// mentions declared variables — and then solved with Solve, which
// performs depth-first search over partial assignments:
//
//   - Variable selection: the first unassigned variable in declaration
//     order. No minimum-remaining-values heuristic — static ordering is a
//     deliberate simplification, not a defect.
//   - Value selection: domain values in declaration order.
//   - Consistency: after each tentative assignment, every constraint
//     registered against the assigned variable is evaluated; any failure
//     prunes the branch.
//   - The first complete consistent assignment is returned; the search
//     does not enumerate further solutions.
//
// Constraints implement the Constraint interface. Satisfied receives a
// partial assignment and must pass vacuously while any of the
// constraint's variables is still unassigned, judging only what is
// already decided. This keeps wide-scoped constraints (such as the
// pairwise row/diagonal checks of n-queens) pruning early instead of
// waiting for a complete assignment.
//
// Exhausting all domains without a consistent complete assignment is a
// legitimate outcome, reported as found == false with a nil error. A CSP
// with no variables is solved by the empty assignment immediately.
//
// Recursion depth is bounded by the number of variables; stack usage is
// proportional to that depth.
//
// The NotEqual and AllDifferent constraints cover the common cases;
// problem-specific constraints (arithmetic puzzles, board geometry) are
// supplied by the caller.
package csp
