// Package search implements uninformed (BFS, DFS) and informed (A*) search
// over an arbitrary state space described by closures.
//
// The three algorithms share one shape: a frontier of states waiting to be
// expanded, an explored record preventing re-expansion, and a search tree
// of back-references for path reconstruction. Only the frontier discipline
// differs:
//
//   - BFS uses a FIFO queue — finds a path with the fewest steps.
//   - DFS uses a LIFO stack — finds some path, commonly not the shortest.
//   - A* uses a priority queue ordered by cost + heuristic ascending —
//     finds a cheapest path when the heuristic never overestimates the
//     true remaining cost (admissibility is a caller contract and is not
//     checked by the algorithm).
//
// Callers supply the state space as pure functions: a goal test, a
// successors function, and (for A*) a heuristic. Step cost defaults to a
// uniform 1 and can be generalized with WithCost.
//
// The search tree is an index-based arena: each expansion appends a node
// recording its state, its parent's arena index, and its accumulated
// cost. When a goal is found the parent chain is read backward once to
// produce the root→goal path, then the whole arena is discarded.
//
// Exhausting the frontier without reaching a goal is a legitimate
// outcome, reported as Result.Found == false with a nil error. Errors are
// reserved for misconfiguration (nil closures, invalid options),
// cancellation, and failures returned by the OnVisit hook.
//
// Complexity, with b = branching factor and d = solution depth:
//
//   - BFS/DFS: O(b^d) time, O(b^d) memory for the explored set and arena.
//   - A*: O(b^d) worst case; with a good heuristic far fewer expansions.
package search
