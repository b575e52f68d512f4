// This file implements breadth-first search: FIFO frontier, explored set,
// fewest-step paths.
package search

import "fmt"

// bfsWalker encapsulates mutable BFS state for a single run.
type bfsWalker[S comparable] struct {
	opts     Options[S]
	tree     arena[S]
	frontier []int // FIFO queue of arena indices
	explored map[S]struct{}
	res      *Result[S]
}

// BFS runs breadth-first search from initial until goal passes or the
// frontier is exhausted. Under the default uniform step cost the returned
// path has the fewest edges among all paths from initial to a goal state.
//
// Returns ErrNilGoal or ErrNilSuccessors for missing closures,
// ErrOptionViolation for bad options, a context error on cancellation, or
// any error returned by the OnVisit hook. Frontier exhaustion is not an
// error: the Result reports Found == false.
//
// Complexity: O(V + E) over the reachable state space; memory O(V).
func BFS[S comparable](initial S, goal GoalFunc[S], successors SuccessorsFunc[S], opts ...Option[S]) (*Result[S], error) {
	// 1. Validate the state-space closures.
	if goal == nil {
		return nil, ErrNilGoal
	}
	if successors == nil {
		return nil, ErrNilSuccessors
	}

	// 2. Build options and surface any violation recorded during parsing.
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Seed the arena and frontier with the initial state.
	w := &bfsWalker[S]{
		opts:     o,
		tree:     arena[S]{},
		explored: map[S]struct{}{initial: {}},
		res:      &Result[S]{},
	}
	root := w.tree.add(node[S]{state: initial, parent: -1})
	w.frontier = append(w.frontier, root)

	// 4. Main loop.
	if err := w.loop(goal, successors); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop processes the FIFO frontier until a goal is found, the frontier
// empties, or an error aborts the run.
func (w *bfsWalker[S]) loop(goal GoalFunc[S], successors SuccessorsFunc[S]) error {
	for len(w.frontier) > 0 {
		// Cancellation check, once per expansion.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// Dequeue the oldest frontier entry.
		idx := w.frontier[0]
		w.frontier = w.frontier[1:]
		current := w.tree[idx]
		w.res.Expanded++

		if err := w.opts.OnVisit(current.state); err != nil {
			return fmt.Errorf("search: OnVisit error at %v: %w", current.state, err)
		}

		// Goal test on expansion.
		if goal(current.state) {
			w.res.Found = true
			w.res.Goal = current.state
			w.res.Cost = current.cost
			w.res.Path = w.tree.pathTo(idx)

			return nil
		}

		// Generate successors, honoring the depth limit.
		if w.opts.MaxDepth > 0 && current.depth >= w.opts.MaxDepth {
			continue
		}
		for _, next := range successors(current.state) {
			if _, seen := w.explored[next]; seen {
				continue
			}
			w.explored[next] = struct{}{}
			child := w.tree.add(node[S]{
				state:  next,
				parent: idx,
				depth:  current.depth + 1,
				cost:   current.cost + w.opts.Cost(current.state, next),
			})
			w.frontier = append(w.frontier, child)
		}
	}

	// Frontier exhausted: no solution, and that is a valid outcome.
	return nil
}
