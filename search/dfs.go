// This file implements depth-first search with an explicit LIFO stack.
// An explicit stack, rather than recursion, keeps memory proportional to
// the frontier and immune to call-stack limits on deep state spaces.
package search

import "fmt"

// DFS runs depth-first search from initial until goal passes or the
// frontier is exhausted. The returned path is a valid path but carries no
// shortest-path guarantee; use BFS when the fewest steps matter.
//
// Returns ErrNilGoal or ErrNilSuccessors for missing closures,
// ErrOptionViolation for bad options, a context error on cancellation, or
// any error returned by the OnVisit hook. Frontier exhaustion is not an
// error: the Result reports Found == false.
//
// Complexity: O(V + E) over the reachable state space; memory O(V).
func DFS[S comparable](initial S, goal GoalFunc[S], successors SuccessorsFunc[S], opts ...Option[S]) (*Result[S], error) {
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

	// 3. Seed arena, stack, and explored set with the initial state.
	tree := arena[S]{}
	root := tree.add(node[S]{state: initial, parent: -1})
	stack := []int{root}
	explored := map[S]struct{}{initial: {}}
	res := &Result[S]{}

	// 4. Main loop: LIFO discipline is the only difference from BFS.
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// Pop the newest frontier entry.
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current := tree[idx]
		res.Expanded++

		if err := o.OnVisit(current.state); err != nil {
			return nil, fmt.Errorf("search: OnVisit error at %v: %w", current.state, err)
		}

		if goal(current.state) {
			res.Found = true
			res.Goal = current.state
			res.Cost = current.cost
			res.Path = tree.pathTo(idx)

			return res, nil
		}

		if o.MaxDepth > 0 && current.depth >= o.MaxDepth {
			continue
		}
		for _, next := range successors(current.state) {
			if _, seen := explored[next]; seen {
				continue
			}
			explored[next] = struct{}{}
			child := tree.add(node[S]{
				state:  next,
				parent: idx,
				depth:  current.depth + 1,
				cost:   current.cost + o.Cost(current.state, next),
			})
			stack = append(stack, child)
		}
	}

	return res, nil
}
