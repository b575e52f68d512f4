// This file implements A*: a priority-queue frontier ordered by
// cost + heuristic, with the lazy decrease-key strategy shared with the
// dijkstra package — cheaper rediscoveries re-push, stale entries are
// skipped when popped.
package search

import (
	"fmt"

	"github.com/solvekit/solvekit/pqueue"
)

// frontierEntry pairs an arena index with its f = g + h priority at the
// time it was pushed.
type frontierEntry struct {
	node     int
	priority float64
}

// AStar runs best-first search from initial, ordering the frontier by
// accumulated cost plus heuristic estimate. When the heuristic is
// admissible (never overestimates the true remaining cost — a caller
// contract, not checked here) the returned path is cheapest.
//
// The explored record maps each state to its best known cost. A state is
// re-added to the frontier only when a strictly cheaper path to it is
// found; the superseded queue entries remain and are discarded on pop
// when their cost no longer matches the best (lazy deletion).
//
// Returns ErrNilGoal, ErrNilSuccessors, or ErrNilHeuristic for missing
// closures, ErrOptionViolation for bad options, a context error on
// cancellation, or any error from the OnVisit hook. Frontier exhaustion
// is not an error: the Result reports Found == false.
//
// Complexity: O((V + E) log V) over the reachable state space.
func AStar[S comparable](initial S, goal GoalFunc[S], successors SuccessorsFunc[S], heuristic HeuristicFunc[S], opts ...Option[S]) (*Result[S], error) {
	// 1. Validate the state-space closures.
	if goal == nil {
		return nil, ErrNilGoal
	}
	if successors == nil {
		return nil, ErrNilSuccessors
	}
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}

	// 2. Build options and surface any violation recorded during parsing.
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Seed the arena, the frontier, and the best-cost record.
	tree := arena[S]{}
	root := tree.add(node[S]{state: initial, parent: -1, heuristic: heuristic(initial)})
	frontier := pqueue.NewFunc(func(a, b frontierEntry) bool { return a.priority < b.priority })
	frontier.Push(frontierEntry{node: root, priority: tree[root].heuristic})
	best := map[S]float64{initial: 0}
	res := &Result[S]{}

	// 4. Main loop.
	for !frontier.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		entry, _ := frontier.Pop()
		current := tree[entry.node]

		// Lazy deletion: skip entries superseded by a cheaper rediscovery.
		if bestCost, seen := best[current.state]; seen && current.cost > bestCost {
			continue
		}
		res.Expanded++

		if err := o.OnVisit(current.state); err != nil {
			return nil, fmt.Errorf("search: OnVisit error at %v: %w", current.state, err)
		}

		if goal(current.state) {
			res.Found = true
			res.Goal = current.state
			res.Cost = current.cost
			res.Path = tree.pathTo(entry.node)

			return res, nil
		}

		// 5. Relax successors.
		if o.MaxDepth > 0 && current.depth >= o.MaxDepth {
			continue
		}
		for _, next := range successors(current.state) {
			newCost := current.cost + o.Cost(current.state, next)
			// Only a strictly cheaper path justifies a new frontier entry.
			if bestCost, seen := best[next]; seen && newCost >= bestCost {
				continue
			}
			best[next] = newCost
			child := tree.add(node[S]{
				state:     next,
				parent:    entry.node,
				depth:     current.depth + 1,
				cost:      newCost,
				heuristic: heuristic(next),
			})
			frontier.Push(frontierEntry{node: child, priority: newCost + tree[child].heuristic})
		}
	}

	return res, nil
}
