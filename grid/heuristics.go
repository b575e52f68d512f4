// This file provides distance heuristics for A* over grid cells.
package grid

import (
	"math"

	"github.com/solvekit/solvekit/search"
)

// Manhattan returns the taxicab-distance heuristic toward goal.
// Admissible for 4-directional movement with unit step cost.
func Manhattan(goal Cell) search.HeuristicFunc[Cell] {
	return func(s Cell) float64 {
		return math.Abs(float64(s.Row-goal.Row)) + math.Abs(float64(s.Col-goal.Col))
	}
}

// Euclidean returns the straight-line-distance heuristic toward goal.
// Admissible for any movement with unit (or greater) step cost,
// including 8-directional movement where Manhattan would overestimate.
func Euclidean(goal Cell) search.HeuristicFunc[Cell] {
	return func(s Cell) float64 {
		dr := float64(s.Row - goal.Row)
		dc := float64(s.Col - goal.Col)

		return math.Sqrt(dr*dr + dc*dc)
	}
}
