// Package search_test: unit tests for A*.
package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvekit/solvekit/search"
)

// cell is a grid coordinate used as the A* state type.
type cell struct{ row, col int }

// gridSuccessors yields the 4-connected in-bounds neighbors on a
// rows×cols grid with no obstacles.
func gridSuccessors(rows, cols int) search.SuccessorsFunc[cell] {
	return func(c cell) []cell {
		var next []cell
		for _, d := range [4]cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := cell{c.row + d.row, c.col + d.col}
			if n.row >= 0 && n.row < rows && n.col >= 0 && n.col < cols {
				next = append(next, n)
			}
		}
		return next
	}
}

// manhattan is an admissible heuristic for unit-cost 4-connected grids.
func manhattan(goal cell) search.HeuristicFunc[cell] {
	return func(c cell) float64 {
		return math.Abs(float64(c.row-goal.row)) + math.Abs(float64(c.col-goal.col))
	}
}

func TestAStar_NilClosures(t *testing.T) {
	goal := cell{2, 2}
	isGoal := func(c cell) bool { return c == goal }
	succ := gridSuccessors(3, 3)

	_, err := search.AStar(cell{}, nil, succ, manhattan(goal))
	assert.ErrorIs(t, err, search.ErrNilGoal)
	_, err = search.AStar(cell{}, isGoal, nil, manhattan(goal))
	assert.ErrorIs(t, err, search.ErrNilSuccessors)
	_, err = search.AStar(cell{}, isGoal, succ, nil)
	assert.ErrorIs(t, err, search.ErrNilHeuristic)
}

func TestAStar_MatchesBFSOnUnitGrid(t *testing.T) {
	// On a uniform-cost grid with an admissible heuristic, the A* path
	// cost must equal the BFS edge count between the same endpoints.
	const rows, cols = 6, 6
	start, goal := cell{0, 0}, cell{5, 3}
	isGoal := func(c cell) bool { return c == goal }
	succ := gridSuccessors(rows, cols)

	bfsRes, err := search.BFS(start, isGoal, succ)
	require.NoError(t, err)
	require.True(t, bfsRes.Found)

	astarRes, err := search.AStar(start, isGoal, succ, manhattan(goal))
	require.NoError(t, err)
	require.True(t, astarRes.Found)

	assert.Equal(t, bfsRes.Cost, astarRes.Cost)
	assert.Equal(t, float64(8), astarRes.Cost, "Manhattan distance (5,3) from origin")
	assert.LessOrEqual(t, astarRes.Expanded, bfsRes.Expanded,
		"an informed search should expand no more states than BFS")
}

func TestAStar_PathStatesAreAdjacent(t *testing.T) {
	start, goal := cell{0, 0}, cell{3, 3}
	res, err := search.AStar(start, func(c cell) bool { return c == goal },
		gridSuccessors(4, 4), manhattan(goal))
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])
	for i := 1; i < len(res.Path); i++ {
		dr := math.Abs(float64(res.Path[i].row - res.Path[i-1].row))
		dc := math.Abs(float64(res.Path[i].col - res.Path[i-1].col))
		assert.Equal(t, float64(1), dr+dc, "steps must move one cell at a time")
	}
}

func TestAStar_NonUniformCostPrefersCheaperDetour(t *testing.T) {
	// Weighted toy space over vertex numbers:
	//
	//	0 —10— 3, 0 —1— 1 —1— 2 —1— 3
	//
	// The direct hop costs 10; the detour through 1 and 2 costs 3.
	adj := map[int][]int{0: {1, 3}, 1: {0, 2}, 2: {1, 3}, 3: {0, 2}}
	weight := func(from, to int) float64 {
		if (from == 0 && to == 3) || (from == 3 && to == 0) {
			return 10
		}
		return 1
	}
	res, err := search.AStar(0,
		func(s int) bool { return s == 3 },
		func(s int) []int { return adj[s] },
		func(int) float64 { return 0 }, // zero heuristic stays admissible
		search.WithCost[int](weight))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, float64(3), res.Cost)
}

func TestAStar_ReopensStateOnStrictlyCheaperPath(t *testing.T) {
	// State 2 is first reached via 0→2 (cost 5), later via 0→1→2 (cost 2).
	// The cheaper rediscovery must supersede the stale frontier entry and
	// the final path must use it.
	adj := map[int][]int{0: {2, 1}, 1: {2}, 2: {3}, 3: nil}
	weight := func(from, to int) float64 {
		if from == 0 && to == 2 {
			return 5
		}
		return 1
	}
	res, err := search.AStar(0,
		func(s int) bool { return s == 3 },
		func(s int) []int { return adj[s] },
		func(int) float64 { return 0 },
		search.WithCost[int](weight))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, float64(3), res.Cost)
}

func TestAStar_ExhaustedFrontierIsNotAnError(t *testing.T) {
	goal := cell{99, 99} // outside the grid, unreachable
	res, err := search.AStar(cell{0, 0}, func(c cell) bool { return c == goal },
		gridSuccessors(3, 3), manhattan(goal))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 9, res.Expanded, "every grid cell expanded exactly once")
}
