// Classic constraint-satisfaction problems exercised end to end:
// map coloring, the SEND+MORE=MONEY cryptarithm, eight queens, and a
// word-search grid. Each doubles as a realism check on the engine —
// the instances are big enough that a broken pruning path would hang
// or return garbage.
package csp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvekit/solvekit/csp"
)

// ------------------------------------------------------------------------
// Map coloring: Australian mainland states and territories, 3 colors.
// ------------------------------------------------------------------------

var australiaBorders = [][2]string{
	{"Western Australia", "Northern Territory"},
	{"Western Australia", "South Australia"},
	{"Northern Territory", "South Australia"},
	{"Northern Territory", "Queensland"},
	{"South Australia", "Queensland"},
	{"South Australia", "New South Wales"},
	{"South Australia", "Victoria"},
	{"Queensland", "New South Wales"},
	{"New South Wales", "Victoria"},
	{"Victoria", "Tasmania"},
}

func australiaCSP(t *testing.T, colors []string) *csp.CSP[string, string] {
	t.Helper()
	regions := []string{
		"Western Australia", "Northern Territory", "South Australia",
		"Queensland", "New South Wales", "Victoria", "Tasmania",
	}
	domains := map[string][]string{}
	for _, r := range regions {
		domains[r] = colors
	}
	c, err := csp.New(regions, domains)
	require.NoError(t, err)
	for _, b := range australiaBorders {
		require.NoError(t, c.AddConstraint(csp.NotEqual[string, string]{A: b[0], B: b[1]}))
	}
	return c
}

func TestMapColoring_ThreeColorsSuffice(t *testing.T) {
	c := australiaCSP(t, []string{"red", "green", "blue"})

	a, found, err := c.Solve()
	require.NoError(t, err)
	require.True(t, found)
	for _, b := range australiaBorders {
		assert.NotEqual(t, a[b[0]], a[b[1]], "%s and %s share a border", b[0], b[1])
	}
}

func TestMapColoring_TwoColorsFail(t *testing.T) {
	// NT / SA / QLD form a triangle, so two colors cannot work.
	c := australiaCSP(t, []string{"red", "green"})

	_, found, err := c.Solve()
	require.NoError(t, err)
	assert.False(t, found)
}

// ------------------------------------------------------------------------
// SEND + MORE = MONEY.
// ------------------------------------------------------------------------

// sendMoreMoney checks the column arithmetic once every letter has a
// digit; until then it passes vacuously and lets AllDifferent prune.
type sendMoreMoney struct{ letters []string }

func (s sendMoreMoney) Variables() []string { return s.letters }

func (s sendMoreMoney) Satisfied(a csp.Assignment[string, int]) bool {
	if len(a) < len(s.letters) {
		return true
	}
	send := a["S"]*1000 + a["E"]*100 + a["N"]*10 + a["D"]
	more := a["M"]*1000 + a["O"]*100 + a["R"]*10 + a["E"]
	money := a["M"]*10000 + a["O"]*1000 + a["N"]*100 + a["E"]*10 + a["Y"]
	return send+more == money
}

// leadingDigit rejects zero for a letter that starts a word.
type leadingDigit struct{ letter string }

func (l leadingDigit) Variables() []string { return []string{l.letter} }

func (l leadingDigit) Satisfied(a csp.Assignment[string, int]) bool {
	d, ok := a[l.letter]
	return !ok || d != 0
}

func TestSendMoreMoney_FindsTheClassicSolution(t *testing.T) {
	letters := []string{"S", "E", "N", "D", "M", "O", "R", "Y"}
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	domains := map[string][]int{}
	for _, l := range letters {
		domains[l] = digits
	}

	c, err := csp.New(letters, domains)
	require.NoError(t, err)
	require.NoError(t, c.AddConstraint(csp.AllDifferent[string, int]{Vars: letters}))
	require.NoError(t, c.AddConstraint(leadingDigit{letter: "S"}))
	require.NoError(t, c.AddConstraint(leadingDigit{letter: "M"}))
	require.NoError(t, c.AddConstraint(sendMoreMoney{letters: letters}))

	a, found, err := c.Solve()
	require.NoError(t, err)
	require.True(t, found)

	// The puzzle has a unique solution: 9567 + 1085 = 10652.
	want := csp.Assignment[string, int]{
		"S": 9, "E": 5, "N": 6, "D": 7, "M": 1, "O": 0, "R": 8, "Y": 2,
	}
	assert.Equal(t, want, a)
}

// ------------------------------------------------------------------------
// Eight queens: one queen per column, no shared row or diagonal.
// ------------------------------------------------------------------------

// queensSafe checks every assigned pair of columns; partial pairwise
// checking is what makes backtracking prune instead of enumerating
// all 8^8 placements.
type queensSafe struct{ columns []int }

func (q queensSafe) Variables() []int { return q.columns }

func (q queensSafe) Satisfied(a csp.Assignment[int, int]) bool {
	for c1, r1 := range a {
		for c2, r2 := range a {
			if c2 <= c1 {
				continue
			}
			if r1 == r2 {
				return false
			}
			if abs(c1-c2) == abs(r1-r2) {
				return false
			}
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestEightQueens(t *testing.T) {
	columns := make([]int, 8)
	rows := make([]int, 8)
	domains := map[int][]int{}
	for i := range columns {
		columns[i] = i
		rows[i] = i
		domains[i] = rows
	}

	c, err := csp.New(columns, domains)
	require.NoError(t, err)
	safe := queensSafe{columns: columns}
	require.NoError(t, c.AddConstraint(safe))

	a, found, err := c.Solve()
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, a, 8)
	assert.True(t, safe.Satisfied(a))
}

// ------------------------------------------------------------------------
// Word search: place words on a grid without overlap.
// ------------------------------------------------------------------------

// placement locates a word on the grid: its first letter's cell and
// whether it runs down (otherwise across). Fixed-size and comparable,
// so it can serve as a domain value directly.
type placement struct {
	row, col int
	down     bool
}

// cells expands a placement into the grid cells the word occupies.
func (p placement) cells(length int) [][2]int {
	out := make([][2]int, length)
	for i := range out {
		if p.down {
			out[i] = [2]int{p.row + i, p.col}
		} else {
			out[i] = [2]int{p.row, p.col + i}
		}
	}
	return out
}

// placements enumerates every in-bounds placement of a word of the
// given length on a size x size grid.
func placements(size, length int) []placement {
	var out []placement
	for r := 0; r < size; r++ {
		for c := 0; c+length <= size; c++ {
			out = append(out, placement{row: r, col: c, down: false})
		}
	}
	for c := 0; c < size; c++ {
		for r := 0; r+length <= size; r++ {
			out = append(out, placement{row: r, col: c, down: true})
		}
	}
	return out
}

// noOverlap rejects assignments where two placed words share a cell.
type noOverlap struct {
	words   []string
	lengths map[string]int
}

func (n noOverlap) Variables() []string { return n.words }

func (n noOverlap) Satisfied(a csp.Assignment[string, placement]) bool {
	used := map[[2]int]bool{}
	for w, p := range a {
		for _, cell := range p.cells(n.lengths[w]) {
			if used[cell] {
				return false
			}
			used[cell] = true
		}
	}
	return true
}

func TestWordSearch_PlacesWordsWithoutOverlap(t *testing.T) {
	const size = 9
	words := []string{"MATTHEW", "JOE", "MARY", "SARAH", "SALLY"}
	lengths := map[string]int{}
	domains := map[string][]placement{}
	for _, w := range words {
		lengths[w] = len(w)
		domains[w] = placements(size, len(w))
	}

	c, err := csp.New(words, domains)
	require.NoError(t, err)
	overlap := noOverlap{words: words, lengths: lengths}
	require.NoError(t, c.AddConstraint(overlap))

	a, found, err := c.Solve()
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, a, len(words))

	// Re-check the invariant directly: no cell carries two letters.
	used := map[[2]int]int{}
	for w, p := range a {
		for _, cell := range p.cells(lengths[w]) {
			assert.LessOrEqual(t, cell[0], size-1)
			assert.LessOrEqual(t, cell[1], size-1)
			used[cell]++
			assert.Equal(t, 1, used[cell], "cell %v claimed twice", cell)
		}
	}
}
