package grid

import (
	"fmt"
	"strings"

	"github.com/solvekit/solvekit/core"
	"github.com/solvekit/solvekit/search"
)

// conn4 lists the orthogonal neighbor offsets in N, E, S, W order;
// conn8 adds the diagonals. The order fixes the successor order, which
// in turn makes BFS and DFS traversals deterministic.
var (
	conn4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	conn8 = [][2]int{
		{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
		{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	}
)

// Grid is a rectangular field of passable and blocked cells. It is
// immutable once built.
type Grid struct {
	rows, cols int
	blocked    [][]bool
	offsets    [][2]int
}

// New constructs a rows×cols Grid with the given cells blocked.
// Returns ErrEmptyGrid for non-positive dimensions and
// ErrCellOutOfRange if a blocked cell lies outside the field.
// Complexity: O(W×H) time and memory.
func New(rows, cols int, blocked []Cell, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make([][]bool, rows),
		offsets: resolveOffsets(opts),
	}
	for r := range g.blocked {
		g.blocked[r] = make([]bool, cols)
	}
	for _, c := range blocked {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrCellOutOfRange, c)
		}
		g.blocked[c.Row][c.Col] = true
	}

	return g, nil
}

// Parse builds a Grid from an ASCII picture, one string per row, where
// the Wall rune marks a blocked cell and any other rune is passable.
// Returns ErrEmptyGrid for an empty picture and ErrNonRectangular when
// row lengths differ.
// Complexity: O(W×H) time and memory.
func Parse(picture []string, opts ...Option) (*Grid, error) {
	if len(picture) == 0 || len(picture[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len([]rune(picture[0]))
	g := &Grid{
		rows:    len(picture),
		cols:    cols,
		blocked: make([][]bool, len(picture)),
		offsets: resolveOffsets(opts),
	}
	for r, line := range picture {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, r, len(runes), cols)
		}
		g.blocked[r] = make([]bool, cols)
		for c, ch := range runes {
			g.blocked[r][c] = ch == Wall
		}
	}

	return g, nil
}

// resolveOffsets applies opts and picks the neighbor offset table.
func resolveOffsets(opts []Option) [][2]int {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Diagonals {
		return conn8
	}

	return conn4
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the field boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Passable reports whether c is in bounds and not blocked.
// Complexity: O(1).
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[c.Row][c.Col]
}

// Successors returns the passable neighbors of a cell in a fixed
// clockwise order starting north. The result plugs directly into
// search.BFS, search.DFS, and search.AStar.
func (g *Grid) Successors() search.SuccessorsFunc[Cell] {
	return func(s Cell) []Cell {
		next := make([]Cell, 0, len(g.offsets))
		for _, d := range g.offsets {
			n := Cell{Row: s.Row + d[0], Col: s.Col + d[1]}
			if g.Passable(n) {
				next = append(next, n)
			}
		}

		return next
	}
}

// ToWeightedGraph converts the passable cells into an undirected
// *core.WeightedGraph with unit edge weights. Blocked cells are
// omitted entirely.
// Complexity: O(W×H) time and memory.
func (g *Grid) ToWeightedGraph() *core.WeightedGraph[Cell] {
	wg := core.NewWeightedGraph[Cell]()
	index := make(map[Cell]int, g.rows*g.cols)

	// 1. Vertices for every passable cell, row-major.
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if g.Passable(cell) {
				index[cell] = wg.AddVertex(cell)
			}
		}
	}

	// 2. Undirected unit edges; linking only south and east (and, with
	// diagonals, south-east and south-west) avoids inserting each edge
	// twice.
	link := [][2]int{{1, 0}, {0, 1}}
	if len(g.offsets) == len(conn8) {
		link = append(link, [2]int{1, 1}, [2]int{1, -1})
	}
	for cell, i := range index {
		for _, d := range link {
			n := Cell{Row: cell.Row + d[0], Col: cell.Col + d[1]}
			if j, ok := index[n]; ok {
				// Indices are valid by construction.
				_ = wg.AddEdge(i, j, 1)
			}
		}
	}

	return wg
}

// String renders the field with '#' for walls and '.' for passable
// cells, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.blocked[r][c] {
				sb.WriteRune(Wall)
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
