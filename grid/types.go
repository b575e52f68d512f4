// Package grid defines the core types, options, and sentinel errors for
// the grid subpackage of github.com/solvekit/solvekit.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the field has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: field must have at least one row and one column")
	// ErrNonRectangular indicates picture rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellOutOfRange indicates a cell outside the field boundaries.
	ErrCellOutOfRange = errors.New("grid: cell out of range")
)

// Wall is the rune Parse treats as a blocked cell.
const Wall = '#'

// Cell is a position on the grid. It is a fixed-size comparable value,
// so it can serve directly as a search state.
type Cell struct {
	Row, Col int
}

// Options holds the tunable parameters of a Grid.
type Options struct {
	// Diagonals extends the neighborhood from the 4 orthogonal
	// directions to all 8.
	Diagonals bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with 4-directional connectivity.
func DefaultOptions() Options {
	return Options{}
}

// WithDiagonals enables 8-directional connectivity.
func WithDiagonals() Option {
	return func(o *Options) { o.Diagonals = true }
}
