// Package grid defines core types and sentinel errors for the
// grid subpackage of github.com/katalvlaran/gridpath.
package grid

import "errors"

// Impassable is the sentinel weight marking a cell that no path may visit.
const Impassable = -1

// Sentinel errors for grid construction and endpoint validation.
var (
	// ErrInvalidShape indicates the input matrix is empty or non-rectangular.
	ErrInvalidShape = errors.New("grid: weights must form a non-empty rectangular matrix")
	// ErrCellOutOfBounds indicates a coordinate outside the grid.
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBlockedEndpoint indicates a path endpoint placed on an impassable cell.
	ErrBlockedEndpoint = errors.New("grid: endpoint cell is impassable")
)

// Cell is a 0-indexed (row, col) grid coordinate.
type Cell struct {
	Row, Col int
}

// Offset is a single-move displacement (row delta, col delta).
type Offset struct {
	DRow, DCol int
}

// Shifted returns the cell displaced by o.
func (c Cell) Shifted(o Offset) Cell {
	return Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}
