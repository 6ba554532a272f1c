package grid

// Grid wraps a rectangular matrix of signed cell weights. It is immutable
// once built: New deep-copies the input, and every accessor is a pure lookup.
//
// Weight sign convention:
//   - weight > 0 — reward collected when the cell is visited
//   - weight < 0 — cost charged against the path budget
//   - weight == Impassable — the cell may not be visited at all
type Grid struct {
	rows, cols int
	weights    [][]int
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrInvalidShape if values has no rows, no columns,
// or rows of differing lengths.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidShape
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrInvalidShape
		}
	}
	// Deep copy to prevent external mutation
	weights := make([][]int, rows)
	for r := 0; r < rows; r++ {
		weights[r] = make([]int, cols)
		copy(weights[r], values[r])
	}

	return &Grid{rows: rows, cols: cols, weights: weights}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Weight returns the raw signed weight stored at c.
// c must be in bounds.
func (g *Grid) Weight(c Cell) int {
	return g.weights[c.Row][c.Col]
}

// Cost returns the budget charge of visiting c: max(-weight, 0).
// Only cells with negative weight cost anything.
func (g *Grid) Cost(c Cell) int {
	if w := g.weights[c.Row][c.Col]; w < 0 {
		return -w
	}
	return 0
}

// Value returns the reward of visiting c: max(weight, 0).
// Only cells with positive weight are worth anything.
func (g *Grid) Value(c Cell) int {
	if w := g.weights[c.Row][c.Col]; w > 0 {
		return w
	}
	return 0
}

// Walkable reports whether c may appear on a path.
func (g *Grid) Walkable(c Cell) bool {
	return g.weights[c.Row][c.Col] != Impassable
}

// CheckEndpoint validates a path endpoint: it must be in bounds and
// walkable. Returns ErrCellOutOfBounds or ErrBlockedEndpoint.
func (g *Grid) CheckEndpoint(c Cell) error {
	if !g.InBounds(c) {
		return ErrCellOutOfBounds
	}
	if !g.Walkable(c) {
		return ErrBlockedEndpoint
	}
	return nil
}
