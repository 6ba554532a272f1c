package grid

// Moves is the monotone movement regime shared by every DP table builder.
// A move steps one row down, one column right, or — when diagonal moves
// are enabled — one row down and one column right simultaneously. No other
// moves exist, so paths are non-decreasing in both coordinates.
type Moves struct {
	diag bool
}

// Predecessor and successor offset tables, ordered vertical, horizontal,
// diagonal. Slicing off the last element yields the orthogonal-only set.
var (
	predOffsets = []Offset{{DRow: -1, DCol: 0}, {DRow: 0, DCol: -1}, {DRow: -1, DCol: -1}}
	succOffsets = []Offset{{DRow: 1, DCol: 0}, {DRow: 0, DCol: 1}, {DRow: 1, DCol: 1}}
)

// NewMoves returns the movement regime for the given diagonal flag.
func NewMoves(diag bool) Moves {
	return Moves{diag: diag}
}

// Diagonal reports whether diagonal moves are part of the regime.
func (m Moves) Diagonal() bool { return m.diag }

// PredOffsets returns the displacements that lead INTO a cell:
// {(-1,0),(0,-1)} and, with diagonals, (-1,-1). Callers must discard
// offsets that leave the grid.
func (m Moves) PredOffsets() []Offset {
	if m.diag {
		return predOffsets
	}
	return predOffsets[:2]
}

// SuccOffsets returns the displacements that lead OUT OF a cell:
// {(+1,0),(0,+1)} and, with diagonals, (+1,+1).
func (m Moves) SuccOffsets() []Offset {
	if m.diag {
		return succOffsets
	}
	return succOffsets[:2]
}

// Contiguous reports whether a single valid move leads from a to b.
func (m Moves) Contiguous(a, b Cell) bool {
	for _, o := range m.SuccOffsets() {
		if a.Shifted(o) == b {
			return true
		}
	}
	return false
}

// PathFeasible reports whether every consecutive pair of cells in path is
// related by a single valid move. Empty and single-cell paths are feasible.
func (m Moves) PathFeasible(path []Cell) bool {
	for i := 0; i+1 < len(path); i++ {
		if !m.Contiguous(path[i], path[i+1]) {
			return false
		}
	}
	return true
}
