package budgetdp

import (
	"github.com/katalvlaran/gridpath/grid"
)

// tableBase carries the parameters shared by every DP table of one instance
// evaluation: grid, movement regime, sweep direction, anchor cell, budget.
// Forward and Backward tables differ only in sweep order and move offsets;
// a single parametrized builder keeps the mirrored recurrences in lockstep.
type tableBase struct {
	g      *grid.Grid
	moves  grid.Moves
	dir    Direction
	anchor grid.Cell
	budget int
}

// newTableBase validates the construction parameters.
// Returns ErrBudgetOutOfRange for budget ≤ 0, budget > MaxBudget, or a table
// exceeding maxTableCells slots; grid endpoint errors for a bad anchor.
func newTableBase(g *grid.Grid, moves grid.Moves, dir Direction, anchor grid.Cell, budget int) (tableBase, error) {
	if budget <= 0 || budget > MaxBudget {
		return tableBase{}, ErrBudgetOutOfRange
	}
	if int64(g.Rows())*int64(g.Cols())*int64(budget) > maxTableCells {
		return tableBase{}, ErrBudgetOutOfRange
	}
	if err := g.CheckEndpoint(anchor); err != nil {
		return tableBase{}, err
	}

	return tableBase{g: g, moves: moves, dir: dir, anchor: anchor, budget: budget}, nil
}

// sweep visits every cell in an order that guarantees all cells a move can
// arrive from (relative to the anchor) are visited first: row-major for
// Forward, reverse row-major for Backward.
func (t tableBase) sweep(visit func(c grid.Cell)) {
	if t.dir == Forward {
		for r := 0; r < t.g.Rows(); r++ {
			for c := 0; c < t.g.Cols(); c++ {
				visit(grid.Cell{Row: r, Col: c})
			}
		}
		return
	}
	for r := t.g.Rows() - 1; r >= 0; r-- {
		for c := t.g.Cols() - 1; c >= 0; c-- {
			visit(grid.Cell{Row: r, Col: c})
		}
	}
}

// towardAnchor returns the offsets pointing from a cell to the neighbors a
// path arrives from: predecessors for Forward, successors for Backward.
func (t tableBase) towardAnchor() []grid.Offset {
	if t.dir == Forward {
		return t.moves.PredOffsets()
	}
	return t.moves.SuccOffsets()
}

// compatible reports whether two tables belong to the same instance.
func (t tableBase) compatible(o tableBase) bool {
	return t.g == o.g && t.moves == o.moves && t.budget == o.budget
}

// alloc3 builds a rows×cols×budget slab filled with init.
func (t tableBase) alloc3(init int) [][][]int {
	m := make([][][]int, t.g.Rows())
	for r := range m {
		m[r] = make([][]int, t.g.Cols())
		for c := range m[r] {
			layer := make([]int, t.budget)
			if init != 0 {
				for b := range layer {
					layer[b] = init
				}
			}
			m[r][c] = layer
		}
	}
	return m
}

// export3 deep-copies a 3-D table for external consumption.
func export3(src [][][]int) [][][]int {
	out := make([][][]int, len(src))
	for r := range src {
		out[r] = make([][]int, len(src[r]))
		for c := range src[r] {
			layer := make([]int, len(src[r][c]))
			copy(layer, src[r][c])
			out[r][c] = layer
		}
	}
	return out
}

// CountTable counts, per cell and exact cumulative spend, the feasible
// monotone paths between the anchor and that cell. Spend is anchor-inclusive:
// the anchor's own cost is charged at the base case, and every transition
// into a cell charges that cell's cost. Budget is a strict upper bound, so
// slots cover spend ∈ [0, budget).
type CountTable struct {
	tableBase
	count [][][]int
}

// NewCountTable builds the path-count table anchored at anchor.
// Complexity: O(R×C×budget×d) time, O(R×C×budget) memory (d = 2 or 3 moves).
func NewCountTable(g *grid.Grid, moves grid.Moves, dir Direction, anchor grid.Cell, budget int) (*CountTable, error) {
	base, err := newTableBase(g, moves, dir, anchor, budget)
	if err != nil {
		return nil, err
	}
	t := &CountTable{tableBase: base, count: base.alloc3(0)}

	if c0 := g.Cost(anchor); c0 < budget {
		t.count[anchor.Row][anchor.Col][c0] = 1
	}
	offsets := t.towardAnchor()
	t.sweep(func(c grid.Cell) {
		if c == anchor || !g.Walkable(c) {
			return
		}
		step := g.Cost(c)
		slot := t.count[c.Row][c.Col]
		for _, o := range offsets {
			n := c.Shifted(o)
			if !g.InBounds(n) || !g.Walkable(n) {
				continue
			}
			from := t.count[n.Row][n.Col]
			// moves that would push spend to ≥ budget are discarded, not errors
			for b := 0; b+step < budget; b++ {
				if from[b] != 0 {
					slot[b+step] += from[b]
				}
			}
		}
	})

	return t, nil
}

// Budget returns the table depth (strict spend upper bound).
func (t *CountTable) Budget() int { return t.budget }

// Anchor returns the cell the table is anchored at.
func (t *CountTable) Anchor() grid.Cell { return t.anchor }

// At returns the number of feasible paths between the anchor and c whose
// cumulative cost equals exactly spend.
func (t *CountTable) At(c grid.Cell, spend int) int {
	return t.count[c.Row][c.Col][spend]
}

// TotalAt returns the number of feasible paths between the anchor and c
// over every spend within budget.
func (t *CountTable) TotalAt(c grid.Cell) int {
	total := 0
	for _, n := range t.count[c.Row][c.Col] {
		total += n
	}
	return total
}

// Export deep-copies the table as [row][col][spend] counts.
func (t *CountTable) Export() [][][]int {
	return export3(t.count)
}

// OptTable stores, per cell and exact cumulative spend, the maximum path
// value attainable and the number of paths attaining it. Slots no feasible
// path arrives at hold Unreachable. Charging is anchor-inclusive, exactly
// as in CountTable.
type OptTable struct {
	tableBase
	bestVal [][][]int
	bestCnt [][][]int
}

// NewOptTable builds the optimal-value and optimum-count tables anchored at
// anchor. Ties between transitions producing the same maximal value sum
// their counts; transitions producing a smaller value are dropped.
// Complexity: O(R×C×budget×d) time, O(R×C×budget) memory.
func NewOptTable(g *grid.Grid, moves grid.Moves, dir Direction, anchor grid.Cell, budget int) (*OptTable, error) {
	base, err := newTableBase(g, moves, dir, anchor, budget)
	if err != nil {
		return nil, err
	}
	t := &OptTable{
		tableBase: base,
		bestVal:   base.alloc3(Unreachable),
		bestCnt:   base.alloc3(0),
	}

	if c0 := g.Cost(anchor); c0 < budget {
		t.bestVal[anchor.Row][anchor.Col][c0] = g.Value(anchor)
		t.bestCnt[anchor.Row][anchor.Col][c0] = 1
	}
	offsets := t.towardAnchor()
	t.sweep(func(c grid.Cell) {
		if c == anchor || !g.Walkable(c) {
			return
		}
		step, gain := g.Cost(c), g.Value(c)
		vals := t.bestVal[c.Row][c.Col]
		cnts := t.bestCnt[c.Row][c.Col]
		for _, o := range offsets {
			n := c.Shifted(o)
			if !g.InBounds(n) || !g.Walkable(n) {
				continue
			}
			fromVal := t.bestVal[n.Row][n.Col]
			fromCnt := t.bestCnt[n.Row][n.Col]
			for b := 0; b+step < budget; b++ {
				if fromVal[b] == Unreachable {
					continue
				}
				cand := fromVal[b] + gain
				switch slot := b + step; {
				case cand > vals[slot]:
					vals[slot] = cand
					cnts[slot] = fromCnt[b]
				case cand == vals[slot]:
					cnts[slot] += fromCnt[b]
				}
			}
		}
	})

	return t, nil
}

// Budget returns the table depth (strict spend upper bound).
func (t *OptTable) Budget() int { return t.budget }

// Anchor returns the cell the table is anchored at.
func (t *OptTable) Anchor() grid.Cell { return t.anchor }

// ValueAt returns the maximum path value between the anchor and c at exactly
// spend, or Unreachable.
func (t *OptTable) ValueAt(c grid.Cell, spend int) int {
	return t.bestVal[c.Row][c.Col][spend]
}

// CountAt returns the number of paths attaining ValueAt(c, spend).
func (t *OptTable) CountAt(c grid.Cell, spend int) int {
	return t.bestCnt[c.Row][c.Col][spend]
}

// FoldedValues exports the budget-monotone view of the optimal-value table:
// slot b holds the best value over all spends ≤ b, or Unreachable if the
// cell cannot be reached within b. The result is non-decreasing in b.
func (t *OptTable) FoldedValues() [][][]int {
	out := export3(t.bestVal)
	for r := range out {
		for c := range out[r] {
			layer := out[r][c]
			for b := 1; b < len(layer); b++ {
				if layer[b-1] > layer[b] {
					layer[b] = layer[b-1]
				}
			}
		}
	}
	return out
}

// FoldedCounts exports, per budget b, the number of paths attaining the
// folded optimum at b: the sum of exact-spend counts over every spend ≤ b
// whose best value equals the folded maximum.
func (t *OptTable) FoldedCounts() [][][]int {
	out := make([][][]int, t.g.Rows())
	for r := range out {
		out[r] = make([][]int, t.g.Cols())
		for c := range out[r] {
			vals := t.bestVal[r][c]
			cnts := t.bestCnt[r][c]
			layer := make([]int, t.budget)
			best, acc := Unreachable, 0
			for b := 0; b < t.budget; b++ {
				switch {
				case vals[b] > best:
					best, acc = vals[b], cnts[b]
				case vals[b] == best && best != Unreachable:
					acc += cnts[b]
				}
				layer[b] = acc
			}
			out[r][c] = layer
		}
	}
	return out
}
