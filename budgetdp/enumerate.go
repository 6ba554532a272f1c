package budgetdp

import (
	"github.com/katalvlaran/gridpath/grid"
)

// EnumOptions tunes optimal-path enumeration.
//
// Fields:
//   - MaxPaths — stop after this many paths have been produced.
//     A value of 0 means no cap. The number of optimal paths can grow
//     exponentially with grid size, so batch consumers (e.g. exercise
//     generators) usually cap it.
type EnumOptions struct {
	MaxPaths int
}

// DefaultEnumOptions returns EnumOptions with no path cap.
func DefaultEnumOptions() EnumOptions {
	return EnumOptions{MaxPaths: 0}
}

// EnumerateOptimal reconstructs every feasible path source→pivot→target
// attaining the CombineOptimum value, by backtracking through the
// exact-spend optimal-value tables.
//
// For each exact budget split (b1, b2) attaining the optimum, the forward
// half is walked from the pivot back to the source and the backward half
// from the pivot on to the target; the halves are then concatenated. A path
// has exactly one (b1, b2) pair, so no path is produced twice.
//
// The traversal is an explicit stack-based DFS: depth is bounded by the path
// length (R+C), never by Go call-stack limits. Order is deterministic:
// splits by ascending forward spend, branches in offset order (vertical,
// horizontal, then diagonal).
//
// Returns ErrNoFeasiblePath when no feasible path through pivot exists.
// Worst case is exponential in the number of optimal paths; cap it with
// EnumOptions.MaxPaths.
func EnumerateOptimal(fwd, bwd *OptTable, pivot grid.Cell, opts *EnumOptions) ([][]grid.Cell, error) {
	optVal, _, err := CombineOptimum(fwd, bwd, pivot)
	if err != nil {
		return nil, err
	}
	o := DefaultEnumOptions()
	if opts != nil {
		o = *opts
	}

	g := fwd.g
	budget, bound := fwd.budget, fwd.budget-1+g.Cost(pivot)
	pivotVal := g.Value(pivot)

	var paths [][]grid.Cell
	capped := func() bool { return o.MaxPaths > 0 && len(paths) >= o.MaxPaths }

	for b1 := 0; b1 < budget && !capped(); b1++ {
		v1 := fwd.ValueAt(pivot, b1)
		if v1 == Unreachable {
			continue
		}
		var heads [][]grid.Cell // source→pivot halves, reused across b2
		for b2 := 0; b2 < budget && b1+b2 <= bound && !capped(); b2++ {
			v2 := bwd.ValueAt(pivot, b2)
			if v2 == Unreachable || v1+v2-pivotVal != optVal {
				continue
			}
			if heads == nil {
				heads = fwd.halfPaths(pivot, b1, o.MaxPaths)
				reverseAll(heads)
			}
			tails := bwd.halfPaths(pivot, b2, o.MaxPaths)
			for _, h := range heads {
				for _, t := range tails {
					full := make([]grid.Cell, 0, len(h)+len(t)-1)
					full = append(full, h...)
					full = append(full, t[1:]...)
					paths = append(paths, full)
					if capped() {
						return paths, nil
					}
				}
			}
		}
	}

	return paths, nil
}

// halfPaths walks from start toward the table anchor through the exact-spend
// optimal-value table, collecting every path whose value matches the table
// optimum at each step. A neighbor n one move closer to the anchor extends a
// path at (cell, spend) iff
//
//	bestVal[n][spend-Cost(cell)] == bestVal[cell][spend] - Value(cell)
//
// Paths are returned in walk order: start first, anchor last. limit > 0 caps
// the number of paths collected.
func (t *OptTable) halfPaths(start grid.Cell, spend int, limit int) [][]grid.Cell {
	type frame struct {
		cell  grid.Cell
		spend int
		trail []grid.Cell
	}
	g, offsets := t.g, t.towardAnchor()

	var out [][]grid.Cell
	stack := []frame{{cell: start, spend: spend, trail: []grid.Cell{start}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.cell == t.anchor {
			out = append(out, f.trail)
			if limit > 0 && len(out) >= limit {
				return out
			}
			continue
		}
		prevSpend := f.spend - g.Cost(f.cell)
		if prevSpend < 0 {
			continue
		}
		need := t.bestVal[f.cell.Row][f.cell.Col][f.spend] - g.Value(f.cell)
		// push in reverse so the first offset is explored first
		for i := len(offsets) - 1; i >= 0; i-- {
			n := f.cell.Shifted(offsets[i])
			if !g.InBounds(n) || !g.Walkable(n) {
				continue
			}
			if t.bestVal[n.Row][n.Col][prevSpend] != need {
				continue
			}
			trail := make([]grid.Cell, len(f.trail), len(f.trail)+1)
			copy(trail, f.trail)
			stack = append(stack, frame{cell: n, spend: prevSpend, trail: append(trail, n)})
		}
	}

	return out
}

// reverseAll reverses each path in place (anchor-first → anchor-last).
func reverseAll(paths [][]grid.Cell) {
	for _, p := range paths {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
}
