package budgetdp

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Through-cell combination.
//
// Both table halves are anchor-inclusive, so a pivot cell p is charged in
// the forward half (source→p) AND in the backward half (p→target). The
// correction is pinned as follows:
//
//   - counts: a path with forward spend b1 and backward spend b2 has true
//     cost b1+b2-Cost(p), so feasibility (cost < budget) becomes
//     b1+b2 ≤ budget-1+Cost(p). Splits are over EXACT spends, and a path
//     has exactly one (b1,b2) pair, so every path is counted once.
//   - value: the optimum subtracts Value(p) once from each split sum.

// checkPivot validates that fwd/bwd form a forward/backward pair over the
// same instance and that pivot is a legal through-cell.
func checkPivot(fwd, bwd tableBase, pivot grid.Cell) error {
	if fwd.dir != Forward || bwd.dir != Backward || !fwd.compatible(bwd) {
		return ErrTableMismatch
	}
	return fwd.g.CheckEndpoint(pivot)
}

// CombineCounts returns the number of feasible monotone paths
// source→pivot→target, summed over every exact budget split.
// Complexity: O(budget²).
func CombineCounts(fwd, bwd *CountTable, pivot grid.Cell) (int, error) {
	if err := checkPivot(fwd.tableBase, bwd.tableBase, pivot); err != nil {
		return 0, err
	}
	budget, bound := fwd.budget, fwd.budget-1+fwd.g.Cost(pivot)
	total := 0
	for b1 := 0; b1 < budget; b1++ {
		n1 := fwd.At(pivot, b1)
		if n1 == 0 {
			continue
		}
		for b2 := 0; b2 < budget && b1+b2 <= bound; b2++ {
			total += n1 * bwd.At(pivot, b2)
		}
	}

	return total, nil
}

// CombineOptimum returns the maximum value of a feasible path
// source→pivot→target and the number of paths attaining it.
// The pivot's own value, present in both halves, is subtracted once.
// Returns ErrNoFeasiblePath if the pivot is unreachable from either anchor
// under every split. Complexity: O(budget²).
func CombineOptimum(fwd, bwd *OptTable, pivot grid.Cell) (optVal, numOpt int, err error) {
	if err = checkPivot(fwd.tableBase, bwd.tableBase, pivot); err != nil {
		return 0, 0, err
	}
	budget, bound := fwd.budget, fwd.budget-1+fwd.g.Cost(pivot)
	pivotVal := fwd.g.Value(pivot)
	optVal, found := 0, false
	for b1 := 0; b1 < budget; b1++ {
		v1 := fwd.ValueAt(pivot, b1)
		if v1 == Unreachable {
			continue
		}
		for b2 := 0; b2 < budget && b1+b2 <= bound; b2++ {
			v2 := bwd.ValueAt(pivot, b2)
			if v2 == Unreachable {
				continue
			}
			switch cand := v1 + v2 - pivotVal; {
			case !found || cand > optVal:
				optVal, found = cand, true
				numOpt = fwd.CountAt(pivot, b1) * bwd.CountAt(pivot, b2)
			case cand == optVal:
				numOpt += fwd.CountAt(pivot, b1) * bwd.CountAt(pivot, b2)
			}
		}
	}
	if !found {
		return 0, 0, ErrNoFeasiblePath
	}

	return optVal, numOpt, nil
}
