// Package budgetdp defines directions, limits, and sentinel errors for the
// budget-indexed dynamic-programming tables of github.com/katalvlaran/gridpath.
package budgetdp

import "errors"

// Unreachable marks a (cell, spend) slot no feasible path arrives at.
// Path values are never negative, so -1 is unambiguous in exported tables.
const Unreachable = -1

// MaxBudget bounds the budget a caller may request. Tables are O(R·C·budget)
// in memory, so an unreasonable budget must fail fast instead of thrashing.
const MaxBudget = 1 << 20

// maxTableCells caps the total number of table slots (rows × cols × budget).
const maxTableCells = 1 << 28

// Sentinel errors for table construction and combination.
var (
	// ErrBudgetOutOfRange indicates budget ≤ 0, budget > MaxBudget, or a
	// table that would exceed maxTableCells slots.
	ErrBudgetOutOfRange = errors.New("budgetdp: budget out of range")
	// ErrTableMismatch indicates tables built with incompatible direction,
	// grid, movement regime, or budget were combined.
	ErrTableMismatch = errors.New("budgetdp: tables not built for the same instance")
	// ErrNoFeasiblePath indicates an optimum was requested but no feasible
	// path reaches the pivot from both anchors under any budget split.
	ErrNoFeasiblePath = errors.New("budgetdp: no feasible path")
)

// Direction selects the anchor of a DP table sweep.
type Direction int

const (
	// Forward anchors tables at the path source; spends accumulate from it.
	Forward Direction = iota
	// Backward anchors tables at the path target; the sweep and the move
	// offsets are mirrored, the recurrence is otherwise identical.
	Backward
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
