// Package budgetdp builds budget-indexed dynamic-programming tables over a
// weight grid, combines them at a through-cell, and enumerates optimal paths.
//
// What:
//
//   - CountTable: per (cell, exact spend), the number of feasible monotone
//     paths between an anchor cell and that cell.
//   - OptTable: per (cell, exact spend), the maximum collectible value and
//     the number of paths attaining it, with budget-monotone folded views.
//   - CombineCounts / CombineOptimum: merge a Forward and a Backward table
//     at a pivot cell over complementary budget splits, answering queries
//     for paths source→pivot→target.
//   - EnumerateOptimal: explicit stack-based backtracking that reconstructs
//     every optimum path.
//
// Semantics:
//
//   - The budget is a STRICT upper bound on cumulative spend: a path is
//     feasible iff its total cost ≤ budget-1. Tables carry exactly budget
//     slots, spend ∈ [0, budget).
//   - Spend and value are anchor-inclusive: the anchor's own cost/value is
//     charged at the base case, every transition charges the entered cell.
//     Moves that would push spend to ≥ budget discard the path — never an
//     error.
//   - Forward and Backward tables share one parametrized builder; a
//     Backward sweep mirrors iteration order and move offsets only, so the
//     two recurrences cannot drift apart.
//   - At a pivot p both halves charge p once each; count splits therefore
//     range over b1+b2 ≤ budget-1+Cost(p), and the combined optimum
//     subtracts Value(p) once.
//
// Recurrence (Forward; Backward is the mirror image):
//
//	count[anchor][Cost(anchor)] = 1
//	count[c][b+Cost(c)] += count[n][b]   for every predecessor n of c
//	                                     and every b with b+Cost(c) < budget
//
//	bestVal[c][b+Cost(c)] = max over predecessors n of bestVal[n][b]+Value(c)
//	bestCnt sums the counts of the predecessors attaining the maximum.
//
// Complexity:
//
//   - Table build: O(R×C×budget×d) time, O(R×C×budget) memory (d = 2 or 3).
//   - Combination: O(budget²).
//   - Enumeration: output-sensitive; worst case exponential in the number
//     of optimal paths (cap via EnumOptions.MaxPaths).
//
// Errors:
//
//   - ErrBudgetOutOfRange: budget ≤ 0, > MaxBudget, or table too large.
//   - ErrTableMismatch: combining tables from different instances.
//   - ErrNoFeasiblePath: optimum requested, pivot unreachable in any split.
package budgetdp
