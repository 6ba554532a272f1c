// Package grid models a rectangular field of signed cell weights and the
// monotone movement regime over it.
//
// What:
//
//   - Grid wraps a deep-copied [][]int weight matrix and derives per-cell
//     Cost (magnitude of a negative weight) and Value (a positive weight).
//   - Cells with weight == Impassable (-1) may not be visited.
//   - Moves enumerates predecessor/successor offsets for the orthogonal-only
//     or orthogonal+diagonal regime, and checks single-move contiguity and
//     whole-path feasibility.
//
// Why:
//
//   - One shared move model guarantees consistent path semantics across
//     every DP table built on top of the grid.
//   - Immutability lets tables be combined and backtracked without copies.
//
// Complexity:
//
//   - New: O(R×C) time and memory (deep copy).
//   - All accessors: O(1). PathFeasible: O(len(path)).
//
// Errors:
//
//   - ErrInvalidShape: empty or non-rectangular input.
//   - ErrCellOutOfBounds: endpoint coordinate outside the grid.
//   - ErrBlockedEndpoint: endpoint placed on an impassable cell.
package grid
