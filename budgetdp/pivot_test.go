package budgetdp_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/budgetdp"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countPair builds the forward/backward count tables of one instance.
func countPair(t *testing.T, g *grid.Grid, m grid.Moves, src, dst grid.Cell, budget int) (*budgetdp.CountTable, *budgetdp.CountTable) {
	t.Helper()
	fwd, err := budgetdp.NewCountTable(g, m, budgetdp.Forward, src, budget)
	require.NoError(t, err)
	bwd, err := budgetdp.NewCountTable(g, m, budgetdp.Backward, dst, budget)
	require.NoError(t, err)
	return fwd, bwd
}

// optPair builds the forward/backward optimal tables of one instance.
func optPair(t *testing.T, g *grid.Grid, m grid.Moves, src, dst grid.Cell, budget int) (*budgetdp.OptTable, *budgetdp.OptTable) {
	t.Helper()
	fwd, err := budgetdp.NewOptTable(g, m, budgetdp.Forward, src, budget)
	require.NoError(t, err)
	bwd, err := budgetdp.NewOptTable(g, m, budgetdp.Backward, dst, budget)
	require.NoError(t, err)
	return fwd, bwd
}

// TestCombine_PivotCostChargedOnce is the worked example pinning the split
// correction: both halves charge the pivot's cost, so the split bound is
// shifted by Cost(pivot). Grid [[0,-2,0]] under budget 3 has exactly one
// path, of total cost 2; it must be counted exactly once, not lost to a
// double charge.
func TestCombine_PivotCostChargedOnce(t *testing.T) {
	g := mustGrid(t, [][]int{{0, -2, 0}})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2}
	pivot := grid.Cell{Row: 0, Col: 1}

	fwd, bwd := countPair(t, g, orth, src, dst, 3)
	n, err := budgetdp.CombineCounts(fwd, bwd, pivot)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "the single cost-2 path must be counted once under budget 3")

	// Budget 2: the same path costs exactly the budget and the bound is
	// strict, so nothing is feasible.
	fwd, bwd = countPair(t, g, orth, src, dst, 2)
	n, err = budgetdp.CombineCounts(fwd, bwd, pivot)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "cost 2 must be discarded under strict budget 2")
}

// TestCombineCounts_DegeneratePivotSource verifies the split symmetry: with
// the pivot at the source, the combined count equals the plain backward
// count of all feasible source→target paths.
func TestCombineCounts_DegeneratePivotSource(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, -2, 3},
		{0, grid.Impassable, 2},
		{4, 1, 5},
	})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}

	fwd, bwd := countPair(t, g, orth, src, dst, 3)
	n, err := budgetdp.CombineCounts(fwd, bwd, src)
	require.NoError(t, err)
	assert.Equal(t, bwd.TotalAt(src), n, "pivot=source must collapse to the backward table")
	assert.Equal(t, fwd.TotalAt(dst), n, "and to the forward table at the target")
	assert.Equal(t, 2, n, "two monotone routes dodge the blocked center within budget")
}

// TestCombineCounts_MidPivotRestricts verifies the pivot constraint drops
// paths that do not pass through it.
func TestCombineCounts_MidPivotRestricts(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1}

	fwd, bwd := countPair(t, g, orth, src, dst, 1)
	n, err := budgetdp.CombineCounts(fwd, bwd, grid.Cell{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the right-then-down route passes (0,1)")

	n, err = budgetdp.CombineCounts(fwd, bwd, src)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "both routes pass the source")
}

// TestCombineOptimum_SubtractsPivotValue verifies the pivot's value, present
// in both halves, is subtracted exactly once.
func TestCombineOptimum_SubtractsPivotValue(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 7, 0}})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2}
	pivot := grid.Cell{Row: 0, Col: 1}

	fwd, bwd := optPair(t, g, orth, src, dst, 1)
	optVal, numOpt, err := budgetdp.CombineOptimum(fwd, bwd, pivot)
	require.NoError(t, err)
	assert.Equal(t, 7, optVal, "the 7 at the pivot counts once, not twice")
	assert.Equal(t, 1, numOpt)
}

// TestCombineOptimum_BudgetSplits verifies the optimum searches every
// complementary budget split, not just the extremes.
func TestCombineOptimum_BudgetSplits(t *testing.T) {
	// Costs on both sides of the pivot: the best path spends 2 before and
	// 2 after the pivot, collecting 6+6; budget 5 admits it (4 < 5).
	g := mustGrid(t, [][]int{{0, -2, 6, 0, -2, 6}})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 5}
	pivot := grid.Cell{Row: 0, Col: 3}

	fwd, bwd := optPair(t, g, orth, src, dst, 5)
	optVal, numOpt, err := budgetdp.CombineOptimum(fwd, bwd, pivot)
	require.NoError(t, err)
	assert.Equal(t, 12, optVal)
	assert.Equal(t, 1, numOpt)

	// Budget 4 cannot absorb the total cost 4 under a strict bound.
	fwd, bwd = optPair(t, g, orth, src, dst, 4)
	_, _, err = budgetdp.CombineOptimum(fwd, bwd, pivot)
	assert.ErrorIs(t, err, budgetdp.ErrNoFeasiblePath)
}

// TestCombineOptimum_UnreachablePivot verifies the feasibility failure when
// no split reaches the pivot from both ends.
func TestCombineOptimum_UnreachablePivot(t *testing.T) {
	g := mustGrid(t, [][]int{{0, -2, 0}})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2}
	pivot := grid.Cell{Row: 0, Col: 1}

	fwd, bwd := optPair(t, g, orth, src, dst, 2)
	_, _, err := budgetdp.CombineOptimum(fwd, bwd, pivot)
	assert.ErrorIs(t, err, budgetdp.ErrNoFeasiblePath)

	// Counting the same instance is not an error, just zero.
	cf, cb := countPair(t, g, orth, src, dst, 2)
	n, err := budgetdp.CombineCounts(cf, cb, pivot)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestCombine_TableMismatch verifies direction and budget sanity checks.
func TestCombine_TableMismatch(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1}

	fwd, err := budgetdp.NewCountTable(g, orth, budgetdp.Forward, src, 2)
	require.NoError(t, err)
	fwd2, err := budgetdp.NewCountTable(g, orth, budgetdp.Forward, src, 2)
	require.NoError(t, err)
	_, err = budgetdp.CombineCounts(fwd, fwd2, src)
	assert.ErrorIs(t, err, budgetdp.ErrTableMismatch, "two forward tables must be rejected")

	bwdShort, err := budgetdp.NewCountTable(g, orth, budgetdp.Backward, dst, 1)
	require.NoError(t, err)
	_, err = budgetdp.CombineCounts(fwd, bwdShort, src)
	assert.ErrorIs(t, err, budgetdp.ErrTableMismatch, "budget mismatch must be rejected")
}

// TestCombine_PivotValidation verifies endpoint errors for bad pivots.
func TestCombine_PivotValidation(t *testing.T) {
	g := mustGrid(t, [][]int{{0, grid.Impassable}, {0, 0}})
	src, dst := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1}

	fwd, bwd := countPair(t, g, orth, src, dst, 2)
	_, err := budgetdp.CombineCounts(fwd, bwd, grid.Cell{Row: 0, Col: 1})
	assert.ErrorIs(t, err, grid.ErrBlockedEndpoint)

	_, err = budgetdp.CombineCounts(fwd, bwd, grid.Cell{Row: 3, Col: 3})
	assert.ErrorIs(t, err, grid.ErrCellOutOfBounds)
}
