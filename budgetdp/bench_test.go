package budgetdp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/budgetdp"
	"github.com/katalvlaran/gridpath/grid"
)

// randomGrid builds an n×n grid with mixed rewards, tolls and walls.
// Corners are kept walkable so tables always have an anchor.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	weights := []int{grid.Impassable, -4, -2, 0, 1, 3, 7}
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = weights[rng.Intn(len(weights))]
		}
	}
	values[0][0], values[n-1][n-1] = 0, 0
	g, err := grid.New(values)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}
	return g
}

// BenchmarkNewCountTable measures the count-table sweep on a 100×100 grid
// with budget 50. Complexity: O(R×C×budget×d).
func BenchmarkNewCountTable(b *testing.B) {
	g := randomGrid(b, 100)
	moves := grid.NewMoves(false)
	src := grid.Cell{Row: 0, Col: 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := budgetdp.NewCountTable(g, moves, budgetdp.Forward, src, 50); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNewOptTable measures the optimal-value sweep under the diagonal
// regime on the same instance.
func BenchmarkNewOptTable(b *testing.B) {
	g := randomGrid(b, 100)
	moves := grid.NewMoves(true)
	src := grid.Cell{Row: 0, Col: 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := budgetdp.NewOptTable(g, moves, budgetdp.Forward, src, 50); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCombineOptimum measures the O(budget²) split scan.
func BenchmarkCombineOptimum(b *testing.B) {
	g := randomGrid(b, 50)
	moves := grid.NewMoves(false)
	src := grid.Cell{Row: 0, Col: 0}
	dst := grid.Cell{Row: 49, Col: 49}

	fwd, err := budgetdp.NewOptTable(g, moves, budgetdp.Forward, src, 90)
	if err != nil {
		b.Fatal(err)
	}
	bwd, err := budgetdp.NewOptTable(g, moves, budgetdp.Backward, dst, 90)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = budgetdp.CombineOptimum(fwd, bwd, src)
	}
}
