// File: query/example_test.go
package query_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/query"
)

// ExampleEvaluate answers the scalar queries of a small instance in one
// call. Only the DP tables the request needs are built.
func ExampleEvaluate() {
	inst := query.Instance{
		Grid: [][]int{
			{1, -2, 3},
			{0, grid.Impassable, 2},
			{4, 1, 5},
		},
		Diag:    false,
		Budget:  3,
		From:    grid.Cell{Row: 0, Col: 0},
		Through: grid.Cell{Row: 0, Col: 0},
		To:      grid.Cell{Row: 2, Col: 2},
	}

	res, err := query.Evaluate(inst, nil, query.NumPaths, query.OptVal, query.NumOptPaths)
	if err != nil {
		fmt.Println("evaluate:", err)
		return
	}

	fmt.Println("feasible paths:", res[query.NumPaths].Int)
	fmt.Println("best value:    ", res[query.OptVal].Int)
	fmt.Println("optimal paths: ", res[query.NumOptPaths].Int)

	// Output:
	// feasible paths: 2
	// best value:     11
	// optimal paths:  2
}

// ExampleEvaluate_optPath reconstructs one optimum path explicitly.
func ExampleEvaluate_optPath() {
	inst := query.Instance{
		Grid:    [][]int{{0, 4, 0}, {0, 0, 7}},
		Budget:  1,
		From:    grid.Cell{Row: 0, Col: 0},
		Through: grid.Cell{Row: 0, Col: 1},
		To:      grid.Cell{Row: 1, Col: 2},
	}

	res, _ := query.Evaluate(inst, nil, query.OptPath)
	for _, c := range res[query.OptPath].Path {
		fmt.Printf("(%d,%d) ", c.Row, c.Col)
	}
	fmt.Println()

	// Output:
	// (0,0) (0,1) (1,1) (1,2)
}
