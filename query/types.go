// Package query defines the instance contract, result names, value
// envelope, and sentinel errors for the gridpath query router.
package query

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnsupportedQuery indicates a requested result name is unknown.
var ErrUnsupportedQuery = errors.New("query: unsupported result name")

// Result names a caller may request. The names match the answer objects of
// the exercise-generator domain this engine serves.
const (
	// NumPaths is the number of feasible paths source→pivot→target.
	NumPaths = "num_paths"
	// NumOptPaths is the number of feasible paths collecting the maximum value.
	NumOptPaths = "num_opt_paths"
	// OptVal is the maximum total value a feasible path can collect.
	OptVal = "opt_val"
	// OptPath is one path collecting the maximum value.
	OptPath = "opt_path"
	// ListOptPaths is the list of all optimum paths.
	ListOptPaths = "list_opt_paths"

	// TableNumTo is the path-count DP table anchored at the source.
	TableNumTo = "DPtable_num_to"
	// TableNumFrom is the path-count DP table anchored at the target.
	TableNumFrom = "DPtable_num_from"
	// TableOptTo is the optimal-value DP table anchored at the source.
	TableOptTo = "DPtable_opt_to"
	// TableOptFrom is the optimal-value DP table anchored at the target.
	TableOptFrom = "DPtable_opt_from"
	// TableNumOptTo is the optimum-count DP table anchored at the source.
	TableNumOptTo = "DPtable_num_opt_to"
	// TableNumOptFrom is the optimum-count DP table anchored at the target.
	TableNumOptFrom = "DPtable_num_opt_from"
)

// Instance is one immutable evaluation input: a weight grid, a movement
// regime, a strict cost budget, and the three path anchors.
type Instance struct {
	Grid    [][]int
	Diag    bool
	Budget  int
	From    grid.Cell
	Through grid.Cell
	To      grid.Cell
}

// Kind tags which field of a Value is populated.
type Kind int

const (
	// IntKind marks a scalar result.
	IntKind Kind = iota
	// TableKind marks a 3-D DP table indexed [row][col][spend].
	TableKind
	// PathKind marks a single ordered cell sequence.
	PathKind
	// PathListKind marks a list of paths.
	PathListKind
)

// Value is the tagged result envelope: exactly one field, selected by Kind,
// carries the payload.
type Value struct {
	Kind  Kind
	Int   int
	Table [][][]int
	Path  []grid.Cell
	Paths [][]grid.Cell
}

func intValue(n int) Value             { return Value{Kind: IntKind, Int: n} }
func tableValue(t [][][]int) Value     { return Value{Kind: TableKind, Table: t} }
func pathValue(p []grid.Cell) Value    { return Value{Kind: PathKind, Path: p} }
func pathsValue(p [][]grid.Cell) Value { return Value{Kind: PathListKind, Paths: p} }

// Options tunes an evaluation.
//
// Fields:
//   - MaxOptPaths — cap for OptPath/ListOptPaths enumeration; 0 = no cap.
//     Exercise generators usually cap the enumeration (the upstream default
//     is 100) since the number of optimal paths can grow exponentially.
type Options struct {
	MaxOptPaths int
}

// DefaultOptions returns Options with no enumeration cap.
func DefaultOptions() Options {
	return Options{MaxOptPaths: 0}
}
