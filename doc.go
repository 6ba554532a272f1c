// Package gridpath is an in-memory engine for counting and optimizing
// budget-constrained monotone paths on 2D weight grids.
//
// 🚀 What is gridpath?
//
//	A small, pure-Go library that answers combinatorial path queries over
//	a rectangular grid of signed cell weights:
//		• How many monotone paths connect two cells within a cost budget?
//		• What is the maximum total reward a feasible path can collect?
//		• How many paths attain that maximum?
//		• Which paths are they, explicitly?
//	All four questions can additionally be constrained to paths that pass
//	through a designated intermediate cell.
//
// ✨ Why choose gridpath?
//
//   - Deterministic – no goroutines, no hidden state, tables built once
//   - Explicit errors – every failure mode is a sentinel you can errors.Is
//   - Pure Go – no cgo, no I/O, no logging inside the engine
//   - Inspectable – every DP table is exported on request
//
// Everything is organized under three subpackages:
//
//	grid/     — immutable weight grid, walkability, monotone move model
//	budgetdp/ — budget-indexed DP tables, through-cell combination,
//	            optimal-path enumeration
//	query/    — request router mapping result names to computations
//
// Quick ASCII example (weights; negative = cost, positive = reward):
//
//	    ┌────┬────┬────┐
//	    │  1 │ -2 │  3 │
//	    ├────┼────┼────┤
//	    │  0 │ -1 │  2 │
//	    ├────┼────┼────┤
//	    │  4 │  1 │  5 │
//	    └────┴────┴────┘
//
//	A path walks from the top-left to the bottom-right cell moving only
//	down, right (or diagonally, if enabled), spending the magnitudes of
//	the negative cells it visits and collecting the positive ones.
//
// Dive into the per-package doc.go files for recurrences, complexity
// notes and worked examples.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
