// Package query routes named result requests onto the gridpath engine.
//
// What:
//
//   - Instance bundles one evaluation input: weight grid, movement regime,
//     strict cost budget, and the source / through / target cells.
//   - Evaluate answers any subset of the supported result names, building
//     only the DP tables the request set transitively requires — asking for
//     num_paths alone never triggers the optimal-value builder.
//   - Value is a tagged envelope: scalar, 3-D table, path, or path list.
//
// Result names:
//
//	num_paths, num_opt_paths, opt_val, opt_path, list_opt_paths,
//	DPtable_num_to, DPtable_num_from, DPtable_opt_to, DPtable_opt_from,
//	DPtable_num_opt_to, DPtable_num_opt_from
//
// The engine performs no input parsing, no score computation, no
// presentation formatting, and no I/O of any kind; callers own all of that.
// All evaluation state is created per call and discarded with the result.
//
// Errors:
//
//   - ErrUnsupportedQuery: a requested name is unknown.
//   - grid.ErrInvalidShape / grid.ErrCellOutOfBounds / grid.ErrBlockedEndpoint:
//     structural input failures.
//   - budgetdp.ErrBudgetOutOfRange: budget ≤ 0 or unreasonably large.
//   - budgetdp.ErrNoFeasiblePath: an optimum was requested but no feasible
//     path passes the through-cell.
//
// There is no partial success: the full requested result set is computed,
// or evaluation fails and no results are returned.
package query
