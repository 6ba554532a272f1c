package query

import (
	"fmt"

	"github.com/katalvlaran/gridpath/budgetdp"
	"github.com/katalvlaran/gridpath/grid"
)

// needs records which DP tables a request set transitively requires, so an
// evaluation builds only what it reads.
type needs struct {
	fwdCount, bwdCount bool
	fwdOpt, bwdOpt     bool
	enumerate          bool
}

// requirements maps each result name onto the tables it needs.
var requirements = map[string]needs{
	NumPaths:        {fwdCount: true, bwdCount: true},
	NumOptPaths:     {fwdOpt: true, bwdOpt: true},
	OptVal:          {fwdOpt: true, bwdOpt: true},
	OptPath:         {fwdOpt: true, bwdOpt: true, enumerate: true},
	ListOptPaths:    {fwdOpt: true, bwdOpt: true, enumerate: true},
	TableNumTo:      {fwdCount: true},
	TableNumFrom:    {bwdCount: true},
	TableOptTo:      {fwdOpt: true},
	TableOptFrom:    {bwdOpt: true},
	TableNumOptTo:   {fwdOpt: true},
	TableNumOptFrom: {bwdOpt: true},
}

// Evaluate answers the requested result names for one instance.
//
// It validates the instance (grid shape, endpoint placement, budget range),
// builds only the DP tables the request set transitively requires, and
// returns a name→Value mapping. There is no partial success: either every
// requested result is computed or an error is returned and no mapping is.
//
// Errors: grid.ErrInvalidShape, grid.ErrCellOutOfBounds,
// grid.ErrBlockedEndpoint, budgetdp.ErrBudgetOutOfRange,
// budgetdp.ErrNoFeasiblePath (an optimum was requested but no feasible path
// passes the through-cell), ErrUnsupportedQuery.
func Evaluate(inst Instance, opts *Options, requested ...string) (map[string]Value, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Resolve the request set before any table is built.
	var need needs
	for _, name := range requested {
		req, ok := requirements[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuery, name)
		}
		need.fwdCount = need.fwdCount || req.fwdCount
		need.bwdCount = need.bwdCount || req.bwdCount
		need.fwdOpt = need.fwdOpt || req.fwdOpt
		need.bwdOpt = need.bwdOpt || req.bwdOpt
		need.enumerate = need.enumerate || req.enumerate
	}

	g, err := grid.New(inst.Grid)
	if err != nil {
		return nil, err
	}
	for _, c := range []grid.Cell{inst.From, inst.To, inst.Through} {
		if err = g.CheckEndpoint(c); err != nil {
			return nil, err
		}
	}
	if inst.Budget <= 0 || inst.Budget > budgetdp.MaxBudget {
		return nil, budgetdp.ErrBudgetOutOfRange
	}
	moves := grid.NewMoves(inst.Diag)

	// Build exactly the tables the request set needs.
	var fwdCount, bwdCount *budgetdp.CountTable
	var fwdOpt, bwdOpt *budgetdp.OptTable
	if need.fwdCount {
		if fwdCount, err = budgetdp.NewCountTable(g, moves, budgetdp.Forward, inst.From, inst.Budget); err != nil {
			return nil, err
		}
	}
	if need.bwdCount {
		if bwdCount, err = budgetdp.NewCountTable(g, moves, budgetdp.Backward, inst.To, inst.Budget); err != nil {
			return nil, err
		}
	}
	if need.fwdOpt {
		if fwdOpt, err = budgetdp.NewOptTable(g, moves, budgetdp.Forward, inst.From, inst.Budget); err != nil {
			return nil, err
		}
	}
	if need.bwdOpt {
		if bwdOpt, err = budgetdp.NewOptTable(g, moves, budgetdp.Backward, inst.To, inst.Budget); err != nil {
			return nil, err
		}
	}

	var optPaths [][]grid.Cell
	if need.enumerate {
		enumOpts := budgetdp.DefaultEnumOptions()
		enumOpts.MaxPaths = o.MaxOptPaths
		if optPaths, err = budgetdp.EnumerateOptimal(fwdOpt, bwdOpt, inst.Through, &enumOpts); err != nil {
			return nil, err
		}
	}

	results := make(map[string]Value, len(requested))
	for _, name := range requested {
		if _, done := results[name]; done {
			continue
		}
		var v Value
		switch name {
		case NumPaths:
			n, cErr := budgetdp.CombineCounts(fwdCount, bwdCount, inst.Through)
			if cErr != nil {
				return nil, cErr
			}
			v = intValue(n)
		case NumOptPaths:
			_, n, cErr := budgetdp.CombineOptimum(fwdOpt, bwdOpt, inst.Through)
			if cErr != nil {
				return nil, cErr
			}
			v = intValue(n)
		case OptVal:
			val, _, cErr := budgetdp.CombineOptimum(fwdOpt, bwdOpt, inst.Through)
			if cErr != nil {
				return nil, cErr
			}
			v = intValue(val)
		case OptPath:
			v = pathValue(optPaths[0])
		case ListOptPaths:
			v = pathsValue(optPaths)
		case TableNumTo:
			v = tableValue(fwdCount.Export())
		case TableNumFrom:
			v = tableValue(bwdCount.Export())
		case TableOptTo:
			v = tableValue(fwdOpt.FoldedValues())
		case TableOptFrom:
			v = tableValue(bwdOpt.FoldedValues())
		case TableNumOptTo:
			v = tableValue(fwdOpt.FoldedCounts())
		case TableNumOptFrom:
			v = tableValue(bwdOpt.FoldedCounts())
		}
		results[name] = v
	}

	return results, nil
}
