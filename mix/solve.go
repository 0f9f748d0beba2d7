// Package mix - unified dispatcher for the mix optimizer.
package mix

import (
	"errors"
	"math"

	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/solver"
)

// Optimize produces a production-mix plan from a demand forecast.
//
// Contracts:
//   - demand maps product → ordered forecast series (as produced by
//     forecast.RunAll, or supplied by an external caller).
//   - lines are read-only seed data; the call never mutates its inputs and
//     builds per-call state only, so concurrent invocations are safe.
//   - Every failure path converts to an error Result with a stable
//     diagnostic code; Optimize never panics on user input.
//
// The heuristic strategy always returns a success Result (capacity shortage
// degrades the fulfillment-rate KPI). The exact strategy may conclude
// Infeasible, Timeout or Unavailable — see the package documentation.
func Optimize(demand map[string][]plan.DemandPoint, lines []plan.Line, costs CostParams, opts Options) Result {
	if opts.TimeLimit < 0 {
		return dataShapeFailure(solver.ErrBadTimeLimit)
	}

	switch opts.Strategy {
	case StrategyHeuristic:
		m, err := validateAll(demand, lines, costs, 1)
		if err != nil {
			return dataShapeFailure(err)
		}

		return simpleAssignment(m)

	case StrategyExact:
		m, err := validateAll(demand, lines, costs, math.MaxInt32)
		if err != nil {
			return dataShapeFailure(err)
		}

		assign, changeCost, serr := m.solveExact(opts)
		switch {
		case serr == nil:
			return m.extractPlan(assign, changeCost)
		case errors.Is(serr, ErrMissingChangeover):
			return dataShapeFailure(serr)
		default:
			return solverFailure(solver.StateOf(serr))
		}

	default:
		return dataShapeFailure(ErrUnknownStrategy)
	}
}

// solverFailure maps a terminal solver state to the caller-facing failure
// envelope with its actionable suggestion.
func solverFailure(state solver.State) Result {
	switch state {
	case solver.Infeasible:
		return failure(state,
			"no feasible assignment",
			"relax capacity or eligibility constraints")
	case solver.Timeout:
		return failure(state,
			"time limit exceeded before the search concluded",
			"reduce problem size or increase the time budget")
	default:
		return failure(solver.Unavailable,
			"exact backend unavailable for this model size",
			"fall back to the heuristic strategy")
	}
}
