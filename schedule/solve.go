// Package schedule - unified dispatcher for the workforce scheduler.
package schedule

import (
	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/solver"
)

// Build produces a shift schedule from a mix plan and a worker roster.
//
// Contracts:
//   - mixPlan may come from mix.Optimize or from an external caller; only
//     its shape is assumed, never its provenance.
//   - Inputs are read-only; the call builds per-call state only, so
//     concurrent invocations are safe.
//   - Every failure path converts to an error Result with a stable
//     diagnostic code; Build never panics on user input.
//
// The heuristic strategy always returns a success Result (under-staffing
// degrades the fulfillment-rate KPI). The exact strategy may conclude
// Infeasible, Timeout or Unavailable — see the package documentation.
func Build(mixPlan []plan.MixPlanEntry, workers []plan.Worker, opts Options) Result {
	if opts.TimeLimit < 0 {
		return dataShapeFailure(solver.ErrBadTimeLimit)
	}

	m, err := validateAll(mixPlan, workers, opts)
	if err != nil {
		return dataShapeFailure(err)
	}

	switch opts.Strategy {
	case StrategyHeuristic:
		return greedySeniority(m)

	case StrategyExact:
		picks, serr := m.solveExact(opts)
		if serr != nil {
			return solverFailure(solver.StateOf(serr))
		}

		return m.extractSchedule(picks)

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
			"no feasible schedule",
			"relax weekly hour caps or rest constraints, or enlarge the roster")
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
