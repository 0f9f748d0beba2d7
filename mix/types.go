// Package mix - types, options and sentinel errors.
package mix

import (
	"errors"
	"fmt"
	"time"

	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/solver"
)

// Sentinel errors for mix optimization inputs.
var (
	// ErrNoDemand indicates the demand map is empty or a series has no points.
	ErrNoDemand = errors.New("mix: demand forecast is empty")
	// ErrNoLines indicates the line list is empty.
	ErrNoLines = errors.New("mix: no production lines supplied")
	// ErrBadLine indicates a line with an empty ID, no eligible products,
	// or a non-positive daily capacity.
	ErrBadLine = errors.New("mix: malformed production line")
	// ErrBadDemand indicates a demand point with negative units or an
	// empty product key.
	ErrBadDemand = errors.New("mix: malformed demand series")
	// ErrBadUnitCost indicates a negative unit production cost.
	ErrBadUnitCost = errors.New("mix: unit cost must be non-negative")
	// ErrMissingChangeover indicates the changeover table lacks a product
	// pair the exact model needs; the gap must be fixed upstream rather
	// than defaulted to zero.
	ErrMissingChangeover = errors.New("mix: changeover table is missing a product pair")
	// ErrUnknownStrategy indicates an unrecognized Strategy value.
	ErrUnknownStrategy = errors.New("mix: unknown strategy")
)

const (
	// DaysPerWeek is the planning period length in days.
	DaysPerWeek = 7
	// DefaultUnitCost is the production cost per unit when the caller does
	// not parameterize it.
	DefaultUnitCost = 1000.0
	// DefaultTimeLimit bounds the exact search wall-clock time.
	DefaultTimeLimit = 10 * time.Second
)

// Strategy selects the optimization approach.
type Strategy uint8

const (
	// StrategyHeuristic is the even-split assignment; it always succeeds.
	StrategyHeuristic Strategy = iota
	// StrategyExact is the branch-and-bound assignment; it proves
	// optimality or infeasibility under a time budget.
	StrategyExact
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyHeuristic:
		return "heuristic"
	case StrategyExact:
		return "exact"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// CostParams parameterizes the objective of the exact strategy. The
// heuristic uses only UnitCost (for the estimated-cost KPI).
type CostParams struct {
	// UnitCost is the production cost per unit (default DefaultUnitCost).
	UnitCost float64

	// Changeovers is the flat (from, to) cost lookup. Required by the
	// exact strategy whenever more than one product competes over more
	// than one week; missing pairs are a data-shape failure.
	Changeovers plan.ChangeoverTable
}

// Options configures one optimization call.
type Options struct {
	// Strategy selects heuristic or exact (default heuristic).
	Strategy Strategy

	// TimeLimit bounds the exact search; zero selects DefaultTimeLimit,
	// negative is rejected. Ignored by the heuristic.
	TimeLimit time.Duration
}

// DefaultOptions returns the canonical mix configuration.
func DefaultOptions() Options {
	return Options{Strategy: StrategyHeuristic, TimeLimit: DefaultTimeLimit}
}

// KPI summarizes a produced mix plan.
type KPI struct {
	TotalDemand     int     `json:"total_demand"`
	TotalPlanned    int     `json:"total_planned"`
	FulfillmentRate float64 `json:"fulfillment_rate"`
	Changeovers     int     `json:"total_changeovers"`
	ChangeoverHours float64 `json:"changeover_hours"`
	EstimatedCost   float64 `json:"estimated_cost"`
}

// Result is the outward-facing envelope of one optimization call.
// Exactly one of Entries (success) or Diagnostic (failure) is meaningful.
// State reports the exact solver's terminal state; heuristic results and
// pre-model data-shape failures keep the zero state (Built).
type Result struct {
	Outcome    plan.Outcome        `json:"outcome"`
	State      solver.State        `json:"-"`
	Entries    []plan.MixPlanEntry `json:"mix_plan,omitempty"`
	KPI        KPI                 `json:"kpi"`
	Diagnostic *plan.Diagnostic    `json:"diagnostic,omitempty"`
}

// failure builds an error Result for a terminal solver state.
func failure(state solver.State, message, suggestion string) Result {
	return Result{
		Outcome: plan.OutcomeError,
		State:   state,
		Diagnostic: &plan.Diagnostic{
			Code:       state.Code(),
			Message:    message,
			Suggestion: suggestion,
		},
	}
}

// dataShapeFailure builds an error Result for malformed input, surfaced
// before any model construction.
func dataShapeFailure(err error) Result {
	return Result{
		Outcome: plan.OutcomeError,
		State:   solver.Built,
		Diagnostic: &plan.Diagnostic{
			Code:    plan.CodeDataShape,
			Message: err.Error(),
		},
	}
}
