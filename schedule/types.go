// Package schedule - types, options and sentinel errors.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/solver"
)

// Sentinel errors for scheduling inputs.
var (
	// ErrNoPlan indicates the mix plan is empty.
	ErrNoPlan = errors.New("schedule: mix plan is empty")
	// ErrBadPlanEntry indicates a plan entry with an empty line ID, a
	// period below 1, or negative planned units.
	ErrBadPlanEntry = errors.New("schedule: malformed mix plan entry")
	// ErrNoWorkers indicates an empty roster.
	ErrNoWorkers = errors.New("schedule: no workers supplied")
	// ErrBadWorker indicates a worker with an empty ID, a non-positive
	// wage, or a non-positive weekly hour cap.
	ErrBadWorker = errors.New("schedule: malformed worker")
	// ErrUnknownStrategy indicates an unrecognized Strategy value.
	ErrUnknownStrategy = errors.New("schedule: unknown strategy")
)

const (
	// DaysPerWeek is the planning period length in days.
	DaysPerWeek = 7
	// UnitsPerWorkerShift is the output one worker covers in one shift.
	UnitsPerWorkerShift = 100
	// HoursPerShift is the length of one shift.
	HoursPerShift = 8
	// MaxNightsPerWindow caps night shifts within any NightWindowDays span.
	MaxNightsPerWindow = 3
	// NightWindowDays is the sliding-window length for the night cap.
	NightWindowDays = 4
	// SoftOvertimeHours is the weekly hour threshold above which the exact
	// objective charges the overtime penalty.
	SoftOvertimeHours = 40
	// OvertimePenaltyPerHour prices each hour above SoftOvertimeHours.
	OvertimePenaltyPerHour = 25.0
	// NightAversePenalty prices one night shift given to a worker who does
	// not prefer nights.
	NightAversePenalty = 200.0
	// DefaultTimeLimit bounds the exact search wall-clock time.
	DefaultTimeLimit = 10 * time.Second
)

// Strategy selects the scheduling approach.
type Strategy uint8

const (
	// StrategyHeuristic is the seniority-greedy assignment; always succeeds.
	StrategyHeuristic Strategy = iota
	// StrategyExact is the constraint search; it proves optimality or
	// infeasibility under a time budget.
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

// Options configures one scheduling call.
type Options struct {
	// Strategy selects heuristic or exact (default heuristic).
	Strategy Strategy

	// TimeLimit bounds the exact search; zero selects DefaultTimeLimit,
	// negative is rejected. Ignored by the heuristic.
	TimeLimit time.Duration

	// Start anchors period 1, day 1 on a calendar date.
	// Zero means the current UTC day.
	Start time.Time
}

// DefaultOptions returns the canonical schedule configuration.
func DefaultOptions() Options {
	return Options{Strategy: StrategyHeuristic, TimeLimit: DefaultTimeLimit}
}

// KPI summarizes a produced schedule.
type KPI struct {
	TotalCost          float64 `json:"total_cost"`
	TotalOvertimeHours int     `json:"total_overtime_hours"`
	NightBiasIndex     float64 `json:"night_bias_index"`
	FulfillmentRate    float64 `json:"fulfillment_rate"`
}

// Result is the outward-facing envelope of one scheduling call.
// Exactly one of Entries (success) or Diagnostic (failure) is meaningful.
// State reports the exact solver's terminal state; heuristic results and
// pre-model data-shape failures keep the zero state (Built).
type Result struct {
	Outcome    plan.Outcome         `json:"outcome"`
	State      solver.State         `json:"-"`
	Entries    []plan.ScheduleEntry `json:"schedule,omitempty"`
	KPI        KPI                  `json:"kpi"`
	Diagnostic *plan.Diagnostic     `json:"diagnostic,omitempty"`
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
