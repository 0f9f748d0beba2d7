package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/linemind/planner/plan"
)

// Sentinel errors shared by the exact engines.
var (
	// ErrInfeasible indicates the search proved that no assignment satisfies
	// all constraints.
	ErrInfeasible = errors.New("solver: model is infeasible")

	// ErrTimeLimit indicates the wall-clock budget expired before the search
	// concluded.
	ErrTimeLimit = errors.New("solver: time limit exceeded")

	// ErrUnavailable indicates the embedded engine refused the instance
	// (model larger than the supported search space).
	ErrUnavailable = errors.New("solver: exact backend unavailable for this model size")

	// ErrBadTimeLimit indicates a negative time limit.
	ErrBadTimeLimit = errors.New("solver: time limit must be non-negative")
)

// State is one node of the solve state machine.
type State uint8

const (
	// Built: the model has been constructed but the search has not started.
	Built State = iota
	// Solving: the search is running.
	Solving
	// Optimal: the search completed and proved optimality of the incumbent.
	Optimal
	// Feasible: the search holds a feasible incumbent without an optimality
	// proof (not currently produced by the embedded engines, which either
	// finish or time out; kept for callers plugging richer backends).
	Feasible
	// Infeasible: the search proved no assignment satisfies all constraints.
	Infeasible
	// Unbounded: the objective is unbounded below (cannot occur with the
	// non-negative costs the planning models use; kept for completeness).
	Unbounded
	// Timeout: the wall-clock budget expired before a conclusion.
	Timeout
	// Unavailable: the backend refused to initialize for this instance.
	Unavailable
)

// stateNames maps State values to printable names.
var stateNames = [...]string{
	"Built", "Solving", "Optimal", "Feasible",
	"Infeasible", "Unbounded", "Timeout", "Unavailable",
}

// String returns the printable state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("State(%d)", uint8(s))
}

// Terminal reports whether the state ends the search.
func (s State) Terminal() bool {
	return s != Built && s != Solving
}

// Extractable reports whether the state admits plan extraction.
func (s State) Extractable() bool {
	return s == Optimal || s == Feasible
}

// Code maps a terminal failure state to its stable diagnostic code.
// Extractable and non-terminal states map to CodeUnknown.
func (s State) Code() plan.ErrorCode {
	switch s {
	case Infeasible, Unbounded:
		return plan.CodeInfeasibleModel
	case Timeout:
		return plan.CodeSolverTimeout
	case Unavailable:
		return plan.CodeSolverUnavailable
	default:
		return plan.CodeUnknown
	}
}

// StateOf maps an engine sentinel to its terminal state.
// Unrecognized errors map to Unavailable so that the caller still receives
// a terminal, fallback-able state rather than a crash.
func StateOf(err error) State {
	switch {
	case err == nil:
		return Optimal
	case errors.Is(err, ErrInfeasible):
		return Infeasible
	case errors.Is(err, ErrTimeLimit):
		return Timeout
	default:
		return Unavailable
	}
}

// checkMask makes deadline polling sparse: the clock is read once per
// 4096 Tick calls, keeping the per-node overhead negligible.
const checkMask = 4095

// Budget is a wall-clock deadline for one search. The zero value (or a
// non-positive limit) disables the deadline entirely.
//
// Expiry is sticky: once a deadline check fires, every later Tick reports
// true immediately, so a search aborts as a whole instead of pruning one
// subtree per clock read.
//
// Budget is single-goroutine state, created per invocation; it must not be
// shared across concurrent searches.
type Budget struct {
	active   bool
	expired  bool
	deadline time.Time
	steps    int
}

// NewBudget starts a budget of the given limit, counted from now.
// A non-positive limit yields an inactive budget.
func NewBudget(limit time.Duration) Budget {
	if limit <= 0 {
		return Budget{}
	}

	return Budget{active: true, deadline: time.Now().Add(limit)}
}

// Tick counts one node event and reports whether the deadline has passed.
// The clock is consulted only every 4096 events; once a check observes the
// deadline, Tick returns true on every subsequent call without counting.
func (b *Budget) Tick() bool {
	if b.expired {
		return true
	}
	b.steps++
	if !b.active || (b.steps&checkMask) != 0 {
		return false
	}
	if time.Now().After(b.deadline) {
		b.expired = true
	}

	return b.expired
}

// Expired reports whether a Tick check observed the deadline pass. A search
// that concluded without tripping a check keeps its result even when the
// clock has since moved past the deadline.
func (b *Budget) Expired() bool {
	return b.expired
}

// maxSearchNodes bounds the admissible search-space estimate of an
// instance. Beyond it the embedded depth-first engines are hopeless and
// refuse to start (ErrUnavailable) so callers can fall back to heuristics.
const maxSearchNodes = 1 << 40

// GuardSize estimates the search space as branching^depth and returns
// ErrUnavailable when it exceeds the supported cap. Both arguments must be
// positive; a degenerate instance (no branching or no depth) passes.
func GuardSize(branching, depth int) error {
	if branching <= 1 || depth <= 0 {
		return nil
	}
	var space float64 = 1
	for i := 0; i < depth; i++ {
		space *= float64(branching)
		if space > maxSearchNodes {
			return ErrUnavailable
		}
	}

	return nil
}
