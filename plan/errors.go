package plan

import (
	"encoding/json"
	"fmt"
)

// ErrorCode classifies every failure a planning stage can surface.
// Values are stable for wire compatibility; add sparingly.
type ErrorCode uint8

const (
	// CodeUnknown is for unclassified failures.
	CodeUnknown ErrorCode = iota

	// CodeDataShape marks malformed or incomplete caller-supplied data,
	// detected before any model construction.
	CodeDataShape

	// CodeInfeasibleModel marks an exact-solver proof that no assignment
	// satisfies all constraints.
	CodeInfeasibleModel

	// CodeSolverTimeout marks an exact solver that exceeded its wall-clock
	// budget without concluding.
	CodeSolverTimeout

	// CodeSolverUnavailable marks an exact-solving backend that could not be
	// initialized for the given instance; callers may fall back to the
	// heuristic strategy.
	CodeSolverUnavailable
)

// errorCodeNames are the stable wire names, indexed by ErrorCode.
var errorCodeNames = [...]string{
	"UNKNOWN",
	"DATA_SHAPE",
	"INFEASIBLE_MODEL",
	"SOLVER_TIMEOUT",
	"SOLVER_UNAVAILABLE",
}

// String returns the stable wire name of the code.
func (c ErrorCode) String() string {
	if int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}

	return fmt.Sprintf("ErrorCode(%d)", uint8(c))
}

// MarshalJSON encodes the code as its stable wire name.
func (c ErrorCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Diagnostic describes a failure in caller-actionable terms: a stable code,
// a human-readable message, and (when one exists) a concrete suggestion for
// how to relax the inputs or configuration.
type Diagnostic struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Outcome is the top-level disposition of a stage result.
type Outcome string

const (
	// OutcomeSuccess marks a result carrying a payload and KPIs.
	OutcomeSuccess Outcome = "success"
	// OutcomeError marks a result carrying a Diagnostic.
	OutcomeError Outcome = "error"
)
