// Package pipeline is the outward-facing surface of the planning core.
// It wraps the three stages (forecast → mix → schedule) behind pure
// functions that return a uniform envelope:
//
//	success: { outcome: "success", payload, kpi, run_id }
//	failure: { outcome: "error", diagnostic: {code, message, suggestion}, run_id }
//
// Responsibilities that the inner packages deliberately do not carry:
//
//   - Input validation: every caller-supplied row is checked against its
//     `validate` struct tags before any model construction; violations
//     surface as DATA_SHAPE failures.
//   - Structured logging: one zerolog event per invocation (run id, stage,
//     strategy, duration, outcome, and the headline KPIs of a successful
//     optimization). The default logger is disabled, so embedding the
//     pipeline in a quiet context stays quiet.
//   - Fault containment: a recovered panic becomes an UNKNOWN-code failure
//     envelope — no fault crosses the boundary unwrapped.
//   - Configuration: the per-stage heuristic/exact toggle and the exact
//     time budget, settable in code or from PLANNER_* environment
//     variables. This toggle is the only externally tunable behavior.
//
// Each Run* call is synchronous, self-contained and safe to invoke
// concurrently: stages build per-call state only.
package pipeline
