// Package solver carries the machinery shared by the exact planning
// engines (mix branch-and-bound and schedule constraint search):
//
//   - State — the solve state machine
//     Built → Solving → {Optimal, Feasible, Infeasible, Unbounded, Timeout,
//     Unavailable}; only Optimal/Feasible admit plan extraction, every other
//     terminal state maps to a stable diagnostic code.
//   - Budget — a wall-clock deadline with sparse checks, cheap enough for
//     hot search loops (tested every 4096 node events).
//   - Model-size guard — the embedded engines refuse instances whose search
//     space exceeds a hard cap and report Unavailable, so callers can fall
//     back to a heuristic strategy instead of waiting on a hopeless search.
//
// Design principles:
//   - Deterministic, side-effect free helpers; no logging, no panics on
//     user input — only sentinel errors.
//   - Each invocation constructs fresh solver state; nothing here is shared
//     between concurrent calls.
package solver
