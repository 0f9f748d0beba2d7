// Package planner is a production-planning core: demand forecasting,
// production-mix assignment and workforce shift scheduling as three
// independently invocable, purely computational stages.
//
// 🏭 What is planner?
//
//	A library that turns validated factory data (production history, line
//	capabilities, worker rosters, changeover costs) into operational plans:
//		• Forecasting: trailing moving average + confidence bands
//		• Mix optimization: assign products to lines per week, heuristic or exact
//		• Workforce scheduling: assign workers to day/night shifts, heuristic or exact
//		• KPIs: fulfillment rate, utilization, cost, overtime, night-shift bias
//
// ✨ Design guarantees
//
//   - Pure computation boundary — inputs in, a structured result (plan or
//     diagnosed failure) out; no persistence, no network surface
//   - Every failure path converts to a diagnosed result; no panics on user input
//   - Per-call model construction — safe for unlimited concurrent invocations
//   - Exact strategies run under an explicit wall-clock time budget and report
//     Infeasible / Timeout / Unavailable as stable diagnostic codes
//
// Packages:
//
//	plan/     — shared immutable domain entities and the error-code taxonomy
//	solver/   — exact-solver state machine, time budgets, model-size guard
//	forecast/ — moving-average demand forecaster
//	mix/      — production-mix optimizer (even-split heuristic, exact branch-and-bound)
//	schedule/ — workforce scheduler (seniority-greedy, exact constraint search)
//	pipeline/ — façade returning uniform success/failure envelopes, with
//	            structured logging, input validation and per-stage strategy toggles
//
// Control flow: history → forecast → demand series → mix → mix plan →
// schedule → shift roster. Each stage also accepts its input from an
// external caller, so the scheduler can consume a mix plan produced elsewhere.
//
//	go get github.com/linemind/planner
package planner
