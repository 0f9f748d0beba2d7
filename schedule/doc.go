// Package schedule assigns workers to day/night shifts from a production
// mix plan and a worker roster.
//
// The staffing floor is derived from the plan: each (line, day, shift)
// needs ⌈planned units / 100⌉ workers (one worker covers 100 units per
// shift), the same for the day and the night shift.
//
// Two interchangeable strategies (selected via Options.Strategy):
//
//   - StrategyHeuristic — greedy by seniority: workers sorted by seniority
//     (descending, worker ID ascending on ties) fill slots in chronological
//     order through a round-robin cursor that skips workers already placed
//     on that date. When a date's roster is exhausted the remaining seats
//     stay unfilled — the strategy never fails; under-staffing surfaces as
//     a fulfillment rate below 100.
//
//   - StrategyExact — a seat-by-seat constraint search that proves
//     optimality or infeasibility:
//
//     Constraints: at most one shift per worker per day; weekly hours
//     (entries × 8) within each worker's cap; at most 3 night shifts in any
//     4 consecutive days; no day shift immediately after a night shift
//     (≥12h rest); every seat of the staffing floor filled.
//     Objective: Σ wage×8, plus a penalty for placing night-averse workers
//     on nights and a penalty per hour above the soft overtime threshold.
//
//     Candidates are tried in ascending wage order (worker ID tiebreak)
//     with within-slot symmetry breaking, so identical inputs yield
//     identical schedules. The search runs under a wall-clock budget and
//     reports Infeasible / Timeout / Unavailable as terminal states.
//
// Complexity:
//   - Heuristic: O(S·W) for S seats and W workers.
//   - Exact: worst case O(W^S) nodes; pruning by the cheapest-completion
//     lower bound and per-day quick infeasibility checks keeps practical
//     rosters fast.
package schedule
