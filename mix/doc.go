// Package mix assigns production quantities to (line, product, week)
// triples from a demand forecast, under line eligibility and capacity.
//
// Two interchangeable strategies (selected via Options.Strategy):
//
//   - StrategyHeuristic — even split: each product's first-week demand is
//     distributed evenly across its eligible lines (remainders to the
//     earliest line IDs), capped at each line's weekly capacity. Never
//     fails; capacity shortage degrades to partial fulfillment reported
//     through the fulfillment-rate KPI.
//
//   - StrategyExact — a branch-and-bound search over per-(line, week)
//     product choices that proves optimality or infeasibility:
//
//     Constraints: at most one product per line per week; production only
//     on eligible lines; per-week demand coverage within weekly capacity.
//     Objective: unit production cost + changeover costs charged whenever a
//     line's product differs between consecutive weeks.
//
//     Branching is deterministic (stay on the previous product first, then
//     ascending changeover cost with product-order tiebreak, idle last;
//     slots visited week-major, line IDs ascending), so identical inputs
//     yield identical plans. Quantities are extracted lexicographically by
//     line ID. The search runs under a wall-clock budget and reports
//     Infeasible / Timeout / Unavailable as terminal states — it never
//     crashes across the package boundary.
//
// Complexity:
//   - Heuristic: O(P·L) for P products and L lines.
//   - Exact: worst case O((P+1)^(L·W)) nodes; pruning by per-week coverage
//     and the changeover lower bound keeps practical instances fast.
package mix
