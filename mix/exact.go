// Package mix — exact assignment via depth-first branch-and-bound.
//
// The exact strategy decides, for every (line, week) slot, which single
// product the line runs that week (or idle), then extracts quantities.
//
// Rationale (succinct):
//  1. With a uniform unit cost, any feasible assignment produces exactly
//     the demanded quantity, so the quantity term of the objective is a
//     constant (unitCost × total demand). Optimality therefore hinges on
//     the changeover term, which the search minimizes directly.
//  2. Search: DFS over slots in week-major order (line IDs ascending within
//     a week). A week is checked for demand coverage as soon as its last
//     slot is decided; uncovered demand prunes the subtree.
//  3. Lower bound: changeover cost accrued so far (admissible — remaining
//     transitions can only add non-negative cost). Prune when LB ≥ UB.
//  4. Branching order: previous week's product first (zero changeover),
//     then eligible products by ascending changeover cost (product-order
//     tiebreak), idle last. Fully deterministic, so ties between optimal
//     assignments resolve reproducibly in favor of the first found.
//  5. Soft time limit: sparse deadline checks via solver.Budget.
//
// Memory: O(L·W) search state + O(L·P) precomputed branch orders.
package mix

import (
	"sort"

	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/solver"
)

// idle marks a (line, week) slot with no assigned product.
const idle = -1

// exactEngine holds all search data for one invocation. A fresh engine is
// built per call; nothing is shared between concurrent optimizations.
type exactEngine struct {
	m      *model
	budget solver.Budget

	nLines int
	nProds int
	slots  int // nLines × weeks

	// order[l][prev+1] lists candidate products for line l given the
	// previous week's product (idle==-1 shifts indexes by one): previous
	// product first, then ascending changeover cost, idle appended last.
	order [][][]int

	// Current search state: assign[slot] = product index or idle.
	assign []int

	// Incumbent.
	bestAssign []int
	bestCost   float64 // changeover cost only (quantity cost is constant)
	found      bool
}

// changeCost returns the changeover cost charged when a line switches from
// product prev to product next between consecutive weeks. Idle transitions
// and staying on the same product are free. Pair completeness is validated
// before the search, so the lookup cannot miss.
func (e *exactEngine) changeCost(prev, next int) float64 {
	if prev == idle || next == idle || prev == next {
		return 0
	}
	c, _ := e.m.table.Lookup(e.m.products[prev], e.m.products[next])

	return c.Cost
}

// buildOrder precomputes deterministic branching orders per (line, prev).
func (e *exactEngine) buildOrder() {
	e.order = make([][][]int, e.nLines)
	for l := 0; l < e.nLines; l++ {
		e.order[l] = make([][]int, e.nProds+1)
		for prev := idle; prev < e.nProds; prev++ {
			var cands []int
			for p := 0; p < e.nProds; p++ {
				if e.m.eligible[l][p] {
					cands = append(cands, p)
				}
			}
			sort.SliceStable(cands, func(i, j int) bool {
				ci, cj := e.changeCost(prev, cands[i]), e.changeCost(prev, cands[j])
				if ci != cj {
					return ci < cj
				}

				return cands[i] < cands[j]
			})
			e.order[l][prev+1] = append(cands, idle)
		}
	}
}

// coverageOK verifies that week w's assignment covers every product's
// demand within the assigned lines' weekly capacity.
func (e *exactEngine) coverageOK(w int) bool {
	for p := 0; p < e.nProds; p++ {
		need := e.m.demand[p][w]
		if need == 0 {
			continue
		}
		for l := 0; l < e.nLines && need > 0; l++ {
			if e.assign[w*e.nLines+l] == p {
				need -= e.m.weeklyCap[l]
			}
		}
		if need > 0 {
			return false
		}
	}

	return true
}

// dfs explores slot s with the accumulated changeover cost.
func (e *exactEngine) dfs(s int, costSoFar float64) {
	if e.budget.Tick() {
		return
	}
	// Prune by lower bound (changeovers already paid).
	if e.found && costSoFar >= e.bestCost {
		return
	}
	if s == e.slots {
		// All slots decided and every week passed its coverage check.
		copy(e.bestAssign, e.assign)
		e.bestCost = costSoFar
		e.found = true

		return
	}

	var (
		w    = s / e.nLines
		l    = s % e.nLines
		prev = idle
	)
	if w > 0 {
		prev = e.assign[s-e.nLines]
	}

	for _, p := range e.order[l][prev+1] {
		e.assign[s] = p
		step := costSoFar + e.changeCost(prev, p)

		// Close of week: reject assignments that leave demand uncovered.
		if l == e.nLines-1 && !e.coverageOK(w) {
			continue
		}
		e.dfs(s+1, step)
	}
	e.assign[s] = idle
}

// quickInfeasible detects instances where even dedicating every eligible
// line to a product cannot cover one week's demand. Necessary (not
// sufficient) feasibility check; the search settles the rest.
func (e *exactEngine) quickInfeasible() bool {
	for p := 0; p < e.nProds; p++ {
		var capSum int
		for l := 0; l < e.nLines; l++ {
			if e.m.eligible[l][p] {
				capSum += e.m.weeklyCap[l]
			}
		}
		for w := 0; w < e.m.weeks; w++ {
			if e.m.demand[p][w] > capSum {
				return true
			}
		}
	}

	return false
}

// solveExact runs the branch-and-bound search and maps its terminal state
// to a solver sentinel.
//
// Errors:
//   - solver.ErrUnavailable when the instance exceeds the supported search
//     space (callers fall back to the heuristic).
//   - solver.ErrInfeasible when no assignment covers demand.
//   - solver.ErrTimeLimit when the budget expires before a conclusion.
func (m *model) solveExact(opts Options) ([]int, float64, error) {
	if err := m.validateChangeovers(); err != nil {
		return nil, 0, err
	}

	e := exactEngine{
		m:      m,
		nLines: len(m.lines),
		nProds: len(m.products),
	}
	e.slots = e.nLines * m.weeks

	// Refuse hopeless instances rather than burning the whole budget.
	if err := solver.GuardSize(e.nProds+1, e.slots); err != nil {
		return nil, 0, err
	}
	if e.quickInfeasible() {
		return nil, 0, solver.ErrInfeasible
	}

	limit := opts.TimeLimit
	if limit == 0 {
		limit = DefaultTimeLimit
	}
	e.budget = solver.NewBudget(limit)

	e.buildOrder()
	e.assign = make([]int, e.slots)
	e.bestAssign = make([]int, e.slots)
	for i := range e.assign {
		e.assign[i] = idle
	}

	e.dfs(0, 0)

	if e.budget.Expired() {
		return nil, 0, solver.ErrTimeLimit
	}
	if !e.found {
		return nil, 0, solver.ErrInfeasible
	}

	return e.bestAssign, e.bestCost, nil
}

// extractPlan converts a slot assignment into plan entries and KPIs.
// Per (product, week), demand is filled across the assigned lines in
// ascending LineID order — the documented deterministic tie-break — taking
// min(remaining, weekly capacity) from each. Lines whose capacity is not
// needed emit no entry.
func (m *model) extractPlan(assign []int, changeCost float64) Result {
	var (
		nLines  = len(m.lines)
		entries []plan.MixPlanEntry
		planned int
	)

	for w := 0; w < m.weeks; w++ {
		for p := range m.products {
			remaining := m.demand[p][w]
			for l := 0; l < nLines && remaining > 0; l++ {
				if assign[w*nLines+l] != p {
					continue
				}
				take := remaining
				if take > m.weeklyCap[l] {
					take = m.weeklyCap[l]
				}
				entries = append(entries, plan.MixPlanEntry{
					Period:       w + 1,
					LineID:       m.lines[l].LineID,
					Product:      m.products[p],
					PlannedUnits: take,
					Utilization:  round2(float64(take) / float64(m.weeklyCap[l])),
				})
				planned += take
				remaining -= take
			}
		}
	}

	// Changeover counts/hours from week-to-week transitions.
	var (
		changeovers int
		hours       float64
	)
	for l := 0; l < nLines; l++ {
		for w := 1; w < m.weeks; w++ {
			prev, next := assign[(w-1)*nLines+l], assign[w*nLines+l]
			if prev == idle || next == idle || prev == next {
				continue
			}
			changeovers++
			if c, ok := m.table.Lookup(m.products[prev], m.products[next]); ok {
				hours += c.Hours
			}
		}
	}

	total := m.totalDemand()

	return Result{
		Outcome: plan.OutcomeSuccess,
		State:   solver.Optimal,
		Entries: entries,
		KPI: KPI{
			TotalDemand:     total,
			TotalPlanned:    planned,
			FulfillmentRate: fulfillment(planned, total),
			Changeovers:     changeovers,
			ChangeoverHours: hours,
			EstimatedCost:   float64(planned)*m.unitCost + changeCost,
		},
	}
}
