// Package mix - input validation and model normalization.
//
// validateAll turns the caller-facing inputs (demand map, line list, cost
// parameters) into the dense model both strategies consume: products and
// lines in stable order, weekly demand per (product, week), weekly capacity
// and eligibility per line. All checks are side-effect free and return only
// sentinel errors from types.go.
package mix

import (
	"math"
	"sort"

	"github.com/linemind/planner/plan"
)

// model is the normalized optimization instance.
type model struct {
	products []string    // ascending
	lines    []plan.Line // ascending by LineID
	weeks    int         // number of whole planning weeks

	demand    [][]int  // demand[p][w] = units of products[p] in week w
	weeklyCap []int    // weeklyCap[l] = lines[l].DailyCapacity × 7
	eligible  [][]bool // eligible[l][p]

	unitCost float64
	table    plan.ChangeoverTable
}

// totalDemand sums demand over all products and weeks.
func (m *model) totalDemand() int {
	var total int
	for _, row := range m.demand {
		for _, d := range row {
			total += d
		}
	}

	return total
}

// validateAll checks shapes and builds the normalized model.
//
// Contract:
//   - demand must contain at least one product with at least one point;
//     units must be non-negative.
//   - lines must be non-empty with positive capacities, non-empty IDs and
//     at least one eligible product each.
//   - weeks is capped by the shortest demand series (at least one week;
//     a series shorter than 7 days still forms one week).
//
// Complexity: O(P log P + L log L + P·(horizon + L)).
func validateAll(demand map[string][]plan.DemandPoint, lines []plan.Line, costs CostParams, weeks int) (*model, error) {
	if len(demand) == 0 {
		return nil, ErrNoDemand
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if costs.UnitCost < 0 {
		return nil, ErrBadUnitCost
	}

	m := &model{
		unitCost: costs.UnitCost,
		table:    costs.Changeovers,
	}
	if m.unitCost == 0 {
		m.unitCost = DefaultUnitCost
	}

	// Stable product order; shapes checked per series.
	for p, series := range demand {
		if p == "" || len(series) == 0 {
			return nil, ErrNoDemand
		}
		for _, dp := range series {
			if dp.ForecastUnits < 0 {
				return nil, ErrBadDemand
			}
		}
		m.products = append(m.products, p)
	}
	sort.Strings(m.products)

	// Stable line order; per-line shape checks.
	m.lines = make([]plan.Line, len(lines))
	copy(m.lines, lines)
	sort.Slice(m.lines, func(i, j int) bool { return m.lines[i].LineID < m.lines[j].LineID })
	for _, l := range m.lines {
		if l.LineID == "" || l.DailyCapacity <= 0 || len(l.EligibleProducts) == 0 {
			return nil, ErrBadLine
		}
	}

	// Cap the horizon at the shortest series; never below one week.
	m.weeks = weeks
	for _, p := range m.products {
		if w := len(demand[p]) / DaysPerWeek; w < m.weeks {
			m.weeks = w
		}
	}
	if m.weeks < 1 {
		m.weeks = 1
	}

	// Dense weekly demand: sum forecast units, rounded to the nearest whole
	// unit, over each 7-day window
	// (a final partial week contributes to week 0 only when the series is
	// shorter than 7 days).
	m.demand = make([][]int, len(m.products))
	for pi, p := range m.products {
		series := demand[p]
		m.demand[pi] = make([]int, m.weeks)
		for w := 0; w < m.weeks; w++ {
			lo := w * DaysPerWeek
			hi := lo + DaysPerWeek
			if hi > len(series) {
				hi = len(series)
			}
			var sum int
			for _, dp := range series[lo:hi] {
				sum += int(math.Round(dp.ForecastUnits))
			}
			m.demand[pi][w] = sum
		}
	}

	// Weekly capacity and eligibility.
	m.weeklyCap = make([]int, len(m.lines))
	m.eligible = make([][]bool, len(m.lines))
	for li, l := range m.lines {
		m.weeklyCap[li] = l.DailyCapacity * DaysPerWeek
		m.eligible[li] = make([]bool, len(m.products))
		for pi, p := range m.products {
			m.eligible[li][pi] = l.Eligible(p)
		}
	}

	return m, nil
}

// validateChangeovers requires a complete ordered-pair lookup over the
// demanded products whenever changeovers can occur (≥2 products, ≥2 weeks).
// Sparse gaps are a data failure upstream, never a silent zero cost.
func (m *model) validateChangeovers() error {
	if m.weeks < 2 || len(m.products) < 2 {
		return nil
	}
	for _, from := range m.products {
		for _, to := range m.products {
			if from == to {
				continue
			}
			if _, ok := m.table.Lookup(from, to); !ok {
				return ErrMissingChangeover
			}
		}
	}

	return nil
}
