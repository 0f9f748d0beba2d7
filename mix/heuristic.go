package mix

import (
	"math"

	"github.com/linemind/planner/plan"
)

// simpleAssignment distributes each product's first-week demand evenly
// across its eligible lines.
//
// Rules:
//   - Remainder units go to the earliest line IDs (stable order).
//   - Each line's allocation is capped at its weekly capacity, so the plan
//     never promises more than the floor can produce; shortage surfaces as
//     a fulfillment rate below 100.
//   - Products with no eligible line receive no entries (their demand still
//     counts toward the fulfillment denominator).
//
// Never fails: the result outcome is always success.
//
// Complexity: O(P·L).
func simpleAssignment(m *model) Result {
	var (
		entries      []plan.MixPlanEntry
		totalPlanned int
	)

	for pi, product := range m.products {
		weekDemand := m.demand[pi][0]

		// Eligible lines in stable (ascending LineID) order.
		var capable []int
		for li := range m.lines {
			if m.eligible[li][pi] {
				capable = append(capable, li)
			}
		}
		if len(capable) == 0 || weekDemand == 0 {
			continue
		}

		share := weekDemand / len(capable)
		remainder := weekDemand % len(capable)
		for i, li := range capable {
			planned := share
			if i < remainder {
				planned++
			}
			if planned > m.weeklyCap[li] {
				planned = m.weeklyCap[li]
			}
			if planned == 0 {
				continue
			}
			util := float64(planned) / float64(m.weeklyCap[li])
			if util > 1 {
				util = 1
			}
			entries = append(entries, plan.MixPlanEntry{
				Period:       1,
				LineID:       m.lines[li].LineID,
				Product:      product,
				PlannedUnits: planned,
				Utilization:  round2(util),
			})
			totalPlanned += planned
		}
	}

	totalDemand := 0
	for pi := range m.products {
		totalDemand += m.demand[pi][0]
	}

	return Result{
		Outcome: plan.OutcomeSuccess,
		Entries: entries,
		KPI: KPI{
			TotalDemand:     totalDemand,
			TotalPlanned:    totalPlanned,
			FulfillmentRate: fulfillment(totalPlanned, totalDemand),
			Changeovers:     0,
			EstimatedCost:   float64(totalPlanned) * m.unitCost,
		},
	}
}

// fulfillment computes planned/demand as a percentage rounded to 0.1;
// zero demand counts as fully fulfilled.
func fulfillment(planned, demand int) float64 {
	if demand <= 0 {
		return 100
	}

	return math.Round(float64(planned)/float64(demand)*1000) / 10
}

// round2 rounds to two decimals (utilization reporting).
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
