// Package mix_test — benchmarks for the mix strategies.
// Policy:
//   - Deterministic synthetic demand, fixed shapes; inputs built outside
//     the timer so only the optimization core is measured.
//   - Instances sized to finish comfortably on CI.
package mix_test

import (
	"fmt"
	"testing"

	"github.com/linemind/planner/mix"
	"github.com/linemind/planner/plan"
)

// benchInstance builds p products over l lines with a complete changeover
// table, demandPerDay units each, weeks×7 days long.
func benchInstance(p, l, weeks, demandPerDay int) (map[string][]plan.DemandPoint, []plan.Line, mix.CostParams) {
	products := make([]string, p)
	demand := make(map[string][]plan.DemandPoint, p)
	for i := range products {
		products[i] = fmt.Sprintf("Widget%02d", i)
		demand[products[i]] = mkDemand(products[i], weeks*7, float64(demandPerDay))
	}

	lines := make([]plan.Line, l)
	for i := range lines {
		lines[i] = mkLine(fmt.Sprintf("L%d", i+1), p*demandPerDay, products...)
	}

	var pairs []plan.ChangeoverCost
	for _, from := range products {
		for _, to := range products {
			if from != to {
				pairs = append(pairs, plan.ChangeoverCost{From: from, To: to, Hours: 2, Cost: 300})
			}
		}
	}

	return demand, lines, mix.CostParams{Changeovers: plan.NewChangeoverTable(pairs)}
}

// BenchmarkOptimize_Heuristic measures the even split on 8 products × 6 lines.
func BenchmarkOptimize_Heuristic(b *testing.B) {
	demand, lines, costs := benchInstance(8, 6, 1, 40)
	opts := mix.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := mix.Optimize(demand, lines, costs, opts)
		if res.Outcome != plan.OutcomeSuccess {
			b.Fatalf("unexpected outcome: %v", res.Outcome)
		}
	}
}

// BenchmarkOptimize_Exact measures the branch-and-bound on 2 products ×
// 2 lines × 3 weeks (6 slots, 3-way branching).
func BenchmarkOptimize_Exact(b *testing.B) {
	demand, lines, costs := benchInstance(2, 2, 3, 20)
	opts := mix.DefaultOptions()
	opts.Strategy = mix.StrategyExact

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := mix.Optimize(demand, lines, costs, opts)
		if res.Outcome != plan.OutcomeSuccess {
			b.Fatalf("unexpected outcome: %v", res.Outcome)
		}
	}
}
