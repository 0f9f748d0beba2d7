package mix_test

import (
	"fmt"
	"time"

	"github.com/linemind/planner/mix"
	"github.com/linemind/planner/plan"
)

// ExampleOptimize demonstrates the even-split heuristic: one product at
// 100 units/day over two 150/day lines splits the 700-unit week evenly.
func ExampleOptimize() {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	series := make([]plan.DemandPoint, 7)
	for i := range series {
		series[i] = plan.DemandPoint{
			Date:          start.AddDate(0, 0, i),
			Product:       "WidgetA",
			ForecastUnits: 100,
		}
	}

	demand := map[string][]plan.DemandPoint{"WidgetA": series}
	lines := []plan.Line{
		{LineID: "L1", EligibleProducts: []string{"WidgetA"}, DailyCapacity: 150},
		{LineID: "L2", EligibleProducts: []string{"WidgetA"}, DailyCapacity: 150},
	}

	res := mix.Optimize(demand, lines, mix.CostParams{}, mix.DefaultOptions())
	for _, e := range res.Entries {
		fmt.Printf("%s week%d %s: %d units (util %.2f)\n", e.LineID, e.Period, e.Product, e.PlannedUnits, e.Utilization)
	}
	fmt.Printf("fulfillment: %.1f%%\n", res.KPI.FulfillmentRate)

	// Output:
	// L1 week1 WidgetA: 350 units (util 0.33)
	// L2 week1 WidgetA: 350 units (util 0.33)
	// fulfillment: 100.0%
}

// ExampleOptimize_exact demonstrates the exact strategy proving that two
// dedicated lines beat paying changeovers.
func ExampleOptimize_exact() {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	mk := func(product string) []plan.DemandPoint {
		series := make([]plan.DemandPoint, 14)
		for i := range series {
			series[i] = plan.DemandPoint{Date: start.AddDate(0, 0, i), Product: product, ForecastUnits: 100}
		}
		return series
	}

	demand := map[string][]plan.DemandPoint{"WidgetA": mk("WidgetA"), "WidgetB": mk("WidgetB")}
	lines := []plan.Line{
		{LineID: "L1", EligibleProducts: []string{"WidgetA", "WidgetB"}, DailyCapacity: 100},
		{LineID: "L2", EligibleProducts: []string{"WidgetA", "WidgetB"}, DailyCapacity: 100},
	}
	costs := mix.CostParams{Changeovers: plan.NewChangeoverTable([]plan.ChangeoverCost{
		{From: "WidgetA", To: "WidgetB", Hours: 4, Cost: 500},
		{From: "WidgetB", To: "WidgetA", Hours: 4, Cost: 500},
	})}

	opts := mix.DefaultOptions()
	opts.Strategy = mix.StrategyExact

	res := mix.Optimize(demand, lines, costs, opts)
	fmt.Printf("state: %s, changeovers: %d, planned: %d\n", res.State, res.KPI.Changeovers, res.KPI.TotalPlanned)

	// Output:
	// state: Optimal, changeovers: 0, planned: 2800
}
