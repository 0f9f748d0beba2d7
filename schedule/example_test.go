package schedule_test

import (
	"fmt"
	"time"

	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/schedule"
)

// ExampleBuild demonstrates seniority-greedy staffing: a 100-unit week on
// one line floors one worker per shift, and the senior worker leads.
func ExampleBuild() {
	mixPlan := []plan.MixPlanEntry{
		{Period: 1, LineID: "L1", Product: "WidgetA", PlannedUnits: 100, Utilization: 0.1},
	}
	roster := []plan.Worker{
		{WorkerID: "w1", Name: "Alice", SeniorityYears: 10, WagePerHour: 30, MaxHoursPerWeek: 40},
		{WorkerID: "w2", Name: "Bilal", SeniorityYears: 4, WagePerHour: 24, MaxHoursPerWeek: 40},
	}

	opts := schedule.DefaultOptions()
	opts.Start = time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)

	res := schedule.Build(mixPlan, roster, opts)
	for _, e := range res.Entries[:4] {
		fmt.Printf("%s %s %s: %s\n", e.Date.Format("2006-01-02"), e.LineID, e.Shift, e.WorkerID)
	}
	fmt.Printf("fulfillment: %.1f%%\n", res.KPI.FulfillmentRate)

	// Output:
	// 2025-05-05 L1 Day: w1
	// 2025-05-05 L1 Night: w2
	// 2025-05-06 L1 Day: w1
	// 2025-05-06 L1 Night: w2
	// fulfillment: 100.0%
}
