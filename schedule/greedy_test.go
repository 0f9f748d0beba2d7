// Package schedule_test validates the seniority-greedy scheduler.
// Focus:
//  1. Strict data-shape sentinels surfacing as DATA_SHAPE diagnostics.
//  2. Staffing-floor derivation (⌈units/100⌉ per line, day and night alike).
//  3. Seniority-first seat filling with a persistent round-robin cursor.
//  4. One entry per worker per date, even when the roster runs out.
//  5. KPI derivation: wage cost, overtime, night bias, fulfillment.
package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/schedule"
)

// planStart anchors all synthetic schedules in the tests.
var planStart = time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)

// heuristicOpts returns heuristic Options anchored at planStart.
func heuristicOpts() schedule.Options {
	o := schedule.DefaultOptions()
	o.Start = planStart

	return o
}

// mkWorker builds a roster member with sensible defaults.
func mkWorker(id string, seniority int, wage float64) plan.Worker {
	return plan.Worker{
		WorkerID:        id,
		Name:            "Worker " + id,
		SeniorityYears:  seniority,
		WagePerHour:     wage,
		MaxHoursPerWeek: 40,
	}
}

// mkPlanEntry builds a one-week mix-plan entry for a line.
func mkPlanEntry(lineID string, units int) plan.MixPlanEntry {
	return plan.MixPlanEntry{Period: 1, LineID: lineID, Product: "WidgetA", PlannedUnits: units, Utilization: 0.5}
}

// assertOneEntryPerWorkerDate verifies the roster invariant on any schedule.
func assertOneEntryPerWorkerDate(t *testing.T, entries []plan.ScheduleEntry) {
	t.Helper()
	type key struct {
		worker string
		date   time.Time
	}
	seen := make(map[key]bool)
	for _, e := range entries {
		k := key{e.WorkerID, e.Date}
		assert.False(t, seen[k], "worker %s placed twice on %s", e.WorkerID, e.Date.Format("2006-01-02"))
		seen[k] = true
	}
}

// TestBuild_DataShape verifies every malformed-input path surfaces as a
// DATA_SHAPE failure.
func TestBuild_DataShape(t *testing.T) {
	goodPlan := []plan.MixPlanEntry{mkPlanEntry("L1", 100)}
	goodRoster := []plan.Worker{mkWorker("w1", 5, 20)}

	cases := []struct {
		name string
		run  func() schedule.Result
	}{
		{"empty plan", func() schedule.Result {
			return schedule.Build(nil, goodRoster, heuristicOpts())
		}},
		{"bad plan entry", func() schedule.Result {
			bad := []plan.MixPlanEntry{{Period: 0, LineID: "L1", PlannedUnits: 100}}
			return schedule.Build(bad, goodRoster, heuristicOpts())
		}},
		{"empty roster", func() schedule.Result {
			return schedule.Build(goodPlan, nil, heuristicOpts())
		}},
		{"bad worker", func() schedule.Result {
			bad := []plan.Worker{{WorkerID: "w1", WagePerHour: 0, MaxHoursPerWeek: 40}}
			return schedule.Build(goodPlan, bad, heuristicOpts())
		}},
		{"negative time limit", func() schedule.Result {
			o := heuristicOpts()
			o.TimeLimit = -time.Second
			return schedule.Build(goodPlan, goodRoster, o)
		}},
		{"unknown strategy", func() schedule.Result {
			o := heuristicOpts()
			o.Strategy = schedule.Strategy(42)
			return schedule.Build(goodPlan, goodRoster, o)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.run()
			assert.Equal(t, plan.OutcomeError, res.Outcome)
			require.NotNil(t, res.Diagnostic)
			assert.Equal(t, plan.CodeDataShape, res.Diagnostic.Code)
			assert.Empty(t, res.Entries)
		})
	}
}

// TestBuild_Greedy_SeniorityFirst verifies the canonical scenario: two lines
// at 350 planned units need ⌈350/100⌉ = 4 workers per shift, and the first
// slot receives the four most senior of a five-person roster.
func TestBuild_Greedy_SeniorityFirst(t *testing.T) {
	mixPlan := []plan.MixPlanEntry{mkPlanEntry("L1", 350), mkPlanEntry("L2", 350)}
	roster := []plan.Worker{
		mkWorker("w1", 10, 30),
		mkWorker("w2", 8, 26),
		mkWorker("w3", 5, 22),
		mkWorker("w4", 3, 20),
		mkWorker("w5", 1, 18),
	}

	res := schedule.Build(mixPlan, roster, heuristicOpts())
	require.Equal(t, plan.OutcomeSuccess, res.Outcome)
	require.NotEmpty(t, res.Entries)

	// First slot of day one: L1's day shift, most senior first.
	first := res.Entries[:4]
	for i, want := range []string{"w1", "w2", "w3", "w4"} {
		assert.Equal(t, want, first[i].WorkerID)
		assert.Equal(t, "L1", first[i].LineID)
		assert.Equal(t, plan.ShiftDay, first[i].Shift)
		assert.Equal(t, planStart, first[i].Date)
	}

	assertOneEntryPerWorkerDate(t, res.Entries)

	// Five workers cover five of the sixteen daily seats; the rest stay
	// unfilled and surface through the fulfillment rate (35 of 112 ≈ 31.3%).
	assert.Len(t, res.Entries, 35)
	assert.InDelta(t, 31.3, res.KPI.FulfillmentRate, 1e-9)
}

// TestBuild_Greedy_CursorSpreadsWork verifies the round-robin cursor: with a
// roster larger than the daily demand, later days start from later workers
// instead of re-picking the same top seniors.
func TestBuild_Greedy_CursorSpreadsWork(t *testing.T) {
	mixPlan := []plan.MixPlanEntry{mkPlanEntry("L1", 100)} // 1 seat per shift
	roster := []plan.Worker{
		mkWorker("w1", 9, 30),
		mkWorker("w2", 7, 26),
		mkWorker("w3", 5, 22),
		mkWorker("w4", 3, 20),
	}

	res := schedule.Build(mixPlan, roster, heuristicOpts())
	require.Equal(t, plan.OutcomeSuccess, res.Outcome)
	require.Len(t, res.Entries, 14) // 2 seats × 7 days, all filled

	assertOneEntryPerWorkerDate(t, res.Entries)

	// Day 1 takes w1+w2, day 2 continues with w3+w4, then wraps.
	assert.Equal(t, "w1", res.Entries[0].WorkerID)
	assert.Equal(t, "w2", res.Entries[1].WorkerID)
	assert.Equal(t, "w3", res.Entries[2].WorkerID)
	assert.Equal(t, "w4", res.Entries[3].WorkerID)
	assert.Equal(t, "w1", res.Entries[4].WorkerID)

	assert.Equal(t, 100.0, res.KPI.FulfillmentRate)
	assert.Equal(t, 0.5, res.KPI.NightBiasIndex) // half the seats are nights
}

// TestBuild_Greedy_KPIs verifies wage cost and the overtime measure against
// a hand-computed single-worker week.
func TestBuild_Greedy_KPIs(t *testing.T) {
	mixPlan := []plan.MixPlanEntry{mkPlanEntry("L1", 50)} // 1 seat per shift
	w := mkWorker("w1", 5, 10)
	w.MaxHoursPerWeek = 80 // roomy cap, the week stays within it

	res := schedule.Build(mixPlan, []plan.Worker{w}, heuristicOpts())
	require.Equal(t, plan.OutcomeSuccess, res.Outcome)

	// One worker, fourteen seats, one entry per date: 7 day shifts filled,
	// every night seat finds the worker already placed.
	require.Len(t, res.Entries, 7)
	for _, e := range res.Entries {
		assert.Equal(t, plan.ShiftDay, e.Shift)
	}

	// 7 shifts × 8h × 10/h wage; 56h in one week is 16h over the soft 40.
	assert.Equal(t, 560.0, res.KPI.TotalCost)
	assert.Equal(t, 16, res.KPI.TotalOvertimeHours)
	assert.Equal(t, 0.0, res.KPI.NightBiasIndex)
	assert.Equal(t, 50.0, res.KPI.FulfillmentRate)
}

// TestBuild_Greedy_MultiWeek verifies that plan periods extend the horizon:
// a two-week plan yields fourteen scheduled days.
func TestBuild_Greedy_MultiWeek(t *testing.T) {
	mixPlan := []plan.MixPlanEntry{
		mkPlanEntry("L1", 100),
		{Period: 2, LineID: "L1", Product: "WidgetA", PlannedUnits: 100},
	}
	roster := []plan.Worker{mkWorker("w1", 5, 20), mkWorker("w2", 3, 18)}

	res := schedule.Build(mixPlan, roster, heuristicOpts())
	require.Equal(t, plan.OutcomeSuccess, res.Outcome)
	require.Len(t, res.Entries, 28) // 2 seats × 14 days

	last := res.Entries[len(res.Entries)-1]
	assert.Equal(t, planStart.AddDate(0, 0, 13), last.Date)
}
