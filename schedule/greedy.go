package schedule

import (
	"math"
	"sort"

	"github.com/linemind/planner/plan"
)

// greedySeniority fills slots chronologically with the most senior workers
// first.
//
// Rules:
//   - Workers are ordered by seniority descending, worker ID ascending on
//     ties; a round-robin cursor persists across slots so work spreads
//     through the roster.
//   - A worker already placed on a date is skipped for that date's
//     remaining seats (one entry per worker per date, always).
//   - When every worker is already placed on a date, remaining seats stay
//     unfilled; the shortage is reported through the fulfillment rate.
//
// Never fails: the result outcome is always success.
//
// Complexity: O(S·W) for S seats and W workers.
func greedySeniority(m *model) Result {
	ranked := make([]plan.Worker, len(m.workers))
	copy(ranked, m.workers)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SeniorityYears != ranked[j].SeniorityYears {
			return ranked[i].SeniorityYears > ranked[j].SeniorityYears
		}

		return ranked[i].WorkerID < ranked[j].WorkerID
	})

	var (
		entries []plan.ScheduleEntry
		busy    = make([]map[string]bool, m.days) // per day: worker IDs placed
		cursor  int
	)
	for d := range busy {
		busy[d] = make(map[string]bool, len(ranked))
	}

	for _, s := range m.slots {
		for seat := 0; seat < s.required; seat++ {
			picked := -1
			for off := 0; off < len(ranked); off++ {
				idx := (cursor + off) % len(ranked)
				if !busy[s.day][ranked[idx].WorkerID] {
					picked = idx
					break
				}
			}
			if picked == -1 {
				break // roster exhausted for this date
			}
			w := ranked[picked]
			busy[s.day][w.WorkerID] = true
			cursor = (picked + 1) % len(ranked)
			entries = append(entries, plan.ScheduleEntry{
				Date:       m.date(s.day),
				LineID:     s.lineID,
				Shift:      s.shift,
				WorkerID:   w.WorkerID,
				WorkerName: w.Name,
			})
		}
	}

	return Result{
		Outcome: plan.OutcomeSuccess,
		Entries: entries,
		KPI:     m.kpis(entries),
	}
}

// kpis derives the schedule KPIs from produced entries: wage cost, hours
// above the weekly soft-overtime threshold, the night-shift share, and the
// filled share of the staffing floor.
func (m *model) kpis(entries []plan.ScheduleEntry) KPI {
	var (
		cost   float64
		nights int
		wage   = make(map[string]float64, len(m.workers))
		hours  = make(map[string][]int, len(m.workers)) // worker → per-week hours
	)
	for _, w := range m.workers {
		wage[w.WorkerID] = w.WagePerHour
		hours[w.WorkerID] = make([]int, m.days/DaysPerWeek+1)
	}

	for _, e := range entries {
		cost += wage[e.WorkerID] * HoursPerShift
		if e.Shift == plan.ShiftNight {
			nights++
		}
		day := int(e.Date.Sub(m.start).Hours() / 24)
		hours[e.WorkerID][day/DaysPerWeek] += HoursPerShift
	}

	var overtime int
	for _, weeksOf := range hours {
		for _, h := range weeksOf {
			if h > SoftOvertimeHours {
				overtime += h - SoftOvertimeHours
			}
		}
	}

	var bias float64
	if len(entries) > 0 {
		bias = math.Round(float64(nights)/float64(len(entries))*1000) / 1000
	}

	var rate float64 = 100
	if m.seats > 0 {
		rate = math.Round(float64(len(entries))/float64(m.seats)*1000) / 10
	}

	return KPI{
		TotalCost:          cost,
		TotalOvertimeHours: overtime,
		NightBiasIndex:     bias,
		FulfillmentRate:    rate,
	}
}
