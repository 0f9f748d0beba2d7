// Package schedule - input validation and model normalization.
//
// validateAll turns the caller-facing inputs (mix plan, roster) into the
// dense model both strategies consume: a chronologically ordered slot list
// with per-slot headcount requirements, and the roster in stable order.
package schedule

import (
	"sort"
	"time"

	"github.com/linemind/planner/plan"
)

// slot is one (day, line, shift) staffing requirement.
type slot struct {
	day      int // 0-based day index across the whole horizon
	lineID   string
	shift    plan.Shift
	required int
}

// model is the normalized scheduling instance.
type model struct {
	workers []plan.Worker // ascending by WorkerID
	slots   []slot        // day asc, line asc, Day before Night
	days    int           // horizon in days (weeks × 7)
	seats   int           // Σ slot.required
	start   time.Time     // calendar anchor of day 0
}

// date maps a day index onto the calendar.
func (m *model) date(day int) time.Time {
	return m.start.AddDate(0, 0, day)
}

// validateAll checks shapes and builds the normalized model.
//
// Contract:
//   - mixPlan must be non-empty; entries need a line ID, a period ≥ 1 and
//     non-negative planned units. Entries of the same (line, period)
//     aggregate before the headcount is derived.
//   - workers must be non-empty with positive wages and hour caps.
//
// Complexity: O(E + L·D + W log W) for E plan entries, L lines, D days.
func validateAll(mixPlan []plan.MixPlanEntry, workers []plan.Worker, opts Options) (*model, error) {
	if len(mixPlan) == 0 {
		return nil, ErrNoPlan
	}
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}

	// Aggregate planned units per (line, period).
	type lineWeek struct {
		lineID string
		week   int // 0-based
	}
	var (
		units = make(map[lineWeek]int)
		weeks int
	)
	for _, e := range mixPlan {
		if e.LineID == "" || e.Period < 1 || e.PlannedUnits < 0 {
			return nil, ErrBadPlanEntry
		}
		units[lineWeek{e.LineID, e.Period - 1}] += e.PlannedUnits
		if e.Period > weeks {
			weeks = e.Period
		}
	}

	for _, w := range workers {
		if w.WorkerID == "" || w.WagePerHour <= 0 || w.MaxHoursPerWeek <= 0 {
			return nil, ErrBadWorker
		}
	}

	m := &model{
		workers: make([]plan.Worker, len(workers)),
		days:    weeks * DaysPerWeek,
		start:   opts.Start,
	}
	copy(m.workers, workers)
	sort.Slice(m.workers, func(i, j int) bool { return m.workers[i].WorkerID < m.workers[j].WorkerID })
	if m.start.IsZero() {
		m.start = time.Now().UTC().Truncate(24 * time.Hour)
	}

	// Stable key order; one worker covers 100 units per shift, day and
	// night shifts carry the same requirement.
	keys := make([]lineWeek, 0, len(units))
	for k := range units {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].week != keys[j].week {
			return keys[i].week < keys[j].week
		}

		return keys[i].lineID < keys[j].lineID
	})

	for day := 0; day < m.days; day++ {
		week := day / DaysPerWeek
		for _, k := range keys {
			if k.week != week {
				continue
			}
			req := (units[k] + UnitsPerWorkerShift - 1) / UnitsPerWorkerShift
			if req == 0 {
				continue
			}
			for _, sh := range [...]plan.Shift{plan.ShiftDay, plan.ShiftNight} {
				m.slots = append(m.slots, slot{day: day, lineID: k.lineID, shift: sh, required: req})
				m.seats += req
			}
		}
	}

	return m, nil
}
