// Package schedule — exact roster search via depth-first branch-and-bound.
//
// The exact strategy fills the staffing floor seat by seat, in chronological
// slot order, choosing one worker per seat.
//
// Rationale (succinct):
//  1. Constraints are enforced incrementally at assignment time: one shift
//     per day, weekly hour caps, the 4-day night window, and the
//     night-then-day rest rule. Because seats are visited chronologically,
//     each check only needs already-decided days.
//  2. Lower bound: accrued objective + remaining seats × the cheapest
//     shift cost in the roster (admissible — penalties are non-negative).
//     Prune when LB ≥ UB.
//  3. Branching order: workers by ascending wage (worker ID tiebreak).
//     Seats of the same slot are interchangeable, so each seat only
//     considers workers ranked after its predecessor's pick — the classic
//     symmetry break that turns W! seat permutations into one.
//  4. Soft time limit: sparse deadline checks via solver.Budget.
//
// Memory: O(W·D) incremental state + O(S) seat bookkeeping.
package schedule

import (
	"sort"

	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/solver"
)

// exactEngine holds all search data for one invocation. A fresh engine is
// built per call; nothing is shared between concurrent schedules.
type exactEngine struct {
	m      *model
	budget solver.Budget

	workOrder []int // worker indexes by ascending wage, ID tiebreak
	seatSlot  []int // seat index → slot index
	weeks     int

	minShiftCost float64 // cheapest wage × hours, for the lower bound

	// Incremental per-worker state.
	busy      [][]bool // [day][worker]
	weekHours [][]int  // [worker][week]
	nights    [][]bool // [worker][day]

	// Current choice per seat (position in workOrder) and incumbent.
	choice     []int
	bestChoice []int
	bestCost   float64
	found      bool
}

// canTake reports whether worker w may staff (day, shift) given the
// already-decided assignments.
func (e *exactEngine) canTake(w, day int, shift plan.Shift) bool {
	if e.busy[day][w] {
		return false
	}
	if e.weekHours[w][day/DaysPerWeek]+HoursPerShift > e.m.workers[w].MaxHoursPerWeek {
		return false
	}
	if shift == plan.ShiftNight {
		// Night cap: the window [day-3, day] may hold at most 3 nights.
		count := 1
		for d := day - (NightWindowDays - 1); d < day; d++ {
			if d >= 0 && e.nights[w][d] {
				count++
			}
		}
		if count > MaxNightsPerWindow {
			return false
		}
	} else if day > 0 && e.nights[w][day-1] {
		// Rest rule: a night shift forbids the next day's day shift.
		return false
	}

	return true
}

// marginalCost prices assigning worker w to (day, shift): the wage for one
// shift, the night-aversion penalty when applicable, and the overtime
// penalty for hours pushed above the weekly soft threshold.
func (e *exactEngine) marginalCost(w, day int, shift plan.Shift) float64 {
	worker := e.m.workers[w]
	cost := worker.WagePerHour * HoursPerShift
	if shift == plan.ShiftNight && !worker.PrefersNight {
		cost += NightAversePenalty
	}
	before := e.weekHours[w][day/DaysPerWeek]
	after := before + HoursPerShift
	if after > SoftOvertimeHours {
		over := after - SoftOvertimeHours
		if before > SoftOvertimeHours {
			over = HoursPerShift
		}
		cost += float64(over) * OvertimePenaltyPerHour
	}

	return cost
}

// dfs fills seats from seat onward. fromPos implements the within-slot
// symmetry break: the first seat of a slot starts at position 0, each
// following seat starts after its predecessor's pick.
func (e *exactEngine) dfs(seat, fromPos int, costSoFar float64) {
	if e.budget.Tick() {
		return
	}
	remaining := float64(len(e.seatSlot) - seat)
	if e.found && costSoFar+remaining*e.minShiftCost >= e.bestCost {
		return
	}
	if seat == len(e.seatSlot) {
		copy(e.bestChoice, e.choice)
		e.bestCost = costSoFar
		e.found = true

		return
	}

	s := e.m.slots[e.seatSlot[seat]]
	for pos := fromPos; pos < len(e.workOrder); pos++ {
		w := e.workOrder[pos]
		if !e.canTake(w, s.day, s.shift) {
			continue
		}
		step := e.marginalCost(w, s.day, s.shift)

		// Apply.
		e.busy[s.day][w] = true
		e.weekHours[w][s.day/DaysPerWeek] += HoursPerShift
		if s.shift == plan.ShiftNight {
			e.nights[w][s.day] = true
		}
		e.choice[seat] = pos

		next := 0
		if seat+1 < len(e.seatSlot) && e.seatSlot[seat+1] == e.seatSlot[seat] {
			next = pos + 1
		}
		e.dfs(seat+1, next, costSoFar+step)

		// Undo.
		e.busy[s.day][w] = false
		e.weekHours[w][s.day/DaysPerWeek] -= HoursPerShift
		if s.shift == plan.ShiftNight {
			e.nights[w][s.day] = false
		}
	}
}

// quickInfeasible detects rosters that cannot meet the floor regardless of
// arrangement: more seats on one day than workers, or a week whose seat
// hours exceed the roster's combined hour caps. Necessary, not sufficient;
// the search settles the rest.
func (e *exactEngine) quickInfeasible() bool {
	var (
		perDay  = make([]int, e.m.days)
		perWeek = make([]int, e.weeks)
	)
	for _, s := range e.m.slots {
		perDay[s.day] += s.required
		perWeek[s.day/DaysPerWeek] += s.required * HoursPerShift
	}
	for _, seats := range perDay {
		if seats > len(e.m.workers) {
			return true
		}
	}
	var capSum int
	for _, w := range e.m.workers {
		capSum += w.MaxHoursPerWeek
	}
	for _, hours := range perWeek {
		if hours > capSum {
			return true
		}
	}

	return false
}

// solveExact runs the constraint search and maps its terminal state to a
// solver sentinel.
//
// Errors:
//   - solver.ErrUnavailable when the instance exceeds the supported search
//     space (callers fall back to the heuristic).
//   - solver.ErrInfeasible when no assignment fills the staffing floor.
//   - solver.ErrTimeLimit when the budget expires before a conclusion.
func (m *model) solveExact(opts Options) ([]int, error) {
	e := exactEngine{m: m, weeks: m.days / DaysPerWeek}

	if err := solver.GuardSize(len(m.workers), m.seats); err != nil {
		return nil, err
	}

	// Seat flattening.
	e.seatSlot = make([]int, 0, m.seats)
	for si, s := range m.slots {
		for k := 0; k < s.required; k++ {
			e.seatSlot = append(e.seatSlot, si)
		}
	}

	if e.quickInfeasible() {
		return nil, solver.ErrInfeasible
	}

	// Deterministic candidate order: cheapest shift first.
	e.workOrder = make([]int, len(m.workers))
	for i := range e.workOrder {
		e.workOrder[i] = i
	}
	sort.SliceStable(e.workOrder, func(i, j int) bool {
		wi, wj := m.workers[e.workOrder[i]], m.workers[e.workOrder[j]]
		if wi.WagePerHour != wj.WagePerHour {
			return wi.WagePerHour < wj.WagePerHour
		}

		return wi.WorkerID < wj.WorkerID
	})

	e.minShiftCost = m.workers[e.workOrder[0]].WagePerHour * HoursPerShift

	limit := opts.TimeLimit
	if limit == 0 {
		limit = DefaultTimeLimit
	}
	e.budget = solver.NewBudget(limit)

	e.busy = make([][]bool, m.days)
	for d := range e.busy {
		e.busy[d] = make([]bool, len(m.workers))
	}
	e.weekHours = make([][]int, len(m.workers))
	e.nights = make([][]bool, len(m.workers))
	for w := range m.workers {
		e.weekHours[w] = make([]int, e.weeks)
		e.nights[w] = make([]bool, m.days)
	}
	e.choice = make([]int, len(e.seatSlot))
	e.bestChoice = make([]int, len(e.seatSlot))

	e.dfs(0, 0, 0)

	if e.budget.Expired() {
		return nil, solver.ErrTimeLimit
	}
	if !e.found {
		return nil, solver.ErrInfeasible
	}

	// Translate workOrder positions back to worker indexes.
	picks := make([]int, len(e.bestChoice))
	for i, pos := range e.bestChoice {
		picks[i] = e.workOrder[pos]
	}

	return picks, nil
}

// extractSchedule converts seat picks into schedule entries and KPIs.
func (m *model) extractSchedule(picks []int) Result {
	entries := make([]plan.ScheduleEntry, 0, len(picks))
	seat := 0
	for _, s := range m.slots {
		for k := 0; k < s.required; k++ {
			w := m.workers[picks[seat]]
			entries = append(entries, plan.ScheduleEntry{
				Date:       m.date(s.day),
				LineID:     s.lineID,
				Shift:      s.shift,
				WorkerID:   w.WorkerID,
				WorkerName: w.Name,
			})
			seat++
		}
	}

	return Result{
		Outcome: plan.OutcomeSuccess,
		State:   solver.Optimal,
		Entries: entries,
		KPI:     m.kpis(entries),
	}
}
