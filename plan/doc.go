// Package plan defines the shared, immutable domain entities exchanged
// between the planning stages of github.com/linemind/planner, plus the
// stable error-code taxonomy used by every outward-facing result.
//
// Entities are plain value types produced fresh per invocation and never
// mutated after creation; they are safe to share across goroutines. Each
// struct carries `json` tags (results are envelope-ready) and `validate`
// tags consumed by the pipeline façade's input validation.
//
// Ownership, leaf-first:
//
//	ProductionRecord — history row, consumed by forecast
//	DemandPoint      — produced by forecast, consumed by mix
//	Line             — read-only seed data, consumed by mix and schedule
//	MixPlanEntry     — produced by mix, consumed by schedule
//	ChangeoverCost   — read-only seed data, consumed by the exact mix solver
//	Worker           — read-only seed data, consumed by schedule
//	ScheduleEntry    — produced by schedule
//
// The changeover lookup is a flat map keyed by (from, to) product pairs
// rather than a dense matrix: product sets are small and a missing pair is
// a data-validation failure upstream, never a silent zero.
package plan
