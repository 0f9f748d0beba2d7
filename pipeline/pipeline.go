package pipeline

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linemind/planner/forecast"
	"github.com/linemind/planner/mix"
	"github.com/linemind/planner/plan"
	"github.com/linemind/planner/schedule"
)

// Pipeline runs planning stages under one configuration. Safe for
// concurrent use: per-call state only, read-only configuration.
type Pipeline struct {
	mixStrategy      mix.Strategy
	scheduleStrategy schedule.Strategy
	timeLimit        time.Duration
	validate         *validator.Validate
	log              zerolog.Logger
}

// New builds a Pipeline, validating the configured strategy names.
func New(cfg Config) (*Pipeline, error) {
	ms, err := mixStrategy(cfg.MixStrategy)
	if err != nil {
		return nil, err
	}
	ss, err := scheduleStrategy(cfg.ScheduleStrategy)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		mixStrategy:      ms,
		scheduleStrategy: ss,
		timeLimit:        cfg.TimeLimit,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
		log:              cfg.Logger,
	}, nil
}

// ForecastEnvelope is the uniform result of RunForecast.
type ForecastEnvelope struct {
	Outcome    plan.Outcome                  `json:"outcome"`
	RunID      string                        `json:"run_id"`
	Forecasts  map[string][]plan.DemandPoint `json:"forecasts,omitempty"`
	Diagnostic *plan.Diagnostic              `json:"diagnostic,omitempty"`
}

// MixEnvelope is the uniform result of RunMixOptimization.
type MixEnvelope struct {
	Outcome    plan.Outcome        `json:"outcome"`
	RunID      string              `json:"run_id"`
	MixPlan    []plan.MixPlanEntry `json:"mix_plan,omitempty"`
	KPI        mix.KPI             `json:"kpi"`
	Diagnostic *plan.Diagnostic    `json:"diagnostic,omitempty"`
}

// ScheduleEnvelope is the uniform result of RunSchedule.
type ScheduleEnvelope struct {
	Outcome    plan.Outcome         `json:"outcome"`
	RunID      string               `json:"run_id"`
	Schedule   []plan.ScheduleEntry `json:"schedule,omitempty"`
	KPI        schedule.KPI         `json:"kpi"`
	Diagnostic *plan.Diagnostic     `json:"diagnostic,omitempty"`
}

// RunForecast projects demand for the requested products (all products
// observed in history when products is nil). Missing history degrades to
// the flat baseline; only malformed rows or options fail the run.
func (p *Pipeline) RunForecast(history []plan.ProductionRecord, products []string) (env ForecastEnvelope) {
	var (
		runID = uuid.NewString()
		began = time.Now()
	)
	env.RunID = runID
	defer p.recoverInto(&env.Outcome, &env.Diagnostic)

	for i := range history {
		if err := p.validate.Struct(history[i]); err != nil {
			env.Outcome = plan.OutcomeError
			env.Diagnostic = shapeDiagnostic("history", i, err)
			p.logRun(runID, "forecast", "", began, env.Outcome, env.Diagnostic, nil)

			return env
		}
	}

	forecasts, err := forecast.RunAll(history, products, forecast.DefaultOptions())
	if err != nil {
		env.Outcome = plan.OutcomeError
		env.Diagnostic = &plan.Diagnostic{Code: plan.CodeDataShape, Message: err.Error()}
		p.logRun(runID, "forecast", "", began, env.Outcome, env.Diagnostic, nil)

		return env
	}

	env.Outcome = plan.OutcomeSuccess
	env.Forecasts = forecasts
	p.logRun(runID, "forecast", "", began, env.Outcome, nil, nil)

	return env
}

// RunMixOptimization assigns production to lines using the configured
// strategy.
func (p *Pipeline) RunMixOptimization(demand map[string][]plan.DemandPoint, lines []plan.Line, costs mix.CostParams) (env MixEnvelope) {
	var (
		runID = uuid.NewString()
		began = time.Now()
	)
	env.RunID = runID
	defer p.recoverInto(&env.Outcome, &env.Diagnostic)

	for i := range lines {
		if err := p.validate.Struct(lines[i]); err != nil {
			env.Outcome = plan.OutcomeError
			env.Diagnostic = shapeDiagnostic("lines", i, err)
			p.logRun(runID, "mix", p.mixStrategy.String(), began, env.Outcome, env.Diagnostic, nil)

			return env
		}
	}

	res := mix.Optimize(demand, lines, costs, mix.Options{
		Strategy:  p.mixStrategy,
		TimeLimit: p.timeLimit,
	})
	env.Outcome = res.Outcome
	env.MixPlan = res.Entries
	env.KPI = res.KPI
	env.Diagnostic = res.Diagnostic
	var kpi *kpiHighlights
	if env.Outcome == plan.OutcomeSuccess {
		kpi = &kpiHighlights{fulfillment: res.KPI.FulfillmentRate, cost: res.KPI.EstimatedCost}
	}
	p.logRun(runID, "mix", p.mixStrategy.String(), began, env.Outcome, env.Diagnostic, kpi)

	return env
}

// RunSchedule staffs a mix plan with the given roster using the configured
// strategy. The plan may come from RunMixOptimization or from an external
// caller.
func (p *Pipeline) RunSchedule(mixPlan []plan.MixPlanEntry, workers []plan.Worker) (env ScheduleEnvelope) {
	var (
		runID = uuid.NewString()
		began = time.Now()
	)
	env.RunID = runID
	defer p.recoverInto(&env.Outcome, &env.Diagnostic)

	for i := range mixPlan {
		if err := p.validate.Struct(mixPlan[i]); err != nil {
			env.Outcome = plan.OutcomeError
			env.Diagnostic = shapeDiagnostic("mix_plan", i, err)
			p.logRun(runID, "schedule", p.scheduleStrategy.String(), began, env.Outcome, env.Diagnostic, nil)

			return env
		}
	}
	for i := range workers {
		if err := p.validate.Struct(workers[i]); err != nil {
			env.Outcome = plan.OutcomeError
			env.Diagnostic = shapeDiagnostic("workers", i, err)
			p.logRun(runID, "schedule", p.scheduleStrategy.String(), began, env.Outcome, env.Diagnostic, nil)

			return env
		}
	}

	res := schedule.Build(mixPlan, workers, schedule.Options{
		Strategy:  p.scheduleStrategy,
		TimeLimit: p.timeLimit,
	})
	env.Outcome = res.Outcome
	env.Schedule = res.Entries
	env.KPI = res.KPI
	env.Diagnostic = res.Diagnostic
	var kpi *kpiHighlights
	if env.Outcome == plan.OutcomeSuccess {
		kpi = &kpiHighlights{fulfillment: res.KPI.FulfillmentRate, cost: res.KPI.TotalCost}
	}
	p.logRun(runID, "schedule", p.scheduleStrategy.String(), began, env.Outcome, env.Diagnostic, kpi)

	return env
}

// shapeDiagnostic renders a validation failure on element i of the named
// input slice as a DATA_SHAPE diagnostic.
func shapeDiagnostic(input string, i int, err error) *plan.Diagnostic {
	return &plan.Diagnostic{
		Code:       plan.CodeDataShape,
		Message:    fmt.Sprintf("%s[%d]: %v", input, i, err),
		Suggestion: "fix the malformed row and re-invoke",
	}
}

// recoverInto converts a panic into an UNKNOWN-code failure envelope; no
// fault crosses the pipeline boundary unwrapped.
func (p *Pipeline) recoverInto(outcome *plan.Outcome, diag **plan.Diagnostic) {
	r := recover()
	if r == nil {
		return
	}
	*outcome = plan.OutcomeError
	*diag = &plan.Diagnostic{
		Code:    plan.CodeUnknown,
		Message: fmt.Sprintf("internal fault: %v", r),
	}
	p.log.Error().Interface("panic", r).Msg("planning stage panicked")
}

// kpiHighlights carries the headline figures of a successful stage into its
// per-invocation event.
type kpiHighlights struct {
	fulfillment float64
	cost        float64
}

// logRun emits the single per-invocation event.
func (p *Pipeline) logRun(runID, stage, strategy string, began time.Time, outcome plan.Outcome, diag *plan.Diagnostic, kpi *kpiHighlights) {
	evt := p.log.Info().
		Str("run_id", runID).
		Str("stage", stage).
		Dur("took", time.Since(began)).
		Str("outcome", string(outcome))
	if strategy != "" {
		evt = evt.Str("strategy", strategy)
	}
	if kpi != nil {
		evt = evt.Float64("fulfillment_rate", kpi.fulfillment).Float64("cost", kpi.cost)
	}
	if diag != nil {
		evt = evt.Str("code", diag.Code.String()).Str("message", diag.Message)
	}
	evt.Msg("planning stage finished")
}
