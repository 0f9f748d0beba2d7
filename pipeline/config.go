package pipeline

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/linemind/planner/mix"
	"github.com/linemind/planner/schedule"
)

// ErrBadStrategy indicates a strategy name other than "heuristic"/"exact".
var ErrBadStrategy = errors.New(`pipeline: strategy must be "heuristic" or "exact"`)

// Strategy names accepted by Config and the PLANNER_* environment.
const (
	StrategyHeuristic = "heuristic"
	StrategyExact     = "exact"
)

// Config selects per-stage strategies and the exact-solver time budget.
type Config struct {
	// MixStrategy and ScheduleStrategy toggle heuristic vs exact per stage.
	// Empty means heuristic.
	MixStrategy      string
	ScheduleStrategy string

	// TimeLimit bounds each exact search; zero keeps the stage defaults.
	TimeLimit time.Duration

	// Logger receives one event per invocation. The zero value logs nothing.
	Logger zerolog.Logger
}

// DefaultConfig returns the all-heuristic, quiet configuration.
func DefaultConfig() Config {
	return Config{
		MixStrategy:      StrategyHeuristic,
		ScheduleStrategy: StrategyHeuristic,
		Logger:           zerolog.Nop(),
	}
}

// ConfigFromEnv builds a Config from PLANNER_MIX_STRATEGY,
// PLANNER_SCHEDULE_STRATEGY and PLANNER_TIME_LIMIT (a Go duration string).
// Unset or unparsable values keep the defaults; strategy names are
// validated later by New.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := strings.ToLower(os.Getenv("PLANNER_MIX_STRATEGY")); v != "" {
		cfg.MixStrategy = v
	}
	if v := strings.ToLower(os.Getenv("PLANNER_SCHEDULE_STRATEGY")); v != "" {
		cfg.ScheduleStrategy = v
	}
	if v := os.Getenv("PLANNER_TIME_LIMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TimeLimit = d
		}
	}

	return cfg
}

// mixStrategy maps the configured name onto the mix package's enum.
func mixStrategy(name string) (mix.Strategy, error) {
	switch name {
	case "", StrategyHeuristic:
		return mix.StrategyHeuristic, nil
	case StrategyExact:
		return mix.StrategyExact, nil
	default:
		return 0, ErrBadStrategy
	}
}

// scheduleStrategy maps the configured name onto the schedule package's enum.
func scheduleStrategy(name string) (schedule.Strategy, error) {
	switch name {
	case "", StrategyHeuristic:
		return schedule.StrategyHeuristic, nil
	case StrategyExact:
		return schedule.StrategyExact, nil
	default:
		return 0, ErrBadStrategy
	}
}
