// Package forecast - types, options and sentinel errors.
package forecast

import (
	"errors"
	"time"
)

// Sentinel errors for forecast operations.
var (
	// ErrEmptyProduct indicates the product identifier is empty.
	ErrEmptyProduct = errors.New("forecast: product must be non-empty")
	// ErrBadHorizon indicates a non-positive forecast horizon.
	ErrBadHorizon = errors.New("forecast: horizon must be positive")
	// ErrBadWindow indicates a non-positive moving-average window.
	ErrBadWindow = errors.New("forecast: window must be positive")
)

const (
	// DefaultHorizon is the number of projected days.
	DefaultHorizon = 30
	// DefaultWindow is the trailing moving-average span in days.
	DefaultWindow = 7
	// BaselineUnits is the flat daily demand assumed for products with no
	// recorded history.
	BaselineUnits = 100.0
	// NoiseSigmaShare is the noise standard deviation as a share of the
	// rolling baseline.
	NoiseSigmaShare = 0.10
	// BandLowShare and BandHighShare derive the confidence band from the
	// (noisy) forecast value.
	BandLowShare  = 0.8
	BandHighShare = 1.2
)

// Options configures a forecast run.
//
// Zero values select the defaults: Horizon=30, Window=7, a fixed RNG seed,
// and — for products without history — a projection starting at the current
// UTC day.
type Options struct {
	// Horizon is the number of days to project (default DefaultHorizon).
	Horizon int

	// Window is the trailing moving-average span (default DefaultWindow).
	Window int

	// Seed drives the noise RNG. Seed==0 selects a fixed default seed, so
	// unconfigured runs are reproducible.
	Seed int64

	// Start anchors the projection when the product has no history
	// (otherwise projection continues from the last observed date).
	// Zero means the current UTC day.
	Start time.Time
}

// DefaultOptions returns the canonical forecast configuration.
func DefaultOptions() Options {
	return Options{Horizon: DefaultHorizon, Window: DefaultWindow}
}

// normalized applies defaults and validates the remaining fields.
func (o Options) normalized() (Options, error) {
	if o.Horizon == 0 {
		o.Horizon = DefaultHorizon
	}
	if o.Window == 0 {
		o.Window = DefaultWindow
	}
	if o.Horizon < 0 {
		return o, ErrBadHorizon
	}
	if o.Window < 0 {
		return o, ErrBadWindow
	}
	if o.Start.IsZero() {
		o.Start = time.Now().UTC().Truncate(24 * time.Hour)
	}

	return o, nil
}
