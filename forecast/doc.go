// Package forecast produces per-product demand series from production
// history using a trailing moving average with a synthetic noise band.
//
// Algorithm outline:
//  1. Filter the history to the requested product and sum produced units
//     per calendar day (day and night shifts of the same date collapse
//     into one observation).
//  2. Average the trailing window (7 days, shrinking to the observed span
//     when history is shorter) to obtain the rolling baseline.
//  3. Project the baseline forward for the horizon (30 days), perturbing
//     each day with independent zero-mean Gaussian noise whose standard
//     deviation is 10% of the baseline; negative values clamp to zero and
//     units round to whole numbers.
//  4. Attach the confidence band after noise:
//     low = units × 0.8, high = units × 1.2.
//
// A product absent from history degrades to a flat 100 units/day baseline
// with the same ±20% band — forecasting never fails on missing data.
//
// Noise is drawn from a deterministic seeded RNG (same seed ⇒ identical
// series across platforms); callers wanting run-to-run variation pass their
// own seed. Treat individual values as stochastic: assert statistical
// bounds, not point equality.
package forecast
