package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/linemind/planner/plan"
)

// day truncates a timestamp to its UTC calendar day.
func day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// dailyTotals collapses the product's history into per-day produced totals,
// returned in ascending date order.
//
// Complexity: O(h log h) for h history rows (sort of distinct days).
func dailyTotals(product string, history []plan.ProductionRecord) ([]time.Time, []int) {
	totals := make(map[time.Time]int)
	for _, r := range history {
		if r.Product != product {
			continue
		}
		totals[day(r.Date)] += r.ProducedUnits
	}
	if len(totals) == 0 {
		return nil, nil
	}

	dates := make([]time.Time, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	units := make([]int, len(dates))
	for i, d := range dates {
		units[i] = totals[d]
	}

	return dates, units
}

// Forecast projects demand for one product over opts.Horizon days.
//
// Contract:
//   - product must be non-empty; history may be empty or lack the product
//     entirely (both degrade to the flat baseline, never an error).
//   - The returned series has exactly opts.Horizon points, ordered by date,
//     one day apart.
//
// Errors: ErrEmptyProduct, ErrBadHorizon, ErrBadWindow.
//
// Complexity: O(h log h + horizon) time.
func Forecast(product string, history []plan.ProductionRecord, opts Options) ([]plan.DemandPoint, error) {
	if product == "" {
		return nil, ErrEmptyProduct
	}
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	dates, units := dailyTotals(product, history)
	if len(dates) == 0 {
		return flatBaseline(product, opts), nil
	}

	// Rolling baseline: mean of the trailing window (shrunk when the
	// observed span is shorter than the window).
	window := opts.Window
	if window > len(units) {
		window = len(units)
	}
	var sum float64
	for _, u := range units[len(units)-window:] {
		sum += float64(u)
	}
	baseline := sum / float64(window)

	// Project forward from the day after the last observation, perturbing
	// with zero-mean Gaussian noise (σ = 10% of the baseline).
	var (
		rng   = rngFromSeed(opts.Seed)
		start = dates[len(dates)-1].AddDate(0, 0, 1)
		out   = make([]plan.DemandPoint, opts.Horizon)
		val   float64
	)
	for i := 0; i < opts.Horizon; i++ {
		val = baseline + rng.NormFloat64()*baseline*NoiseSigmaShare
		if val < 0 {
			val = 0
		}
		val = math.Round(val)
		out[i] = plan.DemandPoint{
			Date:           start.AddDate(0, 0, i),
			Product:        product,
			ForecastUnits:  val,
			ConfidenceLow:  val * BandLowShare,
			ConfidenceHigh: val * BandHighShare,
		}
	}

	return out, nil
}

// flatBaseline emits the no-history fallback: BaselineUnits per day with
// the standard ±20% band, anchored at opts.Start.
func flatBaseline(product string, opts Options) []plan.DemandPoint {
	out := make([]plan.DemandPoint, opts.Horizon)
	for i := 0; i < opts.Horizon; i++ {
		out[i] = plan.DemandPoint{
			Date:           opts.Start.AddDate(0, 0, i),
			Product:        product,
			ForecastUnits:  BaselineUnits,
			ConfidenceLow:  BaselineUnits * BandLowShare,
			ConfidenceHigh: BaselineUnits * BandHighShare,
		}
	}

	return out
}

// RunAll forecasts every requested product. When products is nil, the
// distinct products observed in history are used (ascending order, so
// output is reproducible). Missing data never fails a product — it degrades
// to the flat baseline.
//
// Errors: only option validation (ErrBadHorizon, ErrBadWindow).
func RunAll(history []plan.ProductionRecord, products []string, opts Options) (map[string][]plan.DemandPoint, error) {
	if _, err := opts.normalized(); err != nil {
		return nil, err
	}

	if products == nil {
		seen := make(map[string]struct{})
		for _, r := range history {
			if r.Product == "" {
				continue
			}
			seen[r.Product] = struct{}{}
		}
		products = make([]string, 0, len(seen))
		for p := range seen {
			products = append(products, p)
		}
		sort.Strings(products)
	}

	out := make(map[string][]plan.DemandPoint, len(products))
	for _, p := range products {
		series, err := Forecast(p, history, opts)
		if err != nil {
			return nil, err
		}
		out[p] = series
	}

	return out, nil
}
