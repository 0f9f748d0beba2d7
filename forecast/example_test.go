package forecast_test

import (
	"fmt"
	"time"

	"github.com/linemind/planner/forecast"
)

// ExampleForecast demonstrates the flat baseline: a product with no recorded
// history projects 100 units/day with a ±20% confidence band.
func ExampleForecast() {
	opts := forecast.DefaultOptions()
	opts.Start = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	series, err := forecast.Forecast("WidgetA", nil, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("points:", len(series))
	first := series[0]
	fmt.Printf("%s: %.0f units [%.0f, %.0f]\n",
		first.Date.Format("2006-01-02"), first.ForecastUnits, first.ConfidenceLow, first.ConfidenceHigh)

	// Output:
	// points: 30
	// 2025-03-01: 100 units [80, 120]
}
