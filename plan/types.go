package plan

import (
	"encoding/json"
	"fmt"
	"time"
)

// Shift identifies one of the two daily work shifts.
type Shift uint8

const (
	// ShiftDay is the day shift.
	ShiftDay Shift = iota
	// ShiftNight is the night shift.
	ShiftNight
)

// shiftNames maps Shift values to their canonical wire names.
var shiftNames = [...]string{"Day", "Night"}

// String returns the canonical name ("Day" or "Night").
func (s Shift) String() string {
	if int(s) < len(shiftNames) {
		return shiftNames[s]
	}

	return fmt.Sprintf("Shift(%d)", uint8(s))
}

// MarshalJSON encodes the shift as its canonical name.
func (s Shift) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes "Day"/"Night" back into a Shift.
func (s *Shift) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	switch name {
	case shiftNames[ShiftDay]:
		*s = ShiftDay
	case shiftNames[ShiftNight]:
		*s = ShiftNight
	default:
		return fmt.Errorf("plan: unknown shift %q", name)
	}

	return nil
}

// ProductionRecord is one validated row of production history
// (one line, one product, one shift, one calendar day).
type ProductionRecord struct {
	Date          time.Time `json:"date" validate:"required"`
	LineID        string    `json:"line_id" validate:"required"`
	Product       string    `json:"product" validate:"required"`
	Shift         Shift     `json:"shift" validate:"lte=1"`
	ProducedUnits int       `json:"produced_units" validate:"gte=0"`
	TargetUnits   int       `json:"target_units" validate:"gte=0"`
}

// DemandPoint is one day of forecast demand for a single product.
// ForecastUnits is rounded to whole units; the confidence band is derived
// after noise as ForecastUnits × 0.8 / × 1.2.
type DemandPoint struct {
	Date           time.Time `json:"date"`
	Product        string    `json:"product"`
	ForecastUnits  float64   `json:"forecast_units"`
	ConfidenceLow  float64   `json:"conf_lo"`
	ConfidenceHigh float64   `json:"conf_hi"`
}

// Line describes one production line: which products it may run and how
// many units it can produce per day.
type Line struct {
	LineID           string   `json:"line_id" validate:"required"`
	EligibleProducts []string `json:"eligible_products" validate:"min=1,dive,required"`
	DailyCapacity    int      `json:"daily_capacity" validate:"gt=0"`
}

// Eligible reports whether the line may produce the given product.
func (l Line) Eligible(product string) bool {
	for _, p := range l.EligibleProducts {
		if p == product {
			return true
		}
	}

	return false
}

// MixPlanEntry assigns a production quantity to a (line, product, period)
// triple. Period is 1-based (week number). Utilization is the planned share
// of the line's weekly capacity, in [0, 1].
type MixPlanEntry struct {
	Period       int     `json:"period" validate:"gte=1"`
	LineID       string  `json:"line_id" validate:"required"`
	Product      string  `json:"product" validate:"required"`
	PlannedUnits int     `json:"planned_units" validate:"gte=0"`
	Utilization  float64 `json:"line_utilization" validate:"gte=0,lte=1"`
}

// ChangeoverKey identifies a directed product switch on a line.
type ChangeoverKey struct {
	From string
	To   string
}

// ChangeoverCost is the time and money a line loses when it switches from
// producing one product to another between consecutive periods.
type ChangeoverCost struct {
	From  string  `json:"from_product" validate:"required"`
	To    string  `json:"to_product" validate:"required"`
	Hours float64 `json:"hours" validate:"gte=0"`
	Cost  float64 `json:"cost" validate:"gte=0"`
}

// ChangeoverTable is a flat lookup keyed by (from, to). Pairs may be
// asymmetric; a missing pair is a data gap the caller must fix upstream.
type ChangeoverTable map[ChangeoverKey]ChangeoverCost

// NewChangeoverTable indexes the given pairs. Later duplicates win.
func NewChangeoverTable(pairs []ChangeoverCost) ChangeoverTable {
	t := make(ChangeoverTable, len(pairs))
	for _, c := range pairs {
		t[ChangeoverKey{From: c.From, To: c.To}] = c
	}

	return t
}

// Lookup returns the changeover for from→to and whether it is defined.
func (t ChangeoverTable) Lookup(from, to string) (ChangeoverCost, bool) {
	c, ok := t[ChangeoverKey{From: from, To: to}]

	return c, ok
}

// Worker is one member of the roster available for shift scheduling.
type Worker struct {
	WorkerID        string  `json:"worker_id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	SeniorityYears  int     `json:"seniority_years" validate:"gte=0"`
	WagePerHour     float64 `json:"wage_per_hour" validate:"gt=0"`
	MaxHoursPerWeek int     `json:"max_hours_per_week" validate:"gt=0"`
	PrefersNight    bool    `json:"prefers_night"`
}

// ScheduleEntry places one worker on one line for one shift of one day.
// A worker appears at most once per date across the whole schedule.
type ScheduleEntry struct {
	Date       time.Time `json:"date"`
	LineID     string    `json:"line_id"`
	Shift      Shift     `json:"shift"`
	WorkerID   string    `json:"worker_id"`
	WorkerName string    `json:"worker_name"`
}
