// Package plan_test validates the shared planning entities.
// Focus:
//  1. Shift naming and JSON round-trip, including unknown wire names.
//  2. Line eligibility lookups.
//  3. ChangeoverTable indexing (asymmetry, duplicates, misses).
//  4. ErrorCode wire names.
package plan_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linemind/planner/plan"
)

// TestShift_JSON verifies the canonical wire names survive a round-trip and
// unknown names are rejected.
func TestShift_JSON(t *testing.T) {
	for _, s := range []plan.Shift{plan.ShiftDay, plan.ShiftNight} {
		b, err := json.Marshal(s)
		require.NoError(t, err)

		var back plan.Shift
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, s, back)
	}

	var s plan.Shift
	assert.Error(t, json.Unmarshal([]byte(`"Dusk"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`3`), &s))
}

// TestShift_String verifies printable names, including out-of-range values.
func TestShift_String(t *testing.T) {
	assert.Equal(t, "Day", plan.ShiftDay.String())
	assert.Equal(t, "Night", plan.ShiftNight.String())
	assert.Equal(t, "Shift(7)", plan.Shift(7).String())
}

// TestLine_Eligible verifies membership lookups on the eligibility list.
func TestLine_Eligible(t *testing.T) {
	l := plan.Line{LineID: "L1", EligibleProducts: []string{"WidgetA", "WidgetB"}, DailyCapacity: 150}

	assert.True(t, l.Eligible("WidgetA"))
	assert.True(t, l.Eligible("WidgetB"))
	assert.False(t, l.Eligible("WidgetC"))
	assert.False(t, plan.Line{}.Eligible("WidgetA"))
}

// TestChangeoverTable verifies directed lookups, duplicate resolution and
// misses on undefined pairs.
func TestChangeoverTable(t *testing.T) {
	table := plan.NewChangeoverTable([]plan.ChangeoverCost{
		{From: "WidgetA", To: "WidgetB", Hours: 4, Cost: 500},
		{From: "WidgetB", To: "WidgetA", Hours: 2, Cost: 250},
		{From: "WidgetA", To: "WidgetB", Hours: 6, Cost: 900}, // later duplicate wins
	})

	c, ok := table.Lookup("WidgetA", "WidgetB")
	require.True(t, ok)
	assert.Equal(t, 900.0, c.Cost)
	assert.Equal(t, 6.0, c.Hours)

	c, ok = table.Lookup("WidgetB", "WidgetA")
	require.True(t, ok)
	assert.Equal(t, 250.0, c.Cost)

	_, ok = table.Lookup("WidgetB", "WidgetC")
	assert.False(t, ok)
}

// TestErrorCode_WireNames verifies the stable names used in envelopes.
func TestErrorCode_WireNames(t *testing.T) {
	assert.Equal(t, "UNKNOWN", plan.CodeUnknown.String())
	assert.Equal(t, "DATA_SHAPE", plan.CodeDataShape.String())
	assert.Equal(t, "INFEASIBLE_MODEL", plan.CodeInfeasibleModel.String())
	assert.Equal(t, "SOLVER_TIMEOUT", plan.CodeSolverTimeout.String())
	assert.Equal(t, "SOLVER_UNAVAILABLE", plan.CodeSolverUnavailable.String())

	b, err := json.Marshal(plan.CodeSolverTimeout)
	require.NoError(t, err)
	assert.Equal(t, `"SOLVER_TIMEOUT"`, string(b))
}
