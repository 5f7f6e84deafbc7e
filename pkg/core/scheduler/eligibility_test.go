package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundministry/escala/pkg/core/model"
)

func testOperator(id string) model.Operator {
	return model.Operator{
		ID:                  id,
		Name:                "Operator " + id,
		MonthlyAvailability: 4,
		WeeklyAvailability:  []string{"SUNDAY"},
		AnnualAvailability:  []string{"FEBRUARY"},
		CanWorkAlone:        true,
	}
}

func sundaySlot(day int) CalendarSlot {
	return CalendarSlot{
		Date: time.Date(2026, time.February, day, 0, 0, 0, 0, time.UTC),
		ServiceDay: model.ServiceDay{
			ID:           "sd-sunday",
			Name:         "Sunday Service",
			Weekday:      time.Sunday,
			MinOperators: 1,
			MaxOperators: 2,
		},
	}
}

func TestEligible_MonthlyQuotaExhausted(t *testing.T) {
	op := testOperator("op-1")
	op.MonthlyAvailability = 1

	state := NewState([]model.Operator{op}, nil, rand.New(rand.NewSource(1)))
	os := state.Stats("op-1")
	require.NotNil(t, os)

	assert.True(t, state.eligible(os, sundaySlot(1)))

	os.MonthCount = 1
	assert.False(t, state.eligible(os, sundaySlot(8)))
}

func TestEligible_RestrictedDayOfMonth(t *testing.T) {
	op := testOperator("op-1")
	op.RestrictedDays = []int{15}

	state := NewState([]model.Operator{op}, nil, rand.New(rand.NewSource(1)))
	os := state.Stats("op-1")

	assert.True(t, state.eligible(os, sundaySlot(8)))
	assert.False(t, state.eligible(os, sundaySlot(15)))
	assert.True(t, state.eligible(os, sundaySlot(22)))
}

func TestEligible_WeeklyAvailabilityByIDOrToken(t *testing.T) {
	tests := []struct {
		name     string
		weekly   []string
		eligible bool
	}{
		{name: "service day id", weekly: []string{"sd-sunday"}, eligible: true},
		{name: "weekday token", weekly: []string{"SUNDAY"}, eligible: true},
		{name: "both encodings", weekly: []string{"sd-sunday", "SUNDAY"}, eligible: true},
		{name: "other day only", weekly: []string{"WEDNESDAY"}, eligible: false},
		{name: "empty", weekly: nil, eligible: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op := testOperator("op-1")
			op.WeeklyAvailability = tc.weekly

			state := NewState([]model.Operator{op}, nil, rand.New(rand.NewSource(1)))
			assert.Equal(t, tc.eligible, state.eligible(state.Stats("op-1"), sundaySlot(1)))
		})
	}
}

func TestEligible_AnnualAvailability(t *testing.T) {
	op := testOperator("op-1")
	op.AnnualAvailability = []string{"JANUARY", "MARCH"}

	state := NewState([]model.Operator{op}, nil, rand.New(rand.NewSource(1)))
	assert.False(t, state.eligible(state.Stats("op-1"), sundaySlot(1)))

	op.AnnualAvailability = []string{"FEBRUARY"}
	state = NewState([]model.Operator{op}, nil, rand.New(rand.NewSource(1)))
	assert.True(t, state.eligible(state.Stats("op-1"), sundaySlot(1)))
}

func TestEligible_NoBackToBackDays(t *testing.T) {
	// availability covers all three probed weekdays so only adjacency varies:
	// Feb 7 2026 is a Saturday, Feb 8 a Sunday, Feb 9 a Monday
	op := testOperator("op-1")
	op.WeeklyAvailability = []string{"SATURDAY", "SUNDAY", "MONDAY"}
	state := NewState([]model.Operator{op}, nil, rand.New(rand.NewSource(1)))
	os := state.Stats("op-1")

	os.LastWorked = time.Date(2026, time.February, 7, 0, 0, 0, 0, time.UTC)

	// same day and next day blocked, two days out allowed
	assert.False(t, state.eligible(os, sundaySlot(7)))
	assert.False(t, state.eligible(os, sundaySlot(8)))
	assert.True(t, state.eligible(os, sundaySlot(9)))
}

func TestSeedHistory_CountsAndAdjacency(t *testing.T) {
	op := testOperator("op-1")
	state := NewState([]model.Operator{op}, nil, rand.New(rand.NewSource(1)))

	firstOfMonth := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	records := []HistoryRecord{
		{OperatorID: "op-1", EventDate: time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)},
		{OperatorID: "op-1", EventDate: time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)},
		{OperatorID: "unknown", EventDate: firstOfMonth},
	}

	state.SeedHistory(records, firstOfMonth, 7)

	os := state.Stats("op-1")
	require.NotNil(t, os)

	// every record counts toward fairness, only the adjacency window seeds LastWorked
	assert.Equal(t, 2, os.AllocationCount)
	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), os.LastWorked)

	// Jan 31 last-worked blocks Feb 1 across the month boundary
	assert.False(t, state.eligible(os, sundaySlot(1)))
	assert.True(t, state.eligible(os, sundaySlot(8)))
}
