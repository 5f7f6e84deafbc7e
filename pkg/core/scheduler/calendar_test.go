package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundministry/escala/pkg/core/model"
)

func TestExpandMonth_FourSundays(t *testing.T) {
	// February 2026 has exactly four Sundays: 1, 8, 15, 22
	serviceDays := []model.ServiceDay{
		{ID: "sd-sunday", Name: "Sunday Service", Weekday: time.Sunday, MinOperators: 1, MaxOperators: 2},
	}

	slots, err := ExpandMonth(time.February, 2026, serviceDays)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	expectedDays := []int{1, 8, 15, 22}
	for i, slot := range slots {
		assert.Equal(t, expectedDays[i], slot.Date.Day())
		assert.Equal(t, time.Sunday, slot.Date.Weekday())
		assert.Equal(t, "sd-sunday", slot.ServiceDay.ID)
	}
}

func TestExpandMonth_OrderedAscending(t *testing.T) {
	serviceDays := []model.ServiceDay{
		{ID: "sd-wed", Name: "Midweek", Weekday: time.Wednesday, MinOperators: 1, MaxOperators: 1},
		{ID: "sd-sun", Name: "Sunday Service", Weekday: time.Sunday, MinOperators: 1, MaxOperators: 2},
	}

	slots, err := ExpandMonth(time.March, 2026, serviceDays)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].Date.Before(slots[i-1].Date),
			"slot %d (%s) should not precede slot %d (%s)",
			i, slots[i].Date, i-1, slots[i-1].Date)
	}
}

func TestExpandMonth_SameDateKeepsInputOrder(t *testing.T) {
	// Two services on the same weekday share dates; input order must hold
	serviceDays := []model.ServiceDay{
		{ID: "sd-morning", Name: "Morning Service", Weekday: time.Sunday, MinOperators: 1, MaxOperators: 2},
		{ID: "sd-evening", Name: "Evening Service", Weekday: time.Sunday, MinOperators: 1, MaxOperators: 1},
	}

	slots, err := ExpandMonth(time.February, 2026, serviceDays)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	for i := 0; i < len(slots); i += 2 {
		assert.Equal(t, "sd-morning", slots[i].ServiceDay.ID)
		assert.Equal(t, "sd-evening", slots[i+1].ServiceDay.ID)
		assert.True(t, slots[i].Date.Equal(slots[i+1].Date))
	}
}

func TestExpandMonth_NoMatchingServiceDays(t *testing.T) {
	slots, err := ExpandMonth(time.February, 2026, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
