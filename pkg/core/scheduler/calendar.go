package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/soundministry/escala/pkg/core/model"
)

// CalendarSlot is one concrete dated occurrence of a service day
type CalendarSlot struct {
	Date       time.Time
	ServiceDay model.ServiceDay
}

// rruleWeekdays maps time.Weekday to the rrule BYDAY representation
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// ExpandMonth produces the ordered list of calendar slots for a month.
// Each service day contributes one slot per matching weekday. Slots are
// sorted ascending by date; service days sharing a date keep their input
// order.
func ExpandMonth(month time.Month, year int, serviceDays []model.ServiceDay) ([]CalendarSlot, error) {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	var slots []CalendarSlot
	for _, sd := range serviceDays {
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[sd.Weekday]},
			Dtstart:   firstDay,
			Until:     lastDay,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence for service day %s: %w", sd.Name, err)
		}

		for _, date := range rule.All() {
			slots = append(slots, CalendarSlot{Date: date, ServiceDay: sd})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Date.Before(slots[j].Date)
	})

	return slots, nil
}
