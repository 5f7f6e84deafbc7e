package scheduler

import (
	"time"

	"github.com/soundministry/escala/pkg/core/model"
)

// eligible reports whether an operator may legally work the given slot.
//
// All of the following must hold:
//   - allocations this run are below the operator's monthly availability
//   - the slot's day of month is not in the operator's restricted days
//   - the operator's accepted slots contain the service-day ID or the
//     weekday token (either encoding is sufficient)
//   - the operator's accepted months contain the target month's token
//   - the slot's date is not the same day as, or the day immediately after,
//     the operator's last-worked date
func (s *State) eligible(os *OperatorState, slot CalendarSlot) bool {
	if os.MonthCount >= os.Operator.MonthlyAvailability {
		return false
	}

	if _, restricted := os.restrictedDays[slot.Date.Day()]; restricted {
		return false
	}

	_, byID := os.acceptedSlots[slot.ServiceDay.ID]
	_, byDay := os.acceptedSlots[model.WeekdayToken(slot.Date.Weekday())]
	if !byID && !byDay {
		return false
	}

	if _, ok := os.acceptedMonths[model.MonthToken(slot.Date.Month())]; !ok {
		return false
	}

	if !os.LastWorked.IsZero() {
		daysSince := daysBetween(os.LastWorked, slot.Date)
		if daysSince == 0 || daysSince == 1 {
			return false
		}
	}

	return true
}

// daysBetween returns whole calendar days from a to b
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
