package model

import "time"

// ScheduleStatus is the lifecycle status of a schedule
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "DRAFT"
	StatusPublished ScheduleStatus = "PUBLISHED"
)

func (s ScheduleStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Operator represents a schedulable sound operator
type Operator struct {
	ID   string
	Name string

	// MonthlyAvailability caps how many events the operator accepts per month
	MonthlyAvailability int

	// WeeklyAvailability holds accepted slots: service-day IDs and/or
	// weekday tokens ("SUNDAY", ...) - both encodings are in use
	WeeklyAvailability []string

	// AnnualAvailability holds accepted month tokens ("JANUARY", ...)
	AnnualAvailability []string

	CanWorkAlone bool

	// RestrictedDays are days-of-month the operator is unavailable,
	// already scoped to the target month and year
	RestrictedDays []int
}

// ServiceDay is a recurring weekly event template
type ServiceDay struct {
	ID           string
	Name         string
	Weekday      time.Weekday
	MinOperators int
	MaxOperators int
}

// PreferredPair bonds two operators that should be scheduled together
type PreferredPair struct {
	ID               string
	FirstOperatorID  string
	SecondOperatorID string
}

// weekdayTokens are the stored weekday names, indexed by time.Weekday
var weekdayTokens = [7]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

// monthTokens are the stored month names, indexed by time.Month - 1
var monthTokens = [12]string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// WeekdayToken returns the stored name for a weekday
func WeekdayToken(d time.Weekday) string {
	return weekdayTokens[d]
}

// MonthToken returns the stored name for a month
func MonthToken(m time.Month) string {
	return monthTokens[m-1]
}
