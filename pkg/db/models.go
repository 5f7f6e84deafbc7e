package db

import "time"

// Operator is a sound operator record. Restrictions are eagerly attached,
// scoped to the month and year the caller asked for.
type Operator struct {
	ID                  string
	Name                string
	MonthlyAvailability int
	WeeklyAvailability  []string
	AnnualAvailability  []string
	CanWorkAlone        bool
	RestrictedDays      []int
}

// ServiceDay is a recurring service-day record
type ServiceDay struct {
	ID           string
	Name         string
	Weekday      int
	MinOperators int
	MaxOperators int
}

// PreferredPair is a preferred-pair record
type PreferredPair struct {
	ID               string
	FirstOperatorID  string
	SecondOperatorID string
}

// Schedule is a schedule record, unique per (month, year)
type Schedule struct {
	ID     string
	Month  int
	Year   int
	Status string
}

// ScheduleEvent is a concrete dated event within a schedule
type ScheduleEvent struct {
	ID           string
	ScheduleID   string
	Date         time.Time
	Name         string
	MinOperators int
	MaxOperators int
}

// Assignment binds one operator to one event. IsManual distinguishes later
// manual edits from algorithm output.
type Assignment struct {
	ID         string
	EventID    string
	OperatorID string
	IsManual   bool
}

// HistoricalAssignment is a published assignment row joined with its event
// date, used to seed fairness and adjacency state
type HistoricalAssignment struct {
	OperatorID string
	EventDate  time.Time
}

// EventWithAssignments is the read shape used when displaying a schedule
type EventWithAssignments struct {
	Event       ScheduleEvent
	Assignments []AssignmentWithName
}

// AssignmentWithName joins an assignment with its operator's name
type AssignmentWithName struct {
	Assignment   Assignment
	OperatorName string
}
