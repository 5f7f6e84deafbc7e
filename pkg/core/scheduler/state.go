package scheduler

import (
	"math/rand"
	"time"

	"github.com/soundministry/escala/pkg/core/model"
)

// OperatorState tracks one operator's allocation state during a generation run
type OperatorState struct {
	Operator model.Operator

	// AllocationCount is the running workload: published allocations over the
	// history window plus allocations made so far in this run
	AllocationCount int

	// MonthCount is the number of allocations made in this run only,
	// checked against the operator's monthly availability
	MonthCount int

	// LastWorked is the date of the operator's most recent allocation,
	// seeded from the adjacency window and updated as the run proceeds.
	// Zero if the operator has no recent work.
	LastWorked time.Time

	// Normalized membership sets built once at load time
	acceptedSlots  map[string]struct{}
	acceptedMonths map[string]struct{}
	restrictedDays map[int]struct{}
}

// HistoryRecord is one published assignment used to seed fairness and
// adjacency state before a run
type HistoryRecord struct {
	OperatorID string
	EventDate  time.Time
}

// State is the mutable allocation state threaded through one generation run.
// It is scoped to a single invocation and is not safe for concurrent use.
type State struct {
	operators map[string]*OperatorState

	// rosterOrder preserves the load order so runs are reproducible
	// under a fixed random source
	rosterOrder []string

	// partnerOf maps each bonded operator to its preferred partner
	partnerOf map[string]string

	rng *rand.Rand
}

// NewState builds the allocation state for one run. The partner map should
// come from AnalyzePairs so that month-incompatible pairs are already
// excluded. The random source drives ranking tie-breaks and must not be nil.
func NewState(operators []model.Operator, partnerOf map[string]string, rng *rand.Rand) *State {
	s := &State{
		operators: make(map[string]*OperatorState, len(operators)),
		partnerOf: partnerOf,
		rng:       rng,
	}
	if s.partnerOf == nil {
		s.partnerOf = map[string]string{}
	}

	for _, op := range operators {
		os := &OperatorState{
			Operator:       op,
			acceptedSlots:  make(map[string]struct{}, len(op.WeeklyAvailability)),
			acceptedMonths: make(map[string]struct{}, len(op.AnnualAvailability)),
			restrictedDays: make(map[int]struct{}, len(op.RestrictedDays)),
		}
		for _, slot := range op.WeeklyAvailability {
			os.acceptedSlots[slot] = struct{}{}
		}
		for _, m := range op.AnnualAvailability {
			os.acceptedMonths[m] = struct{}{}
		}
		for _, d := range op.RestrictedDays {
			os.restrictedDays[d] = struct{}{}
		}

		s.operators[op.ID] = os
		s.rosterOrder = append(s.rosterOrder, op.ID)
	}

	return s
}

// SeedHistory applies published assignments to the state before the run
// starts. Every record increments the operator's running allocation count.
// Records inside the adjacency window (the adjacencyDays days before the
// target month's first day) also seed the operator's last-worked date, so
// the no-back-to-back rule holds across the month boundary.
func (s *State) SeedHistory(records []HistoryRecord, firstOfMonth time.Time, adjacencyDays int) {
	windowStart := firstOfMonth.AddDate(0, 0, -adjacencyDays)

	for _, rec := range records {
		os, ok := s.operators[rec.OperatorID]
		if !ok {
			continue
		}

		os.AllocationCount++

		if !rec.EventDate.Before(windowStart) && rec.EventDate.After(os.LastWorked) {
			os.LastWorked = rec.EventDate
		}
	}
}

// Stats returns the operator state for an ID, or nil if unknown
func (s *State) Stats(operatorID string) *OperatorState {
	return s.operators[operatorID]
}
