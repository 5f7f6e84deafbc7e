package scheduler

// Selection is one allocation step: a single operator, or a bonded pair
// taken together in the same step
type Selection struct {
	OperatorIDs []string
	Paired      bool
}

// EventAllocation is the outcome of allocating one event
type EventAllocation struct {
	// Selections in allocation order
	Selections []Selection

	// EligibleCount is the size of the eligible set on the first pass,
	// reported in the log trail
	EligibleCount int

	// Allocated is the total number of operators assigned
	Allocated int

	// Shortfall is true when fewer than the event's minimum were assigned
	Shortfall bool
}

// AllocateEvent fills one event, repeating until the minimum headcount is
// reached or no candidate qualifies. Each pass recomputes eligibility and
// ranking (counts and last-worked dates change as the run proceeds), scans
// the ranked candidates in order, and takes the first that fits:
//
//   - a candidate that would be the event's only operator on a min-1 event
//     must be able to work alone
//   - a bonded candidate is taken only when its partner is also eligible and
//     at least two slots remain open; both are allocated in the same step.
//     Otherwise the candidate is passed over for this scan, but may be
//     reconsidered on a later pass if the picture changes.
//
// A shortfall is reported, not an error: the caller logs it and moves on.
func (s *State) AllocateEvent(slot CalendarSlot) EventAllocation {
	result := EventAllocation{}
	assigned := make(map[string]bool)

	firstPass := true
	for {
		var candidates []*OperatorState
		for _, id := range s.rosterOrder {
			os := s.operators[id]
			if assigned[id] || !s.eligible(os, slot) {
				continue
			}
			candidates = append(candidates, os)
		}
		if firstPass {
			result.EligibleCount = len(candidates)
			firstPass = false
		}
		if result.Allocated >= slot.ServiceDay.MinOperators || len(candidates) == 0 {
			break
		}

		s.rank(candidates)

		var chosen, partner *OperatorState
		for _, candidate := range candidates {
			id := candidate.Operator.ID

			if partnerID, bonded := s.partnerOf[id]; bonded {
				p := s.operators[partnerID]
				openSlots := slot.ServiceDay.MaxOperators - result.Allocated
				if p != nil && !assigned[partnerID] && openSlots >= 2 && s.eligible(p, slot) {
					chosen, partner = candidate, p
					break
				}
				continue
			}

			soleAssignee := slot.ServiceDay.MinOperators == 1 && result.Allocated == 0
			if soleAssignee && !candidate.Operator.CanWorkAlone {
				continue
			}

			chosen = candidate
			break
		}

		if chosen == nil {
			break
		}

		selection := Selection{OperatorIDs: []string{chosen.Operator.ID}, Paired: partner != nil}
		s.allocate(chosen, slot, assigned)
		result.Allocated++
		if partner != nil {
			s.allocate(partner, slot, assigned)
			selection.OperatorIDs = append(selection.OperatorIDs, partner.Operator.ID)
			result.Allocated++
		}
		result.Selections = append(result.Selections, selection)
	}

	result.Shortfall = result.Allocated < slot.ServiceDay.MinOperators
	return result
}

func (s *State) allocate(os *OperatorState, slot CalendarSlot, assigned map[string]bool) {
	os.AllocationCount++
	os.MonthCount++
	os.LastWorked = slot.Date
	assigned[os.Operator.ID] = true
}
