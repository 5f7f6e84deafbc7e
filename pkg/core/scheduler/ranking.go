package scheduler

import "sort"

// rank orders candidates ascending by running allocation count, so
// under-worked operators come first. Ties are broken by a uniformly random
// ordering: candidates are shuffled before the stable sort, re-rolled on
// every call so no operator is systematically favoured among equals.
func (s *State) rank(candidates []*OperatorState) {
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AllocationCount < candidates[j].AllocationCount
	})
}
