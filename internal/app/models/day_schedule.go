package models

import "sort"

// DaySchedule is the set of time ranges attached to one week day, kept
// sorted by start time. Ranges are expected not to overlap each other;
// that property comes from the upstream schedule sources and is preserved
// by every operation in this package.
type DaySchedule struct {
	ranges []TimeRange
}

func NewDaySchedule(ranges []TimeRange) DaySchedule {
	if len(ranges) == 0 {
		return DaySchedule{}
	}
	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return DaySchedule{ranges: sorted}
}

// Ranges returns the schedule's time ranges ordered by start time. The
// slice is owned by the schedule and must not be modified.
func (s DaySchedule) Ranges() []TimeRange {
	return s.ranges
}

func (s DaySchedule) IsClosed() bool {
	return len(s.ranges) == 0
}
