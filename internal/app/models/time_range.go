package models

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeRangeDuration = errors.New("time range must have a positive duration shorter than a full day")

// TimeRange is a half-open window [Start, End) inside a week day. When
// Start is earlier than End the range lies within one day. When Start is
// later than End the range crosses midnight into the following day. Start
// equal to End is rejected: it would be ambiguous between an empty window
// and a full 24 hours, and neither occurs in schedule data.
type TimeRange struct {
	Start ClockTime
	End   ClockTime
}

func NewTimeRange(start, end ClockTime) (TimeRange, error) {
	if start == end {
		return TimeRange{}, fmt.Errorf("%w: start and end are both %d", ErrInvalidTimeRangeDuration, start.Seconds())
	}
	return TimeRange{Start: start, End: end}, nil
}

// IsOvernight reports whether the range crosses midnight into the next day.
func (r TimeRange) IsOvernight() bool {
	return r.Start.After(r.End)
}

// Duration returns the length of the range in seconds. For an overnight
// range the portion before midnight and the portion after midnight are
// summed.
func (r TimeRange) Duration() int {
	if r.IsOvernight() {
		return SecondsPerDay - r.Start.Seconds() + r.End.Seconds()
	}
	return r.End.Sub(r.Start)
}

// OverlapsSameDay reports whether two same-day ranges share any time.
// Ranges are half-open, so a range ending exactly when the other starts
// does not overlap. The result is undefined for overnight ranges, which
// must be split at midnight before being compared.
func (r TimeRange) OverlapsSameDay(other TimeRange) bool {
	start := r.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := r.End
	if other.End.Before(end) {
		end = other.End
	}
	return start.Before(end)
}
