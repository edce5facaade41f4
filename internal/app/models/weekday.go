package models

import (
	"fmt"
	"strings"
)

const DaysPerWeek = 7

// Weekday indexes a day of the week starting from Monday. The zero value
// is Monday so that a [DaysPerWeek]DaySchedule array lines up with the
// calendar week used by venue and courier schedules.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [DaysPerWeek]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Weekday) String() string {
	if d < 0 || d >= DaysPerWeek {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Next returns the following day, wrapping Sunday back to Monday.
func (d Weekday) Next() Weekday {
	return (d + 1) % DaysPerWeek
}

// ParseWeekday maps a case-insensitive English day name to its Weekday.
func ParseWeekday(name string) (Weekday, error) {
	lowered := strings.ToLower(name)
	for i, candidate := range weekdayNames {
		if strings.ToLower(candidate) == lowered {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day name %q", ErrIncompatibleDays, name)
}
