package models

import (
	"errors"
	"fmt"
)

var ErrIncompatibleDays = errors.New("weekly schedule requires exactly the seven week days")

// WeeklySchedule holds one DaySchedule per week day, indexed from Monday.
// The zero value is a week with every day closed.
type WeeklySchedule struct {
	days [DaysPerWeek]DaySchedule
}

// NewWeeklySchedule builds a schedule from a map keyed by week day. The
// map must contain exactly the seven days Monday through Sunday; a missing
// or duplicated day surfaces as ErrIncompatibleDays.
func NewWeeklySchedule(days map[Weekday]DaySchedule) (WeeklySchedule, error) {
	if len(days) != DaysPerWeek {
		return WeeklySchedule{}, fmt.Errorf("%w: got %d days", ErrIncompatibleDays, len(days))
	}
	var schedule WeeklySchedule
	for day, daySchedule := range days {
		if day < 0 || day >= DaysPerWeek {
			return WeeklySchedule{}, fmt.Errorf("%w: day index %d out of range", ErrIncompatibleDays, int(day))
		}
		schedule.days[day] = daySchedule
	}
	return schedule, nil
}

// EmptyWeeklySchedule returns a week with every day closed.
func EmptyWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{}
}

func (s WeeklySchedule) Day(day Weekday) DaySchedule {
	return s.days[day]
}

func (s WeeklySchedule) IsEntirelyClosed() bool {
	for _, day := range s.days {
		if !day.IsClosed() {
			return false
		}
	}
	return true
}
