package models

import "sort"

// DefaultMinimumDeliveryDurationSeconds is the shortest delivery window
// worth offering to a customer: 30 minutes.
const DefaultMinimumDeliveryDurationSeconds = 1800

// anchoredInterval is a half-open [start, end) slice of a single calendar
// day, in seconds since that day's midnight. end may reach SecondsPerDay
// when the interval runs up to the following midnight.
type anchoredInterval struct {
	start int
	end   int
}

// anchorWeek flattens a schedule so that every interval lies inside one
// calendar day. An overnight range is split at midnight: the late part
// stays on its own day and the early part lands on the next day, with
// Sunday wrapping onto Monday.
func anchorWeek(schedule WeeklySchedule) [DaysPerWeek][]anchoredInterval {
	var week [DaysPerWeek][]anchoredInterval
	for day := Monday; day <= Sunday; day++ {
		for _, timeRange := range schedule.Day(day).Ranges() {
			if !timeRange.IsOvernight() {
				week[day] = append(week[day], anchoredInterval{start: timeRange.Start.Seconds(), end: timeRange.End.Seconds()})
				continue
			}
			week[day] = append(week[day], anchoredInterval{start: timeRange.Start.Seconds(), end: SecondsPerDay})
			if timeRange.End.Seconds() > 0 {
				next := day.Next()
				week[next] = append(week[next], anchoredInterval{start: 0, end: timeRange.End.Seconds()})
			}
		}
	}
	return week
}

// Intersect computes the weekly windows during which both the venue and
// the courier are available. Overlaps shorter than minDurationSeconds are
// discarded before windows crossing midnight are reassembled, so each
// piece of an overnight window has to clear the minimum on its own. A
// minDurationSeconds of zero or below keeps every positive overlap.
func Intersect(venue, courier WeeklySchedule, minDurationSeconds int) (WeeklySchedule, error) {
	venueWeek := anchorWeek(venue)
	courierWeek := anchorWeek(courier)

	var overlaps [DaysPerWeek][]anchoredInterval
	for day := Monday; day <= Sunday; day++ {
		for _, venueInterval := range venueWeek[day] {
			for _, courierInterval := range courierWeek[day] {
				overlap := anchoredInterval{
					start: max(venueInterval.start, courierInterval.start),
					end:   min(venueInterval.end, courierInterval.end),
				}
				if overlap.start >= overlap.end {
					continue
				}
				if overlap.end-overlap.start < minDurationSeconds {
					continue
				}
				overlaps[day] = append(overlaps[day], overlap)
			}
		}
		sort.Slice(overlaps[day], func(i, j int) bool {
			return overlaps[day][i].start < overlaps[day][j].start
		})
	}

	// An interval running up to midnight rejoins the next day's leading
	// interval into a single overnight range. The rejoined range must
	// still fit within 24 hours; when the two pieces would cover a full
	// day or more they stay split at the midnight boundary.
	var canMerge [DaysPerWeek]bool
	var consumedLeading [DaysPerWeek]bool
	for day := Monday; day <= Sunday; day++ {
		dayOverlaps := overlaps[day]
		if len(dayOverlaps) == 0 {
			continue
		}
		lastOverlap := dayOverlaps[len(dayOverlaps)-1]
		if lastOverlap.end != SecondsPerDay {
			continue
		}
		nextOverlaps := overlaps[day.Next()]
		if len(nextOverlaps) == 0 || nextOverlaps[0].start != 0 {
			continue
		}
		if nextOverlaps[0].end >= lastOverlap.start {
			continue
		}
		canMerge[day] = true
		consumedLeading[day.Next()] = true
	}

	days := make(map[Weekday]DaySchedule, DaysPerWeek)
	for day := Monday; day <= Sunday; day++ {
		dayOverlaps := overlaps[day]
		ranges := make([]TimeRange, 0, len(dayOverlaps))
		for i, overlap := range dayOverlaps {
			if i == 0 && consumedLeading[day] {
				continue
			}
			endSeconds := overlap.end
			if endSeconds == SecondsPerDay {
				endSeconds = 0
				if canMerge[day] && i == len(dayOverlaps)-1 {
					endSeconds = overlaps[day.Next()][0].end
				}
			}
			start, err := NewClockTime(overlap.start)
			if err != nil {
				return WeeklySchedule{}, err
			}
			end, err := NewClockTime(endSeconds)
			if err != nil {
				return WeeklySchedule{}, err
			}
			timeRange, err := NewTimeRange(start, end)
			if err != nil {
				return WeeklySchedule{}, err
			}
			ranges = append(ranges, timeRange)
		}
		days[day] = NewDaySchedule(ranges)
	}
	return NewWeeklySchedule(days)
}
