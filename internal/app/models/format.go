package models

import (
	"fmt"
	"strings"
)

const closedLabel = "Closed"

// FormatWeeklySchedule renders a schedule as customer-facing opening
// hours keyed by English day name. A day without any range renders as
// "Closed". Hours are always two digits, minutes appear only when they
// are not zero, and seconds are never shown, so 17:00 becomes "17" and
// 13:30 becomes "13:30".
func FormatWeeklySchedule(schedule WeeklySchedule) map[string]string {
	formatted := make(map[string]string, DaysPerWeek)
	for day := Monday; day <= Sunday; day++ {
		formatted[day.String()] = formatDaySchedule(schedule.Day(day))
	}
	return formatted
}

func formatDaySchedule(schedule DaySchedule) string {
	if schedule.IsClosed() {
		return closedLabel
	}
	parts := make([]string, 0, len(schedule.Ranges()))
	for _, timeRange := range schedule.Ranges() {
		parts = append(parts, formatTimeRange(timeRange))
	}
	return strings.Join(parts, ", ")
}

func formatTimeRange(timeRange TimeRange) string {
	return formatClockTime(timeRange.Start) + "-" + formatClockTime(timeRange.End)
}

func formatClockTime(clockTime ClockTime) string {
	if clockTime.Minute() == 0 {
		return fmt.Sprintf("%02d", clockTime.Hour())
	}
	return fmt.Sprintf("%02d:%02d", clockTime.Hour(), clockTime.Minute())
}
