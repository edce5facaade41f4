package timewindows

import (
	"fmt"

	"delivery-hours-service/internal/app/models"
	"delivery-hours-service/internal/pkg/dto/responses"
)

// dayMarkers is one weekday's marker list split into its structural
// parts: an optional leading close that finishes the previous day's
// window, fully open/close pairs, and an optional trailing open that
// continues into the next day.
type dayMarkers struct {
	leadingClose *int
	pairs        [][2]int
	trailingOpen *int
}

// ToWeeklySchedule builds a schedule from the wire format served by the
// venue and courier services: per weekday, a chronological list of
// markers carrying either an open or a close second-of-day. A window may
// close on the following day; the trailing open is then paired with the
// next day's leading close, with Sunday wrapping onto Monday. Windows
// spanning a full day or more cannot be represented and are rejected.
func ToWeeklySchedule(markersByDay map[string][]responses.TimeWindowMarker) (models.WeeklySchedule, error) {
	var week [models.DaysPerWeek]dayMarkers
	for dayName, markers := range markersByDay {
		day, err := models.ParseWeekday(dayName)
		if err != nil {
			return models.WeeklySchedule{}, err
		}
		parsed, err := parseDayMarkers(day, markers)
		if err != nil {
			return models.WeeklySchedule{}, err
		}
		week[day] = parsed
	}

	overnight, err := stitchOvernightWindows(week)
	if err != nil {
		return models.WeeklySchedule{}, err
	}

	days := make(map[models.Weekday]models.DaySchedule, models.DaysPerWeek)
	for day := models.Monday; day <= models.Sunday; day++ {
		ranges := make([]models.TimeRange, 0, len(week[day].pairs)+1)
		for _, pair := range week[day].pairs {
			timeRange, err := buildTimeRange(day, pair[0], pair[1])
			if err != nil {
				return models.WeeklySchedule{}, err
			}
			ranges = append(ranges, timeRange)
		}
		if overnightRange, ok := overnight[day]; ok {
			ranges = append(ranges, overnightRange)
		}
		days[day] = models.NewDaySchedule(ranges)
	}
	return models.NewWeeklySchedule(days)
}

func parseDayMarkers(day models.Weekday, markers []responses.TimeWindowMarker) (dayMarkers, error) {
	var parsed dayMarkers
	var pendingOpen *int
	previousValue := 0
	hasPrevious := false

	for i, marker := range markers {
		if (marker.Open == nil) == (marker.Close == nil) {
			return dayMarkers{}, fmt.Errorf("%s: marker %d must carry exactly one of open or close", day, i)
		}

		value := 0
		if marker.Open != nil {
			value = *marker.Open
		} else {
			value = *marker.Close
		}
		if hasPrevious && value < previousValue {
			return dayMarkers{}, fmt.Errorf("%s: markers are not in chronological order", day)
		}
		previousValue = value
		hasPrevious = true

		if marker.Open != nil {
			if pendingOpen != nil {
				return dayMarkers{}, fmt.Errorf("%s: open marker at %d follows an unclosed open", day, value)
			}
			openValue := value
			pendingOpen = &openValue
			continue
		}

		if pendingOpen == nil {
			if i != 0 {
				return dayMarkers{}, fmt.Errorf("%s: close marker at %d has no matching open", day, value)
			}
			closeValue := value
			parsed.leadingClose = &closeValue
			continue
		}
		parsed.pairs = append(parsed.pairs, [2]int{*pendingOpen, value})
		pendingOpen = nil
	}

	parsed.trailingOpen = pendingOpen
	return parsed, nil
}

// stitchOvernightWindows pairs each day's trailing open with the next
// day's leading close. Every leading close has to be consumed this way;
// one left over means the wire data opened and closed out of step.
func stitchOvernightWindows(week [models.DaysPerWeek]dayMarkers) (map[models.Weekday]models.TimeRange, error) {
	overnight := make(map[models.Weekday]models.TimeRange)
	var consumedClose [models.DaysPerWeek]bool

	for day := models.Monday; day <= models.Sunday; day++ {
		openValue := week[day].trailingOpen
		if openValue == nil {
			continue
		}
		next := day.Next()
		closeValue := week[next].leadingClose
		if closeValue == nil {
			return nil, fmt.Errorf("%s: open marker at %d has no matching close", day, *openValue)
		}

		openTime, err := models.NewClockTime(*openValue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day, err)
		}
		closeTime, err := models.NewClockTime(*closeValue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", next, err)
		}
		if !closeTime.Before(openTime) {
			return nil, fmt.Errorf("%s: window opening at %d would span a full day or more", day, *openValue)
		}
		timeRange, err := models.NewTimeRange(openTime, closeTime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day, err)
		}
		overnight[day] = timeRange
		consumedClose[next] = true
	}

	for day := models.Monday; day <= models.Sunday; day++ {
		if week[day].leadingClose != nil && !consumedClose[day] {
			return nil, fmt.Errorf("%s: close marker at %d has no matching open", day, *week[day].leadingClose)
		}
	}
	return overnight, nil
}

func buildTimeRange(day models.Weekday, startSeconds, endSeconds int) (models.TimeRange, error) {
	start, err := models.NewClockTime(startSeconds)
	if err != nil {
		return models.TimeRange{}, fmt.Errorf("%s: %w", day, err)
	}
	end, err := models.NewClockTime(endSeconds)
	if err != nil {
		return models.TimeRange{}, fmt.Errorf("%s: %w", day, err)
	}
	timeRange, err := models.NewTimeRange(start, end)
	if err != nil {
		return models.TimeRange{}, fmt.Errorf("%s: %w", day, err)
	}
	return timeRange, nil
}
