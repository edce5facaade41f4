package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustTimeRange(t *testing.T, startSeconds, endSeconds int) TimeRange {
	t.Helper()
	start, err := NewClockTime(startSeconds)
	assert.NoError(t, err, "start clock time should be valid")
	end, err := NewClockTime(endSeconds)
	assert.NoError(t, err, "end clock time should be valid")
	timeRange, err := NewTimeRange(start, end)
	assert.NoError(t, err, "time range should be valid")
	return timeRange
}

func mustWeeklySchedule(t *testing.T, days map[Weekday][]TimeRange) WeeklySchedule {
	t.Helper()
	scheduleDays := make(map[Weekday]DaySchedule, DaysPerWeek)
	for day := Monday; day <= Sunday; day++ {
		scheduleDays[day] = NewDaySchedule(days[day])
	}
	schedule, err := NewWeeklySchedule(scheduleDays)
	assert.NoError(t, err, "weekly schedule should be valid")
	return schedule
}

func assertWeek(t *testing.T, schedule WeeklySchedule, expected map[Weekday][]TimeRange) {
	t.Helper()
	for day := Monday; day <= Sunday; day++ {
		expectedRanges, ok := expected[day]
		if !ok {
			assert.True(t, schedule.Day(day).IsClosed(), "%s should be closed", day)
			continue
		}
		assert.Equal(t, expectedRanges, schedule.Day(day).Ranges(), "%s should carry the expected ranges", day)
	}
}

func TestIntersect(t *testing.T) {
	t.Run("same-day windows intersect", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 13*3600, 20*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 14*3600, 21*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 14*3600, 20*3600)},
		})
	})

	t.Run("touching windows yield no delivery hours", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 9*3600, 12*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 12*3600, 15*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assert.True(t, result.IsEntirelyClosed(), "windows that only touch should produce a closed week")
	})

	t.Run("overlap below the minimum duration is dropped", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 14*3600+31*60, 15*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 14*3600, 15*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assert.True(t, result.IsEntirelyClosed(), "a 29-minute overlap should be dropped")
	})

	t.Run("overlap exactly at the minimum duration is kept", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 13*3600, 13*3600+30*60)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 13*3600, 14*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 13*3600, 13*3600+30*60)},
		})
	})

	t.Run("overnight windows split at midnight are reassembled", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {
				mustTimeRange(t, 13*3600+30*60, 15*3600),
				mustTimeRange(t, 16*3600, 1*3600),
			},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {
				mustTimeRange(t, 9*3600, 14*3600),
				mustTimeRange(t, 17*3600, 30*60),
			},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday: {
				mustTimeRange(t, 13*3600+30*60, 14*3600),
				mustTimeRange(t, 17*3600, 30*60),
			},
		})
	})

	t.Run("overnight windows intersect across midnight", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 20*3600, 2*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 18*3600, 3*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 20*3600, 2*3600)},
		})
	})

	t.Run("an entirely closed courier closes the whole week", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Monday: {mustTimeRange(t, 9*3600, 17*3600)},
			Friday: {mustTimeRange(t, 9*3600, 17*3600)},
		})

		result, err := Intersect(venue, EmptyWeeklySchedule(), DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assert.True(t, result.IsEntirelyClosed(), "no courier availability should close every day")
	})

	t.Run("Sunday overnight wraps onto Monday", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Monday: {mustTimeRange(t, 9*3600, 12*3600)},
			Sunday: {mustTimeRange(t, 22*3600, 2*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Monday: {mustTimeRange(t, 10*3600, 13*3600)},
			Sunday: {mustTimeRange(t, 21*3600, 3*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Monday: {mustTimeRange(t, 10*3600, 12*3600)},
			Sunday: {mustTimeRange(t, 22*3600, 2*3600)},
		})
	})

	t.Run("overnight window ending at midnight keeps a zero end", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 16*3600, 1*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 17*3600, 0)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 17*3600, 0)},
		})
	})

	t.Run("adjacent results within a day are not merged", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {
				mustTimeRange(t, 9*3600, 12*3600),
				mustTimeRange(t, 12*3600, 15*3600),
			},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 9*3600, 15*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday: {
				mustTimeRange(t, 9*3600, 12*3600),
				mustTimeRange(t, 12*3600, 15*3600),
			},
		})
	})

	t.Run("windows covering a full day stay split at midnight", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday:   {mustTimeRange(t, 19*3600, 0)},
			Wednesday: {mustTimeRange(t, 0, 22*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday:   {mustTimeRange(t, 19*3600, 0)},
			Wednesday: {mustTimeRange(t, 0, 22*3600)},
		})

		result, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday:   {mustTimeRange(t, 19*3600, 0)},
			Wednesday: {mustTimeRange(t, 0, 22*3600)},
		})
	})

	t.Run("intersection is commutative", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {
				mustTimeRange(t, 13*3600+30*60, 15*3600),
				mustTimeRange(t, 16*3600, 1*3600),
			},
			Saturday: {mustTimeRange(t, 10*3600, 22*3600)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {
				mustTimeRange(t, 9*3600, 14*3600),
				mustTimeRange(t, 17*3600, 30*60),
			},
			Saturday: {mustTimeRange(t, 8*3600, 20*3600)},
		})

		venueFirst, err := Intersect(venue, courier, DefaultMinimumDeliveryDurationSeconds)
		assert.NoError(t, err, "intersection should succeed")
		courierFirst, err := Intersect(courier, venue, DefaultMinimumDeliveryDurationSeconds)
		assert.NoError(t, err, "intersection should succeed")

		assert.Equal(t, venueFirst, courierFirst, "swapping the operands should not change the result")
	})

	t.Run("a zero minimum keeps every positive overlap", func(t *testing.T) {
		venue := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 12*3600, 12*3600+60)},
		})
		courier := mustWeeklySchedule(t, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 12*3600, 13*3600)},
		})

		result, err := Intersect(venue, courier, 0)

		assert.NoError(t, err, "intersection should succeed")
		assertWeek(t, result, map[Weekday][]TimeRange{
			Tuesday: {mustTimeRange(t, 12*3600, 12*3600+60)},
		})
	})
}
