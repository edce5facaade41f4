package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeRange(t *testing.T) {
	t.Run("accepts a same-day range", func(t *testing.T) {
		timeRange := mustTimeRange(t, 9*3600, 17*3600)

		assert.False(t, timeRange.IsOvernight(), "09:00 to 17:00 should not be overnight")
		assert.Equal(t, 8*3600, timeRange.Duration(), "duration should be eight hours")
	})

	t.Run("accepts an overnight range", func(t *testing.T) {
		timeRange := mustTimeRange(t, 22*3600, 2*3600)

		assert.True(t, timeRange.IsOvernight(), "22:00 to 02:00 should be overnight")
		assert.Equal(t, 4*3600, timeRange.Duration(), "duration should be four hours")
	})

	t.Run("accepts an overnight range ending at midnight", func(t *testing.T) {
		timeRange := mustTimeRange(t, 17*3600, 0)

		assert.True(t, timeRange.IsOvernight(), "17:00 to midnight should be overnight")
		assert.Equal(t, 7*3600, timeRange.Duration(), "duration should be seven hours")
	})

	t.Run("rejects equal start and end", func(t *testing.T) {
		moment, err := NewClockTime(12 * 3600)
		assert.NoError(t, err, "noon should be a valid clock time")

		_, err = NewTimeRange(moment, moment)

		assert.Error(t, err, "a range with equal start and end should be rejected")
		assert.True(t, errors.Is(err, ErrInvalidTimeRangeDuration), "error should wrap ErrInvalidTimeRangeDuration")
	})
}

func TestTimeRangeDurationBounds(t *testing.T) {
	t.Run("shortest representable range", func(t *testing.T) {
		timeRange := mustTimeRange(t, 12*3600, 12*3600+1)

		assert.Equal(t, 1, timeRange.Duration(), "one-second range should last one second")
	})

	t.Run("longest representable range", func(t *testing.T) {
		timeRange := mustTimeRange(t, 1, 0)

		assert.True(t, timeRange.IsOvernight(), "00:00:01 to midnight should be overnight")
		assert.Equal(t, SecondsPerDay-1, timeRange.Duration(), "duration should be one second short of a day")
	})
}

func TestTimeRangeOverlapsSameDay(t *testing.T) {
	t.Run("detects a partial overlap", func(t *testing.T) {
		first := mustTimeRange(t, 9*3600, 17*3600)
		second := mustTimeRange(t, 14*3600, 21*3600)

		assert.True(t, first.OverlapsSameDay(second), "09-17 and 14-21 should overlap")
		assert.True(t, second.OverlapsSameDay(first), "overlap should be symmetric")
	})

	t.Run("detects a contained range", func(t *testing.T) {
		outer := mustTimeRange(t, 8*3600, 20*3600)
		inner := mustTimeRange(t, 10*3600, 12*3600)

		assert.True(t, outer.OverlapsSameDay(inner), "a contained range should overlap")
	})

	t.Run("touching ranges do not overlap", func(t *testing.T) {
		first := mustTimeRange(t, 9*3600, 12*3600)
		second := mustTimeRange(t, 12*3600, 15*3600)

		assert.False(t, first.OverlapsSameDay(second), "a range ending when the other starts should not overlap")
	})

	t.Run("disjoint ranges do not overlap", func(t *testing.T) {
		first := mustTimeRange(t, 9*3600, 11*3600)
		second := mustTimeRange(t, 13*3600, 15*3600)

		assert.False(t, first.OverlapsSameDay(second), "disjoint ranges should not overlap")
	})
}
