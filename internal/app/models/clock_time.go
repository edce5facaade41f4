package models

import (
	"errors"
	"fmt"
)

const SecondsPerDay = 86400

var ErrClockTimeOutOfRange = errors.New("clock time must be within [0, 86399] seconds")

// ClockTime is a moment within a single day, counted in seconds since
// midnight. It carries no date and no time zone.
type ClockTime int

func NewClockTime(seconds int) (ClockTime, error) {
	if seconds < 0 || seconds >= SecondsPerDay {
		return 0, fmt.Errorf("%w: got %d", ErrClockTimeOutOfRange, seconds)
	}
	return ClockTime(seconds), nil
}

func (t ClockTime) Seconds() int {
	return int(t)
}

func (t ClockTime) Hour() int {
	return int(t) / 3600
}

func (t ClockTime) Minute() int {
	return int(t) % 3600 / 60
}

func (t ClockTime) Before(other ClockTime) bool {
	return t < other
}

func (t ClockTime) After(other ClockTime) bool {
	return t > other
}

// Sub returns t minus other in seconds. The result is signed and always
// within (-SecondsPerDay, SecondsPerDay).
func (t ClockTime) Sub(other ClockTime) int {
	return int(t) - int(other)
}
