// Package period holds the date arithmetic shared by listings, the booking form and the bookings view.
package period

import (
	"time"
)

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusCurrent  Status = "current"
	StatusPast     Status = "past"
)

// Cancelable reports whether a booking in this status may still be cancelled.
func (s Status) Cancelable() bool {
	return s == StatusUpcoming
}

const dayMillis = int64(24 * time.Hour / time.Millisecond)

// DaysBetween returns the ceiling of the absolute span between start and end in days.
func DaysBetween(start, end time.Time) int {
	diff := end.Sub(start).Milliseconds()
	if diff < 0 {
		diff = -diff
	}
	days := diff / dayMillis
	if diff%dayMillis != 0 {
		days++
	}
	return int(days)
}

// BookingStatus classifies a booking relative to now.
// A booking starting exactly at now is not upcoming.
func BookingStatus(start, end, now time.Time) Status {
	if start.After(now) {
		return StatusUpcoming
	}
	if end.Before(now) {
		return StatusPast
	}
	return StatusCurrent
}
