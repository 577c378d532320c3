// Package dates provides the calendar-day helpers shared by the itinerary
// assembler, the ICS exporter, and the weather cache.
//
// All functions work on the wall clock of the time.Time they are given —
// an instant is never reinterpreted through UTC. Two instants land on the
// same day key iff they print the same local calendar date.
package dates

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical day-key format, e.g. "2025-06-01".
const KeyLayout = "2006-01-02"

// DayKey returns the canonical "YYYY-MM-DD" grouping key for t.
func DayKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseDayKey parses a "YYYY-MM-DD" key back into a midnight time.Time.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(KeyLayout, key)
}

// Truncate returns t with its clock zeroed, keeping the location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// EnumerateDays walks day by day from start's calendar day to end's calendar
// day, inclusive. The result is empty only when start is after end once both
// are truncated to day granularity.
func EnumerateDays(start, end time.Time) []time.Time {
	from := Truncate(start)
	to := Truncate(end)

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// FormatLegDuration renders a duration for display on an itinerary row,
// e.g. "2h 15m". Sub-minute durations render as "0m"; negative durations
// (malformed events) render the same as zero.
func FormatLegDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
