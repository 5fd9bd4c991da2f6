// Package dates centralizes day-granularity date math. Day-difference
// calculations are timezone sensitive; every call site must truncate both sides
// to local midnight through this package instead of re-deriving the logic.
package dates

import (
	"math"
	"time"
)

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from 'from' to 'to', both
// normalized to local midnight. The quotient is rounded, not truncated: a DST
// transition makes a calendar day 23 or 25 hours long and truncation would
// drop a day across spring-forward. Negative results are floored at zero; a
// payment dated in the future never yields a negative day count.
func DaysBetween(from, to time.Time) int {
	days := int(math.Round(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// AfterDay reports whether a falls on a strictly later calendar day than b.
// Both sides are truncated to midnight first, so a timestamp late on the same
// day as b does not count as after it.
func AfterDay(a, b time.Time) bool {
	return StartOfDay(a).After(StartOfDay(b))
}
