package schedule

import "time"

// DateLayout is the canonical textual form for schedule dates.
const DateLayout = "2006-01-02"

// =============================================================================
// MONTH-END ARITHMETIC
// =============================================================================
// All schedule dates are day-granular UTC. EndOfMonth is the single
// normalization utility shared by window resolution and the monthly advance.

// NewDate builds a day-granular UTC date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth normalizes t to the last calendar day of its month.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// IsEndOfMonth returns true when t already falls on its month's last day.
func IsEndOfMonth(t time.Time) bool { return t.Day() == EndOfMonth(t).Day() }

// NextMonthEnd advances t by one calendar month and re-normalizes to the
// month end. The step goes through the first of the following month, so a
// cursor on the 31st lands on Feb 28/29 rather than overflowing into March.
func NextMonthEnd(t time.Time) time.Time {
	firstOfNext := NewDate(t.Year(), t.Month(), 1).AddDate(0, 1, 0)
	return EndOfMonth(firstOfNext)
}

// AddYears adds n years to t, clamping the day to the target month's length:
// Feb 29 plus one year lands on Feb 28, not Mar 1.
func AddYears(t time.Time, n int) time.Time {
	year := t.Year() + n
	day := t.Day()
	if last := EndOfMonth(NewDate(year, t.Month(), 1)).Day(); day > last {
		day = last
	}
	return NewDate(year, t.Month(), day)
}

// WholeYearsBetween returns the number of whole calendar years elapsed from
// one date to another: the year difference, minus one when the target's
// month/day has not yet reached the source's. A Feb 29 anniversary is
// therefore not complete on Feb 28 of a non-leap year.
func WholeYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
