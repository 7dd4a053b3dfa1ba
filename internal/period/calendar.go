package period

import (
	"fmt"
	"time"
)

// DaysInMonth returns the day count of the month containing t.
func DaysInMonth(t time.Time) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// LastDayOfMonth returns midnight on the final calendar day of the given
// month.
func LastDayOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
}

// FormatPeriodID renders the canonical zero-padded YYYY-MM-DD period id.
func FormatPeriodID(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatPeriodDisplay renders a human label for a period's date range:
// "2 - 24 Oct 2025" when both dates share a month, otherwise
// "25 Sep - 24 Oct 2025".
func FormatPeriodDisplay(start, end time.Time) string {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return fmt.Sprintf("%d - %d %s %d", start.Day(), end.Day(), end.Format("Jan"), end.Year())
	}
	return fmt.Sprintf("%d %s - %d %s %d", start.Day(), start.Format("Jan"), end.Day(), end.Format("Jan"), end.Year())
}

// startOfDay truncates t to 00:00:00.000 in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay moves t to 23:59:59.999 in its own location.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// daysBetween counts calendar days from a to b, ignoring time of day.
// Negative when b is before a.
func daysBetween(a, b time.Time) int {
	a = startOfDay(a)
	b = startOfDay(b.In(a.Location()))
	return int(b.Sub(a) / (24 * time.Hour))
}

// clampDay limits a reset day to the number of days in the target month, so
// day 31 lands on Feb 28/29 rather than skipping or failing.
func clampDay(day, daysInMonth int) int {
	if day > daysInMonth {
		return daysInMonth
	}
	return day
}
