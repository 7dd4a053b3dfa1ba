package period

import "time"

const (
	currentBatchSize = 3
	lookupBatchSize  = 12
	searchBatchSize  = 24
)

// Generate derives count periods from cfg, most-recent-first. Offset i is the
// period anchored i months before (Backward) or after (Forward) the month of
// referenceDate. Exactly one period in a Backward batch of two or more
// contains the reference date.
func Generate(cfg ResetConfig, referenceDate time.Time, count int, dir Direction) []Period {
	periods := make([]Period, 0, count)
	for i := 0; i < count; i++ {
		offset := -i
		if dir == Forward {
			offset = i
		}
		periods = append(periods, periodAt(cfg, referenceDate, offset))
	}
	return periods
}

// periodAt computes the single period anchored offset months from the
// reference date's month.
func periodAt(cfg ResetConfig, referenceDate time.Time, offset int) Period {
	loc := referenceDate.Location()
	// time.Date normalizes out-of-range months, so year rollover is free.
	target := time.Date(referenceDate.Year(), referenceDate.Month()+time.Month(offset), 1, 0, 0, 0, 0, loc)

	start, end := bounds(cfg, target.Year(), target.Month(), loc)
	start = startOfDay(start)
	end = endOfDay(end)

	return Period{
		ID:        FormatPeriodID(start),
		StartDate: start,
		EndDate:   end,
		Month:     start.Format("2006-01"),
		IsActive:  !referenceDate.Before(start) && !referenceDate.After(end),
		ResetDay:  cfg.Day,
	}
}

// bounds returns the raw boundary dates of the period anchored in the given
// month. The period start and the next period's start are computed with the
// same rule, which keeps adjacent periods contiguous by construction.
func bounds(cfg ResetConfig, year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = resetBoundary(cfg, year, month, loc)
	nextStart := resetBoundary(cfg, year, month+1, loc)
	return start, nextStart.AddDate(0, 0, -1)
}

// resetBoundary is the day the period anchored in the given month begins.
// For a fixed reset day it is that day clamped into the month; for
// last-day-of-month configs it is the month's final day, so the period runs
// through the day before the next month's final day.
func resetBoundary(cfg ResetConfig, year int, month time.Month, loc *time.Location) time.Time {
	if cfg.Type == ResetLastDay {
		return LastDayOfMonth(year, month, loc)
	}
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	return time.Date(year, month, clampDay(cfg.Day, days), 0, 0, 0, 0, loc)
}

// CurrentPeriod returns the period containing today. A small backward batch
// always includes it; if none is flagged active the first generated period is
// the defined fallback.
func CurrentPeriod(cfg ResetConfig, today time.Time) Period {
	periods := Generate(cfg, today, currentBatchSize, Backward)
	for _, p := range periods {
		if p.IsActive {
			return p
		}
	}
	return periods[0]
}

// PeriodForDate returns the period containing an arbitrary date, searching a
// two-year backward window. Dates outside the window fall back to the period
// directly anchored at the date's own month, so callers always get a usable
// period.
func PeriodForDate(cfg ResetConfig, date time.Time) Period {
	for _, p := range Generate(cfg, date, searchBatchSize, Backward) {
		if Contains(p, date) {
			return p
		}
	}
	return periodAt(cfg, date, 0)
}

// PeriodByID searches a generated batch around today for a period with the
// given id. Returns nil when no generated period matches.
func PeriodByID(cfg ResetConfig, id string, today time.Time) *Period {
	for _, p := range Generate(cfg, today, lookupBatchSize, Backward) {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Contains reports whether date falls within the period, inclusive.
func Contains(p Period, date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

// TotalDays is the period's length in whole days, rounded up.
func TotalDays(p Period) int {
	return daysBetween(p.StartDate, p.EndDate) + 1
}

// DaysElapsed counts days of the period consumed as of now, including today.
// Zero before the period starts, capped at the period length after it ends.
func DaysElapsed(p Period, now time.Time) int {
	if now.Before(p.StartDate) {
		return 0
	}
	elapsed := daysBetween(p.StartDate, now) + 1
	if total := TotalDays(p); elapsed > total {
		return total
	}
	return elapsed
}

// DaysRemaining counts days left in the period as of now, including today.
// Zero once the period has ended.
func DaysRemaining(p Period, now time.Time) int {
	if now.After(p.EndDate) {
		return 0
	}
	return daysBetween(now, p.EndDate) + 1
}
