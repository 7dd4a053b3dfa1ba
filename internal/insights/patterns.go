package insights

import "time"

// ExpenseEntry is the caller-supplied snapshot of one expense, the only view
// of expense data the pattern analysis needs.
type ExpenseEntry struct {
	Amount int64
	Date   time.Time
}

// weekendShareThreshold marks weekend-heavy spending: more than half of the
// period's total.
const weekendShareThreshold = 50.0

type PatternAnalysis struct {
	// WeekendSharePct is the share of total spending that fell on Saturday
	// or Sunday.
	WeekendSharePct float64 `json:"weekendSharePct"`
	WeekendHeavy    bool    `json:"weekendHeavy"`
	// TopDay is the weekday with the highest spending total, empty when
	// there are no expenses.
	TopDay               string `json:"topDay"`
	TopDayTotal          int64  `json:"topDayTotal"`
	DaysSinceLastExpense int    `json:"daysSinceLastExpense"`
}

// AnalyzePatterns derives day-of-week spending habits from a period's
// expenses. An empty snapshot yields a zero analysis, never an error.
func AnalyzePatterns(expenses []ExpenseEntry, now time.Time) PatternAnalysis {
	if len(expenses) == 0 {
		return PatternAnalysis{}
	}

	var total, weekend int64
	var byWeekday [7]int64
	var last time.Time
	for _, e := range expenses {
		total += e.Amount
		wd := e.Date.Weekday()
		byWeekday[wd] += e.Amount
		if wd == time.Saturday || wd == time.Sunday {
			weekend += e.Amount
		}
		if e.Date.After(last) {
			last = e.Date
		}
	}

	top := time.Sunday
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		if byWeekday[wd] > byWeekday[top] {
			top = wd
		}
	}

	share := ratio(float64(weekend), float64(total)) * 100
	sinceLast := daysSince(last, now)

	return PatternAnalysis{
		WeekendSharePct:      share,
		WeekendHeavy:         share > weekendShareThreshold,
		TopDay:               top.String(),
		TopDayTotal:          byWeekday[top],
		DaysSinceLastExpense: sinceLast,
	}
}

func daysSince(t, now time.Time) int {
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, t.Location())
	days := int(b.Sub(a) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}
