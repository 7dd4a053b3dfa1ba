package insights

// Trend classifies a period-over-period change.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

const (
	// periodTrendThreshold is the percentage change beyond which a period
	// comparison stops reading as stable.
	periodTrendThreshold = 10.0
	// categoryChangeThreshold marks a category swing as significant.
	categoryChangeThreshold = 20.0
)

type PeriodComparison struct {
	Current   int64   `json:"current"`
	Previous  int64   `json:"previous"`
	ChangePct float64 `json:"changePct"`
	Trend     Trend   `json:"trend"`
}

// ComparePeriods reports the percentage change between two period totals. A
// zero previous total compares as 0%, or 100% when the current total is
// positive.
func ComparePeriods(current, previous int64) PeriodComparison {
	change := percentChange(current, previous)

	trend := TrendStable
	switch {
	case change > periodTrendThreshold:
		trend = TrendUp
	case change < -periodTrendThreshold:
		trend = TrendDown
	}

	return PeriodComparison{
		Current:   current,
		Previous:  previous,
		ChangePct: change,
		Trend:     trend,
	}
}

type CategoryComparison struct {
	Category    string  `json:"category"`
	Current     int64   `json:"current"`
	Previous    int64   `json:"previous"`
	ChangePct   float64 `json:"changePct"`
	Significant bool    `json:"significant"`
}

// CompareCategory reports how one category's spending moved between two
// periods, flagging swings past the significance threshold.
func CompareCategory(category string, current, previous int64) CategoryComparison {
	change := percentChange(current, previous)
	return CategoryComparison{
		Category:    category,
		Current:     current,
		Previous:    previous,
		ChangePct:   change,
		Significant: change > categoryChangeThreshold || change < -categoryChangeThreshold,
	}
}

func percentChange(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (float64(current) - float64(previous)) / float64(previous) * 100
}
