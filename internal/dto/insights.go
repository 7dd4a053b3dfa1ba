package dto

import "github.com/tegarerputra/DuitTrack-sub000/internal/insights"

// PeriodInsights aggregates every analysis for a single period.
type PeriodInsights struct {
	PeriodID     string                      `json:"periodId"`
	DaysElapsed  int                         `json:"daysElapsed"`
	TotalDays    int                         `json:"totalDays"`
	Velocity     insights.VelocityAnalysis   `json:"velocity"`
	BudgetStatus insights.BudgetStatus       `json:"budgetStatus"`
	Categories   []insights.CategoryAnalysis `json:"categories"`
	Patterns     insights.PatternAnalysis    `json:"patterns"`
}

// PeriodComparisonResult compares a period with the one before it.
type PeriodComparisonResult struct {
	PeriodID         string                        `json:"periodId"`
	PreviousPeriodID string                        `json:"previousPeriodId"`
	Overall          insights.PeriodComparison     `json:"overall"`
	Categories       []insights.CategoryComparison `json:"categories"`
}
