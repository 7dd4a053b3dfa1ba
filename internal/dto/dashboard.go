package dto

import (
	"github.com/tegarerputra/DuitTrack-sub000/internal/insights"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
)

// DashboardSummary is the single payload the home screen renders from.
type DashboardSummary struct {
	Period        period.Period               `json:"period"`
	Display       string                      `json:"display"`
	TotalSpent    int64                       `json:"totalSpent"`
	TotalBudget   int64                       `json:"totalBudget"`
	DaysElapsed   int                         `json:"daysElapsed"`
	DaysRemaining int                         `json:"daysRemaining"`
	TotalDays     int                         `json:"totalDays"`
	Velocity      insights.VelocityAnalysis   `json:"velocity"`
	BudgetStatus  insights.BudgetStatus       `json:"budgetStatus"`
	Categories    []insights.CategoryAnalysis `json:"categories"`
}
