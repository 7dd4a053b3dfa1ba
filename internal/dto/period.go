package dto

import (
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
)

// PeriodData bundles everything loaded for one period: its expenses, budget
// and the derived totals. This is the unit the Redis cache stores.
type PeriodData struct {
	PeriodID    string           `json:"periodId"`
	Expenses    []models.Expense `json:"expenses"`
	Budget      *models.Budget   `json:"budget"`
	TotalSpent  int64            `json:"totalSpent"`
	TotalBudget int64            `json:"totalBudget"`
}

// PeriodView decorates a generated period with its display label.
type PeriodView struct {
	period.Period
	Display string `json:"display"`
}
