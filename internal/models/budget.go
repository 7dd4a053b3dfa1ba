package models

import "time"

// Budget holds one period's per-category budget amounts, keyed by period id.
type Budget struct {
	PeriodID   string           `firestore:"periodId" json:"periodId"`
	Categories map[string]int64 `firestore:"categories" json:"categories"`
	// TotalBudget is the sum of category amounts, denormalized for display.
	TotalBudget int64     `firestore:"totalBudget" json:"totalBudget"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
