package models

import "time"

// Expense is a single recorded spend. Amounts are whole rupiah; IDR has no
// fractional unit.
type Expense struct {
	ExpenseID   string    `firestore:"expenseId" json:"expenseId"`
	Category    string    `firestore:"category" json:"category"`
	Amount      int64     `firestore:"amount" json:"amount"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `firestore:"date" json:"date"`
	// PeriodID keys the expense to the tracking period containing Date.
	PeriodID  string    `firestore:"periodId" json:"periodId"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
