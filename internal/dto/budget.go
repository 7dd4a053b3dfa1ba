package dto

type SetBudgetRequest struct {
	// Categories maps category name to its budget in whole rupiah.
	Categories map[string]int64 `json:"categories"`
}
