package dto

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"

type CreateExpenseRequest struct {
	Category    string `json:"category"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	// Date in YYYY-MM-DD; defaults to today when empty. The containing
	// period is resolved from it.
	Date string `json:"date,omitempty"`
}

type UpdateExpenseRequest struct {
	Category    string `json:"category"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}
