package insights

// CategoryStatus grades a category's budget consumption.
type CategoryStatus string

const (
	CategoryOver    CategoryStatus = "over"
	CategoryDanger  CategoryStatus = "danger"
	CategoryWarning CategoryStatus = "warning"
	CategorySafe    CategoryStatus = "safe"
)

type CategoryAnalysis struct {
	Category   string         `json:"category"`
	Budget     int64          `json:"budget"`
	Spent      int64          `json:"spent"`
	Remaining  int64          `json:"remaining"`
	Percentage float64        `json:"percentage"`
	Status     CategoryStatus `json:"status"`
}

// AnalyzeCategory grades spending against a single category budget. A zero
// budget reads as 0% consumed.
func AnalyzeCategory(category string, budget, spent int64) CategoryAnalysis {
	percentage := ratio(float64(spent), float64(budget)) * 100

	status := CategorySafe
	switch {
	case percentage >= 100:
		status = CategoryOver
	case percentage >= 90:
		status = CategoryDanger
	case percentage >= 75:
		status = CategoryWarning
	}

	return CategoryAnalysis{
		Category:   category,
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget - spent,
		Percentage: percentage,
		Status:     status,
	}
}
