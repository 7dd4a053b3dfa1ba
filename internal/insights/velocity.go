package insights

// VelocityStatus classifies spending pace against time elapsed.
type VelocityStatus string

const (
	StatusTooFast VelocityStatus = "too-fast"
	StatusOnTrack VelocityStatus = "on-track"
	StatusSlow    VelocityStatus = "slow"
)

// velocityTolerance is how far spent progress may drift from time progress
// before the pace stops counting as on-track.
const velocityTolerance = 0.15

// VelocityAnalysis projects period-end outcomes from pace so far. Monetary
// fields are whole rupiah (floored, IDR has no fractional unit).
type VelocityAnalysis struct {
	TimeProgress  float64        `json:"timeProgress"`
	SpentProgress float64        `json:"spentProgress"`
	Difference    float64        `json:"difference"`
	Status        VelocityStatus `json:"status"`
	// DailyRate is the average spend per elapsed day.
	DailyRate int64 `json:"dailyRate"`
	// DaysToExhaustBudget is how many days the full budget lasts at the
	// current daily rate. Zero when there is no spending yet.
	DaysToExhaustBudget int `json:"daysToExhaustBudget"`
	// RecommendedDaily is the spend per remaining day that lands exactly on
	// budget.
	RecommendedDaily int64 `json:"recommendedDaily"`
	// ProjectedSavings is the expected leftover when pace is slow, floored
	// at zero.
	ProjectedSavings int64 `json:"projectedSavings"`
	// ProjectedTotal extrapolates current spending to the period's end.
	ProjectedTotal int64 `json:"projectedTotal"`
}

// SpendingVelocity compares budget consumed against time elapsed. Degenerate
// inputs (zero budget, zero elapsed days) yield zeros, never errors or NaN.
func SpendingVelocity(totalBudget, totalSpent int64, daysElapsed, totalDays int) VelocityAnalysis {
	timeProgress := ratio(float64(daysElapsed), float64(totalDays))
	spentProgress := ratio(float64(totalSpent), float64(totalBudget))
	difference := spentProgress - timeProgress

	status := StatusOnTrack
	switch {
	case difference > velocityTolerance:
		status = StatusTooFast
	case difference < -velocityTolerance:
		status = StatusSlow
	}

	a := VelocityAnalysis{
		TimeProgress:  timeProgress,
		SpentProgress: spentProgress,
		Difference:    difference,
		Status:        status,
	}

	dailyRate := ratio(float64(totalSpent), float64(daysElapsed))
	a.DailyRate = int64(dailyRate)
	a.DaysToExhaustBudget = int(ratio(float64(totalBudget), dailyRate))
	a.ProjectedTotal = int64(ratio(float64(totalSpent), timeProgress))

	remainingDays := totalDays - daysElapsed
	remainingBudget := totalBudget - totalSpent
	if remainingBudget < 0 {
		remainingBudget = 0
	}
	a.RecommendedDaily = int64(ratio(float64(remainingBudget), float64(remainingDays)))

	if status == StatusSlow {
		if savings := totalBudget - a.ProjectedTotal; savings > 0 {
			a.ProjectedSavings = savings
		}
	}
	return a
}

// BudgetState is the 3-tier display label derived from pace.
type BudgetState string

const (
	BudgetSafe  BudgetState = "safe"
	BudgetWatch BudgetState = "watch"
	BudgetOver  BudgetState = "over"
)

// BudgetStatus carries the pace label plus the percentage-point buffer still
// available (negative when overspending ahead of schedule).
type BudgetStatus struct {
	State BudgetState `json:"state"`
	// BufferPoints is timeProgress minus spentProgress in percentage points.
	BufferPoints float64 `json:"bufferPoints"`
}

// CalculateBudgetStatus maps the same time-vs-spend comparison as
// SpendingVelocity onto a coarser label for dashboard display.
func CalculateBudgetStatus(totalBudget, totalSpent int64, daysElapsed, totalDays int) BudgetStatus {
	timeProgress := ratio(float64(daysElapsed), float64(totalDays))
	spentProgress := ratio(float64(totalSpent), float64(totalBudget))
	difference := spentProgress - timeProgress

	state := BudgetSafe
	switch {
	case difference > velocityTolerance:
		state = BudgetOver
	case difference > 0:
		state = BudgetWatch
	}
	return BudgetStatus{
		State:        state,
		BufferPoints: (timeProgress - spentProgress) * 100,
	}
}

// ratio divides with a zero-denominator guard; division by zero yields 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
