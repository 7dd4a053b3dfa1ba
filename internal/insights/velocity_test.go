package insights

import (
	"math"
	"testing"
)

func TestSpendingVelocityOnTrack(t *testing.T) {
	// Half the budget gone at half time.
	a := SpendingVelocity(3000000, 1500000, 15, 30)

	if a.Status != StatusOnTrack {
		t.Errorf("status = %s, want on-track", a.Status)
	}
	if a.TimeProgress != 0.5 || a.SpentProgress != 0.5 {
		t.Errorf("progress = %v / %v, want 0.5 / 0.5", a.TimeProgress, a.SpentProgress)
	}
	if a.DailyRate != 100000 {
		t.Errorf("daily rate = %d, want 100000", a.DailyRate)
	}
	if a.DaysToExhaustBudget != 30 {
		t.Errorf("days to exhaust = %d, want 30", a.DaysToExhaustBudget)
	}
	if a.RecommendedDaily != 100000 {
		t.Errorf("recommended daily = %d, want 100000", a.RecommendedDaily)
	}
	if a.ProjectedTotal != 3000000 {
		t.Errorf("projected total = %d, want 3000000", a.ProjectedTotal)
	}
	if a.ProjectedSavings != 0 {
		t.Errorf("projected savings = %d, want 0 when on track", a.ProjectedSavings)
	}
}

func TestSpendingVelocityTooFast(t *testing.T) {
	// 80% spent at one third of the period.
	a := SpendingVelocity(3000000, 2400000, 10, 30)
	if a.Status != StatusTooFast {
		t.Errorf("status = %s, want too-fast", a.Status)
	}
	if a.DaysToExhaustBudget != 12 {
		t.Errorf("days to exhaust = %d, want 12", a.DaysToExhaustBudget)
	}
}

func TestSpendingVelocitySlow(t *testing.T) {
	// 10% spent at half time: projected total 600000, savings 2400000.
	a := SpendingVelocity(3000000, 300000, 15, 30)
	if a.Status != StatusSlow {
		t.Errorf("status = %s, want slow", a.Status)
	}
	if a.ProjectedTotal != 600000 {
		t.Errorf("projected total = %d, want 600000", a.ProjectedTotal)
	}
	if a.ProjectedSavings != 2400000 {
		t.Errorf("projected savings = %d, want 2400000", a.ProjectedSavings)
	}
}

func TestSpendingVelocityZeroGuards(t *testing.T) {
	// Zero budget, zero spend: everything is defined, nothing is NaN.
	a := SpendingVelocity(0, 0, 5, 30)

	if a.SpentProgress != 0 {
		t.Errorf("spent progress = %v, want 0", a.SpentProgress)
	}
	if math.IsNaN(a.TimeProgress) || math.IsNaN(a.SpentProgress) || math.IsNaN(a.Difference) {
		t.Fatal("velocity produced NaN")
	}
	// diff = 0 - 5/30 ≈ -0.167, past the slow threshold.
	if a.Status != StatusSlow {
		t.Errorf("status = %s, want slow", a.Status)
	}
	if a.DailyRate != 0 || a.DaysToExhaustBudget != 0 || a.ProjectedTotal != 0 {
		t.Errorf("zero inputs should derive zeros: %+v", a)
	}

	// Zero elapsed days must not divide by zero either.
	a = SpendingVelocity(3000000, 0, 0, 30)
	if a.DailyRate != 0 || math.IsNaN(a.SpentProgress) {
		t.Errorf("zero elapsed days: %+v", a)
	}

	// Zero total days.
	a = SpendingVelocity(3000000, 100000, 0, 0)
	if math.IsNaN(a.TimeProgress) || a.TimeProgress != 0 {
		t.Errorf("zero total days: timeProgress = %v", a.TimeProgress)
	}
}

func TestSpendingVelocityOverspent(t *testing.T) {
	// Spending past the budget: remaining budget floors at zero.
	a := SpendingVelocity(1000000, 1500000, 20, 30)
	if a.RecommendedDaily != 0 {
		t.Errorf("recommended daily = %d, want 0 when budget exhausted", a.RecommendedDaily)
	}
}

func TestCalculateBudgetStatus(t *testing.T) {
	cases := []struct {
		name        string
		budget      int64
		spent       int64
		elapsed     int
		total       int
		want        BudgetState
	}{
		{"under pace", 3000000, 1000000, 15, 30, BudgetSafe},
		{"slightly ahead", 3000000, 1650000, 15, 30, BudgetWatch},
		{"far ahead", 3000000, 2400000, 15, 30, BudgetOver},
		{"zero budget", 0, 0, 15, 30, BudgetSafe},
	}
	for _, c := range cases {
		got := CalculateBudgetStatus(c.budget, c.spent, c.elapsed, c.total)
		if got.State != c.want {
			t.Errorf("%s: state = %s, want %s", c.name, got.State, c.want)
		}
	}

	// Buffer is expressed in percentage points.
	s := CalculateBudgetStatus(3000000, 1000000, 15, 30)
	if math.Abs(s.BufferPoints-16.666) > 0.01 {
		t.Errorf("buffer points = %v, want about 16.67", s.BufferPoints)
	}
}
