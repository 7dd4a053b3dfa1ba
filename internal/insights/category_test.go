package insights

import (
	"math"
	"testing"
)

func TestAnalyzeCategory(t *testing.T) {
	// Scenario: FOOD with Rp2.000.000 budget and Rp1.850.000 spent is in
	// the danger band at 92.5%.
	a := AnalyzeCategory("FOOD", 2000000, 1850000)

	if math.Abs(a.Percentage-92.5) > 0.001 {
		t.Errorf("percentage = %v, want 92.5", a.Percentage)
	}
	if a.Status != CategoryDanger {
		t.Errorf("status = %s, want danger", a.Status)
	}
	if a.Remaining != 150000 {
		t.Errorf("remaining = %d, want 150000", a.Remaining)
	}
}

func TestAnalyzeCategoryThresholds(t *testing.T) {
	cases := []struct {
		budget int64
		spent  int64
		want   CategoryStatus
	}{
		{1000000, 500000, CategorySafe},
		{1000000, 750000, CategoryWarning},
		{1000000, 749999, CategorySafe},
		{1000000, 900000, CategoryDanger},
		{1000000, 1000000, CategoryOver},
		{1000000, 1200000, CategoryOver},
	}
	for _, c := range cases {
		if got := AnalyzeCategory("X", c.budget, c.spent); got.Status != c.want {
			t.Errorf("budget %d spent %d: status = %s, want %s", c.budget, c.spent, got.Status, c.want)
		}
	}
}

func TestAnalyzeCategoryZeroBudget(t *testing.T) {
	a := AnalyzeCategory("MISC", 0, 50000)
	if a.Percentage != 0 {
		t.Errorf("zero budget percentage = %v, want 0", a.Percentage)
	}
	if a.Status != CategorySafe {
		t.Errorf("zero budget status = %s, want safe", a.Status)
	}
}
