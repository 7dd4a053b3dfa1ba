package insights

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComparePeriods(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		previous int64
		wantPct  float64
		want     Trend
	}{
		{"rising", 1200000, 1000000, 20, TrendUp},
		{"falling", 800000, 1000000, -20, TrendDown},
		{"stable", 1050000, 1000000, 5, TrendStable},
		{"zero previous, zero current", 0, 0, 0, TrendStable},
		{"zero previous, spending started", 500000, 0, 100, TrendUp},
	}
	for _, c := range cases {
		got := ComparePeriods(c.current, c.previous)
		if !approx(got.ChangePct, c.wantPct) {
			t.Errorf("%s: change = %v, want %v", c.name, got.ChangePct, c.wantPct)
		}
		if got.Trend != c.want {
			t.Errorf("%s: trend = %s, want %s", c.name, got.Trend, c.want)
		}
	}
}

func TestCompareCategory(t *testing.T) {
	c := CompareCategory("FOOD", 1300000, 1000000)
	if !approx(c.ChangePct, 30) || !c.Significant {
		t.Errorf("30%% rise should be significant: %+v", c)
	}

	c = CompareCategory("FOOD", 1100000, 1000000)
	if c.Significant {
		t.Errorf("10%% rise should not be significant: %+v", c)
	}

	c = CompareCategory("FOOD", 700000, 1000000)
	if !approx(c.ChangePct, -30) || !c.Significant {
		t.Errorf("30%% drop should be significant: %+v", c)
	}

	c = CompareCategory("NEW", 250000, 0)
	if c.ChangePct != 100 || !c.Significant {
		t.Errorf("first spending in a category: %+v", c)
	}
}
