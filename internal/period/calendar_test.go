package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		in   time.Time
		want int
	}{
		{date(2025, time.January, 10), 31},
		{date(2025, time.February, 1), 28},
		{date(2024, time.February, 29), 29}, // leap year
		{date(2025, time.April, 30), 30},
		{date(2025, time.December, 31), 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.in); got != c.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", c.in.Format("2006-01"), got, c.want)
		}
	}
}

func TestLastDayOfMonth(t *testing.T) {
	got := LastDayOfMonth(2025, time.February, time.UTC)
	if got.Day() != 28 || got.Month() != time.February {
		t.Errorf("LastDayOfMonth(2025, Feb) = %s", got.Format("2006-01-02"))
	}

	got = LastDayOfMonth(2024, time.February, time.UTC)
	if got.Day() != 29 {
		t.Errorf("LastDayOfMonth(2024, Feb) = %s, want Feb 29", got.Format("2006-01-02"))
	}

	// December rollover must stay inside the year.
	got = LastDayOfMonth(2025, time.December, time.UTC)
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 31 {
		t.Errorf("LastDayOfMonth(2025, Dec) = %s", got.Format("2006-01-02"))
	}
}

func TestFormatPeriodID(t *testing.T) {
	if got := FormatPeriodID(date(2025, time.March, 5)); got != "2025-03-05" {
		t.Errorf("FormatPeriodID = %q, want zero-padded 2025-03-05", got)
	}
}

func TestFormatPeriodDisplay(t *testing.T) {
	sameMonth := FormatPeriodDisplay(date(2025, time.October, 2), date(2025, time.October, 24))
	if sameMonth != "2 - 24 Oct 2025" {
		t.Errorf("same-month display = %q", sameMonth)
	}

	crossMonth := FormatPeriodDisplay(date(2025, time.September, 25), date(2025, time.October, 24))
	if crossMonth != "25 Sep - 24 Oct 2025" {
		t.Errorf("cross-month display = %q", crossMonth)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := daysBetween(date(2025, time.September, 25), date(2025, time.October, 24)); got != 29 {
		t.Errorf("daysBetween = %d, want 29", got)
	}
	// Time of day must not change the count.
	end := time.Date(2025, time.October, 24, 23, 59, 59, 0, time.UTC)
	if got := daysBetween(date(2025, time.September, 25), end); got != 29 {
		t.Errorf("daysBetween with end-of-day = %d, want 29", got)
	}
}
