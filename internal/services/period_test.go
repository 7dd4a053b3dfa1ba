package services

import (
	"context"
	"testing"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/helpers"
)

type stubPeriodUserStore struct {
	cfg period.ResetConfig
}

func (s *stubPeriodUserStore) GetUser(_ context.Context, uid string) (*models.User, error) {
	return &models.User{UID: uid, ResetConfig: s.cfg}, nil
}

type stubRecordStore struct {
	records []period.Period
}

func (s *stubRecordStore) Get(_ context.Context, _, periodID string) (*period.Period, error) {
	for _, r := range s.records {
		if r.ID == periodID {
			copied := r
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubRecordStore) List(_ context.Context, _ string) ([]period.Period, error) {
	return s.records, nil
}

type stubPeriodExpenseStore struct {
	expenses []models.Expense
	calls    int
}

func (s *stubPeriodExpenseStore) ListByPeriod(_ context.Context, _, _ string) ([]models.Expense, error) {
	s.calls++
	return s.expenses, nil
}

type stubPeriodBudgetStore struct {
	budget *models.Budget
}

func (s *stubPeriodBudgetStore) Get(_ context.Context, _, _ string) (*models.Budget, error) {
	return s.budget, nil
}

type stubPeriodCache struct {
	entries map[string]*dto.PeriodData
	sets    int
}

func newStubPeriodCache() *stubPeriodCache {
	return &stubPeriodCache{entries: map[string]*dto.PeriodData{}}
}

func (c *stubPeriodCache) Get(_ context.Context, _, periodID string) *dto.PeriodData {
	return c.entries[periodID]
}

func (c *stubPeriodCache) Set(_ context.Context, _ string, data *dto.PeriodData) {
	c.sets++
	c.entries[data.PeriodID] = data
}

// transitionRecord builds the persisted pair a 25→1 change on Oct 19 writes.
func transitionRecords() []period.Period {
	return []period.Period{
		{
			ID:           "2025-09-25",
			StartDate:    date(2025, time.September, 25),
			EndDate:      time.Date(2025, time.October, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			Month:        "2025-09",
			IsTransition: true,
			ResetDay:     25,
		},
		{
			ID:        "2025-11-01",
			StartDate: date(2025, time.November, 1),
			EndDate:   time.Date(2025, time.November, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			Month:     "2025-11",
			ResetDay:  1,
		},
	}
}

func newPeriodFixture(cfg period.ResetConfig, records []period.Period, today time.Time) (*periodService, *stubPeriodExpenseStore, *stubPeriodCache) {
	expenses := &stubPeriodExpenseStore{}
	cache := newStubPeriodCache()
	svc := NewPeriodService(&stubPeriodUserStore{cfg: cfg}, &stubRecordStore{records: records}, expenses, &stubPeriodBudgetStore{}, cache, time.UTC)
	svc.now = func() time.Time { return today }
	return svc, expenses, cache
}

func TestCurrentPeriodPrefersTransitionRecord(t *testing.T) {
	// Config already changed to day 1, but the transition period is still
	// open until the end of October.
	svc, _, _ := newPeriodFixture(period.ResetConfig{Day: 1, Type: period.ResetFixed}, transitionRecords(), date(2025, time.October, 20))

	current, err := svc.CurrentPeriod(helpers.TestCtx(), "uid-1")
	if err != nil {
		t.Fatalf("CurrentPeriod returned error: %v", err)
	}

	if current.ID != "2025-09-25" {
		t.Fatalf("current period = %q, want the open transition record 2025-09-25", current.ID)
	}
	if !current.IsTransition || !current.IsActive {
		t.Fatalf("transition record flags: %+v", current)
	}
}

func TestCurrentPeriodGeneratesWithoutRecords(t *testing.T) {
	svc, _, _ := newPeriodFixture(period.ResetConfig{Day: 25, Type: period.ResetFixed}, nil, date(2025, time.October, 19))

	current, err := svc.CurrentPeriod(helpers.TestCtx(), "uid-1")
	if err != nil {
		t.Fatalf("CurrentPeriod returned error: %v", err)
	}
	if current.ID != "2025-09-25" {
		t.Fatalf("current period = %q, want 2025-09-25", current.ID)
	}
}

func TestListPeriodsOverlaysRecords(t *testing.T) {
	svc, _, _ := newPeriodFixture(period.ResetConfig{Day: 1, Type: period.ResetFixed}, transitionRecords(), date(2025, time.December, 10))

	views, err := svc.ListPeriods(helpers.TestCtx(), "uid-1", 6)
	if err != nil {
		t.Fatalf("ListPeriods returned error: %v", err)
	}
	if len(views) == 0 {
		t.Fatalf("no periods returned")
	}

	for i := 1; i < len(views); i++ {
		if !views[i].StartDate.Before(views[i-1].StartDate) {
			t.Fatalf("periods not in descending start order at %d: %v, %v", i, views[i-1].StartDate, views[i].StartDate)
		}
	}

	var sawTransition bool
	var activeCount int
	for _, v := range views {
		if v.ID == "2025-09-25" {
			sawTransition = true
			if !v.IsTransition {
				t.Fatalf("persisted transition record lost its flag: %+v", v.Period)
			}
		}
		if v.IsActive {
			activeCount++
		}
		if v.Display == "" {
			t.Fatalf("period %s missing display string", v.ID)
		}
	}
	if !sawTransition {
		t.Fatalf("transition record missing from list")
	}
	if activeCount != 1 {
		t.Fatalf("active periods = %d, want exactly 1", activeCount)
	}
}

func TestPeriodDataCachesBundle(t *testing.T) {
	svc, expenses, cache := newPeriodFixture(period.ResetConfig{Day: 25, Type: period.ResetFixed}, nil, date(2025, time.October, 19))
	expenses.expenses = []models.Expense{
		{ExpenseID: "e-1", Category: "FOOD", Amount: 45000},
		{ExpenseID: "e-2", Category: "TRANSPORT", Amount: 15000},
	}

	ctx := helpers.TestCtx()
	data, err := svc.PeriodData(ctx, "uid-1", "2025-09-25")
	if err != nil {
		t.Fatalf("PeriodData returned error: %v", err)
	}
	if data.TotalSpent != 60000 {
		t.Fatalf("total spent = %d, want 60000", data.TotalSpent)
	}
	if cache.sets != 1 {
		t.Fatalf("cache set %d times, want 1", cache.sets)
	}

	if _, err := svc.PeriodData(ctx, "uid-1", "2025-09-25"); err != nil {
		t.Fatalf("cached PeriodData returned error: %v", err)
	}
	if expenses.calls != 1 {
		t.Fatalf("store hit %d times, want 1 (second read served from cache)", expenses.calls)
	}
}

func TestPeriodByIDFallsBackToGenerator(t *testing.T) {
	svc, _, _ := newPeriodFixture(period.ResetConfig{Day: 25, Type: period.ResetFixed}, nil, date(2025, time.October, 19))

	p, err := svc.PeriodByID(helpers.TestCtx(), "uid-1", "2025-08-25")
	if err != nil {
		t.Fatalf("PeriodByID returned error: %v", err)
	}
	if !p.StartDate.Equal(date(2025, time.August, 25)) {
		t.Fatalf("start date = %v, want 2025-08-25", p.StartDate)
	}
}
