package services

import (
	"context"
	"sort"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/helpers"
)

const defaultPeriodListSize = 12

type periodUserStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type periodRecordStore interface {
	Get(ctx context.Context, uid, periodID string) (*period.Period, error)
	List(ctx context.Context, uid string) ([]period.Period, error)
}

type periodExpenseStore interface {
	ListByPeriod(ctx context.Context, uid, periodID string) ([]models.Expense, error)
}

type periodBudgetStore interface {
	Get(ctx context.Context, uid, periodID string) (*models.Budget, error)
}

type periodDataCache interface {
	Get(ctx context.Context, uid, periodID string) *dto.PeriodData
	Set(ctx context.Context, uid string, data *dto.PeriodData)
}

// periodService answers every "which period" question. Periods are derived
// from the user's reset config; persisted transition records take precedence
// over generated ones, since a past config change redrew those boundaries in
// ways the current config cannot reproduce.
type periodService struct {
	users    periodUserStore
	records  periodRecordStore
	expenses periodExpenseStore
	budgets  periodBudgetStore
	cache    periodDataCache
	now      func() time.Time
}

func NewPeriodService(users periodUserStore, records periodRecordStore, expenses periodExpenseStore, budgets periodBudgetStore, cache periodDataCache, loc *time.Location) *periodService {
	return &periodService{
		users:    users,
		records:  records,
		expenses: expenses,
		budgets:  budgets,
		cache:    cache,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

func (s *periodService) resetConfig(ctx context.Context, uid string) (period.ResetConfig, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return period.ResetConfig{}, err
	}
	return user.ResetConfig, nil
}

// ListPeriods returns the most recent periods, newest first: the generated
// sequence under the current config, overlaid with persisted transition
// records.
func (s *periodService) ListPeriods(ctx context.Context, uid string, count int) ([]dto.PeriodView, error) {
	if count <= 0 {
		count = defaultPeriodListSize
	}
	cfg, err := s.resetConfig(ctx, uid)
	if err != nil {
		return nil, err
	}
	records, err := s.records.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := s.now()
	byID := make(map[string]period.Period, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	merged := make([]period.Period, 0, count+len(records))
	for _, p := range period.Generate(cfg, now, count, period.Backward) {
		if r, ok := byID[p.ID]; ok {
			p = r
			delete(byID, p.ID)
		}
		merged = append(merged, p)
	}
	for _, r := range byID {
		merged = append(merged, r)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].StartDate.After(merged[j].StartDate)
	})

	views := make([]dto.PeriodView, 0, len(merged))
	for _, p := range merged {
		p.IsActive = period.Contains(p, now)
		views = append(views, dto.PeriodView{
			Period:  p,
			Display: period.FormatPeriodDisplay(p.StartDate, p.EndDate),
		})
	}
	return views, nil
}

// CurrentPeriod prefers a persisted record containing today: right after a
// reset-day change the open transition period differs from anything the new
// config would generate.
func (s *periodService) CurrentPeriod(ctx context.Context, uid string) (period.Period, error) {
	cfg, err := s.resetConfig(ctx, uid)
	if err != nil {
		return period.Period{}, err
	}
	now := s.now()

	records, err := s.records.List(ctx, uid)
	if err != nil {
		return period.Period{}, err
	}
	for _, r := range records {
		if period.Contains(r, now) {
			r.IsActive = true
			return r, nil
		}
	}
	return period.CurrentPeriod(cfg, now), nil
}

func (s *periodService) PeriodByID(ctx context.Context, uid, periodID string) (period.Period, error) {
	record, err := s.records.Get(ctx, uid, periodID)
	if err != nil {
		return period.Period{}, err
	}
	if record != nil {
		record.IsActive = period.Contains(*record, s.now())
		return *record, nil
	}

	cfg, err := s.resetConfig(ctx, uid)
	if err != nil {
		return period.Period{}, err
	}
	if p := period.PeriodByID(cfg, periodID, s.now()); p != nil {
		return *p, nil
	}
	return period.Period{}, errs.NewNotFoundError("period not found: " + periodID)
}

func (s *periodService) PeriodForDate(ctx context.Context, uid string, date time.Time) (period.Period, error) {
	records, err := s.records.List(ctx, uid)
	if err != nil {
		return period.Period{}, err
	}
	for _, r := range records {
		if period.Contains(r, date) {
			return r, nil
		}
	}

	cfg, err := s.resetConfig(ctx, uid)
	if err != nil {
		return period.Period{}, err
	}
	return period.PeriodForDate(cfg, date), nil
}

// PeriodData loads the full bundle for one period, Redis-cached because the
// dashboard and insight endpoints hit the same bundle repeatedly.
func (s *periodService) PeriodData(ctx context.Context, uid, periodID string) (*dto.PeriodData, error) {
	if data := s.cache.Get(ctx, uid, periodID); data != nil {
		return data, nil
	}

	expenses, err := s.expenses.ListByPeriod(ctx, uid, periodID)
	if err != nil {
		return nil, err
	}
	budget, err := s.budgets.Get(ctx, uid, periodID)
	if err != nil {
		return nil, err
	}

	data := &dto.PeriodData{
		PeriodID:    periodID,
		Expenses:    expenses,
		Budget:      budget,
		TotalBudget: helpers.Value(budget).TotalBudget,
	}
	for _, e := range expenses {
		data.TotalSpent += e.Amount
	}

	s.cache.Set(ctx, uid, data)
	return data, nil
}
