package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/logger"
)

type expenseESStore interface {
	Create(ctx context.Context, uid string, e *models.Expense) error
	Get(ctx context.Context, uid, expenseID string) (*models.Expense, error)
	Update(ctx context.Context, uid string, e *models.Expense) error
	Delete(ctx context.Context, uid, expenseID string) error
	ListByPeriod(ctx context.Context, uid, periodID string) ([]models.Expense, error)
}

type expensePeriodResolver interface {
	PeriodForDate(ctx context.Context, uid string, date time.Time) (period.Period, error)
}

type expenseCacheInvalidator interface {
	Invalidate(ctx context.Context, uid, periodID string)
}

type expenseService struct {
	store   expenseESStore
	periods expensePeriodResolver
	cache   expenseCacheInvalidator
	loc     *time.Location
	now     func() time.Time
}

func NewExpenseService(store expenseESStore, periods expensePeriodResolver, cache expenseCacheInvalidator, loc *time.Location) *expenseService {
	return &expenseService{
		store:   store,
		periods: periods,
		cache:   cache,
		loc:     loc,
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

func (s *expenseService) validate(category string, amount int64) error {
	if category == "" {
		return errs.NewValidationError("category is required")
	}
	if amount <= 0 {
		return errs.NewValidationError("amount must be a positive number of rupiah")
	}
	return nil
}

func (s *expenseService) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return s.now(), nil
	}
	date, err := time.ParseInLocation(dto.DateLayout, raw, s.loc)
	if err != nil {
		return time.Time{}, errs.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// Create records an expense, resolving its period from the expense date so
// backdated entries land in the period that was open on that day.
func (s *expenseService) Create(ctx context.Context, uid string, req dto.CreateExpenseRequest) (*models.Expense, error) {
	if err := s.validate(req.Category, req.Amount); err != nil {
		return nil, err
	}
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	p, err := s.periods.PeriodForDate(ctx, uid, date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ExpenseID:   uuid.New().String(),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		PeriodID:    p.ID,
	}
	if err := s.store.Create(ctx, uid, expense); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, uid, p.ID)
	logger.FromContext(ctx).Info("expense created", "category", expense.Category, "period_id", p.ID)
	return expense, nil
}

// Update rewrites an expense. A changed date can move it to a different
// period, in which case both period bundles are invalidated.
func (s *expenseService) Update(ctx context.Context, uid, expenseID string, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	if err := s.validate(req.Category, req.Amount); err != nil {
		return nil, err
	}
	expense, err := s.store.Get(ctx, uid, expenseID)
	if err != nil {
		return nil, err
	}

	previousPeriodID := expense.PeriodID
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	p, err := s.periods.PeriodForDate(ctx, uid, date)
	if err != nil {
		return nil, err
	}

	expense.Category = req.Category
	expense.Amount = req.Amount
	expense.Description = req.Description
	expense.Date = date
	expense.PeriodID = p.ID
	if err := s.store.Update(ctx, uid, expense); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, uid, expense.PeriodID)
	if previousPeriodID != expense.PeriodID {
		s.cache.Invalidate(ctx, uid, previousPeriodID)
	}
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, uid, expenseID string) error {
	expense, err := s.store.Get(ctx, uid, expenseID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, uid, expenseID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, uid, expense.PeriodID)
	return nil
}

func (s *expenseService) Get(ctx context.Context, uid, expenseID string) (*models.Expense, error) {
	return s.store.Get(ctx, uid, expenseID)
}

func (s *expenseService) ListByPeriod(ctx context.Context, uid, periodID string) ([]models.Expense, error) {
	return s.store.ListByPeriod(ctx, uid, periodID)
}
