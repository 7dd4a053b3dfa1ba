package services

import (
	"context"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
)

type budgetBSStore interface {
	Get(ctx context.Context, uid, periodID string) (*models.Budget, error)
	Set(ctx context.Context, uid string, b *models.Budget) error
}

type budgetCacheInvalidator interface {
	Invalidate(ctx context.Context, uid, periodID string)
}

type budgetService struct {
	store budgetBSStore
	cache budgetCacheInvalidator
}

func NewBudgetService(store budgetBSStore, cache budgetCacheInvalidator) *budgetService {
	return &budgetService{store: store, cache: cache}
}

// Get returns the period's budget, or an empty one when none is set yet.
func (s *budgetService) Get(ctx context.Context, uid, periodID string) (*models.Budget, error) {
	budget, err := s.store.Get(ctx, uid, periodID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return &models.Budget{PeriodID: periodID, Categories: map[string]int64{}}, nil
	}
	return budget, nil
}

// Set replaces the period's category budgets wholesale and recomputes the
// total.
func (s *budgetService) Set(ctx context.Context, uid, periodID string, req dto.SetBudgetRequest) (*models.Budget, error) {
	if len(req.Categories) == 0 {
		return nil, errs.NewValidationError("at least one category budget is required")
	}

	var total int64
	for category, amount := range req.Categories {
		if category == "" {
			return nil, errs.NewValidationError("category name must not be empty")
		}
		if amount < 0 {
			return nil, errs.NewValidationError("budget amount must not be negative")
		}
		total += amount
	}

	existing, err := s.store.Get(ctx, uid, periodID)
	if err != nil {
		return nil, err
	}
	budget := &models.Budget{
		PeriodID:    periodID,
		Categories:  req.Categories,
		TotalBudget: total,
	}
	if existing != nil {
		budget.CreatedAt = existing.CreatedAt
	}
	if err := s.store.Set(ctx, uid, budget); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, uid, periodID)
	return budget, nil
}
