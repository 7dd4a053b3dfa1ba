package services

import (
	"context"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/helpers"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/logger"
)

type settingsUserStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	UpdateResetConfig(ctx context.Context, uid string, cfg period.ResetConfig) error
}

type settingsPeriodStore interface {
	SaveTransition(ctx context.Context, uid string, transition, newPeriod period.Period) error
}

type settingsHistoryStore interface {
	Append(ctx context.Context, uid string, h period.ChangeHistory) error
	List(ctx context.Context, uid string) ([]period.ChangeHistory, error)
}

type settingsExpenseStore interface {
	CountByPeriod(ctx context.Context, uid, periodID string) (int, error)
}

type settingsBudgetStore interface {
	Get(ctx context.Context, uid, periodID string) (*models.Budget, error)
}

type settingsCache interface {
	InvalidateUser(ctx context.Context, uid string)
}

// settingsService owns the reset-day configuration and its change workflow:
// preview the impact, apply the transition, keep the audit trail.
type settingsService struct {
	users    settingsUserStore
	periods  settingsPeriodStore
	history  settingsHistoryStore
	expenses settingsExpenseStore
	budgets  settingsBudgetStore
	cache    settingsCache
	now      func() time.Time
}

func NewSettingsService(users settingsUserStore, periods settingsPeriodStore, history settingsHistoryStore, expenses settingsExpenseStore, budgets settingsBudgetStore, cache settingsCache, loc *time.Location) *settingsService {
	return &settingsService{
		users:    users,
		periods:  periods,
		history:  history,
		expenses: expenses,
		budgets:  budgets,
		cache:    cache,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

func (s *settingsService) ResetConfig(ctx context.Context, uid string) (period.ResetConfig, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return period.ResetConfig{}, err
	}
	return user.ResetConfig, nil
}

// PreviewResetChange computes what the change would do without writing
// anything: the transition boundary plus advisory warnings about data in the
// period being shortened.
func (s *settingsService) PreviewResetChange(ctx context.Context, uid string, req dto.ResetChangeRequest) (*dto.ResetChangePreview, error) {
	oldConfig, err := s.ResetConfig(ctx, uid)
	if err != nil {
		return nil, err
	}
	newConfig := period.ResetConfig{Day: req.Day, Type: req.Type}
	if err := period.ValidateChange(oldConfig, newConfig); err != nil {
		return nil, err
	}

	impact := period.CalculateImpact(oldConfig, newConfig, s.now())

	txCount, err := s.expenses.CountByPeriod(ctx, uid, impact.CurrentPeriod.ID)
	if err != nil {
		return nil, err
	}
	budget, err := s.budgets.Get(ctx, uid, impact.CurrentPeriod.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ResetChangePreview{
		Impact: impact,
		Safety: period.IsChangeSafe(txCount, helpers.Value(budget).TotalBudget),
	}, nil
}

// ApplyResetChange executes the change: persists the two boundary periods,
// appends the audit record, then switches the stored config. The period write
// is idempotent, so a failure partway can be retried with the same request.
func (s *settingsService) ApplyResetChange(ctx context.Context, uid string, req dto.ResetChangeRequest) (*dto.ResetChangeResult, error) {
	log := logger.FromContext(ctx)

	oldConfig, err := s.ResetConfig(ctx, uid)
	if err != nil {
		return nil, err
	}
	newConfig := period.ResetConfig{Day: req.Day, Type: req.Type}
	if err := period.ValidateChange(oldConfig, newConfig); err != nil {
		return nil, err
	}

	now := s.now()
	result := period.ExecuteChange(oldConfig, newConfig, now)

	if err := s.periods.SaveTransition(ctx, uid, result.TransitionPeriod, result.NewPeriod); err != nil {
		return nil, err
	}

	history := period.NewChangeHistory(oldConfig, newConfig, result, req.Reason, now)
	if err := s.history.Append(ctx, uid, history); err != nil {
		return nil, err
	}

	if err := s.users.UpdateResetConfig(ctx, uid, newConfig); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, uid)
	log.Info("reset config changed",
		"old_day", oldConfig.Day, "old_type", oldConfig.Type,
		"new_day", newConfig.Day, "new_type", newConfig.Type,
		"transition_period", result.TransitionPeriod.ID)

	return &dto.ResetChangeResult{Transition: result, History: history}, nil
}

func (s *settingsService) ResetHistory(ctx context.Context, uid string) ([]period.ChangeHistory, error) {
	return s.history.List(ctx, uid)
}
