package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/helpers"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type stubSettingsUserStore struct {
	user              *models.User
	updatedConfig     *period.ResetConfig
	updateConfigCalls int
	updateErr         error
}

func (s *stubSettingsUserStore) GetUser(_ context.Context, _ string) (*models.User, error) {
	return s.user, nil
}

func (s *stubSettingsUserStore) UpdateResetConfig(_ context.Context, _ string, cfg period.ResetConfig) error {
	s.updateConfigCalls++
	s.updatedConfig = &cfg
	return s.updateErr
}

type stubSettingsPeriodStore struct {
	transition *period.Period
	newPeriod  *period.Period
	saveCalls  int
	err        error
}

func (s *stubSettingsPeriodStore) SaveTransition(_ context.Context, _ string, transition, newPeriod period.Period) error {
	s.saveCalls++
	s.transition = &transition
	s.newPeriod = &newPeriod
	return s.err
}

type stubSettingsHistoryStore struct {
	appended    []period.ChangeHistory
	appendCalls int
}

func (s *stubSettingsHistoryStore) Append(_ context.Context, _ string, h period.ChangeHistory) error {
	s.appendCalls++
	s.appended = append(s.appended, h)
	return nil
}

func (s *stubSettingsHistoryStore) List(_ context.Context, _ string) ([]period.ChangeHistory, error) {
	return s.appended, nil
}

type stubSettingsExpenseStore struct {
	count         int
	countedPeriod string
}

func (s *stubSettingsExpenseStore) CountByPeriod(_ context.Context, _ string, periodID string) (int, error) {
	s.countedPeriod = periodID
	return s.count, nil
}

type stubSettingsBudgetStore struct {
	budget *models.Budget
}

func (s *stubSettingsBudgetStore) Get(_ context.Context, _, _ string) (*models.Budget, error) {
	return s.budget, nil
}

type stubSettingsCache struct {
	invalidateUserCalls int
}

func (s *stubSettingsCache) InvalidateUser(_ context.Context, _ string) {
	s.invalidateUserCalls++
}

func newSettingsFixture(cfg period.ResetConfig, today time.Time) (*settingsService, *stubSettingsUserStore, *stubSettingsPeriodStore, *stubSettingsHistoryStore, *stubSettingsCache) {
	users := &stubSettingsUserStore{user: &models.User{UID: "uid-1", ResetConfig: cfg}}
	periods := &stubSettingsPeriodStore{}
	history := &stubSettingsHistoryStore{}
	cache := &stubSettingsCache{}
	svc := NewSettingsService(users, periods, history, &stubSettingsExpenseStore{count: 3}, &stubSettingsBudgetStore{}, cache, time.UTC)
	svc.now = func() time.Time { return today }
	return svc, users, periods, history, cache
}

func TestPreviewResetChangeReportsImpactAndWarnings(t *testing.T) {
	users := &stubSettingsUserStore{user: &models.User{UID: "uid-1", ResetConfig: period.ResetConfig{Day: 25, Type: period.ResetFixed}}}
	expenses := &stubSettingsExpenseStore{count: 12}
	budgets := &stubSettingsBudgetStore{budget: &models.Budget{TotalBudget: 2000000}}
	svc := NewSettingsService(users, &stubSettingsPeriodStore{}, &stubSettingsHistoryStore{}, expenses, budgets, &stubSettingsCache{}, time.UTC)
	svc.now = func() time.Time { return date(2025, time.October, 19) }

	preview, err := svc.PreviewResetChange(helpers.TestCtx(), "uid-1", dto.ResetChangeRequest{Day: 1, Type: period.ResetFixed})
	if err != nil {
		t.Fatalf("PreviewResetChange returned error: %v", err)
	}

	if got := preview.Impact.NewPeriodStartDate; !got.Equal(date(2025, time.November, 1)) {
		t.Fatalf("new period start = %v, want 2025-11-01", got)
	}
	if preview.Impact.WillCloseEarly {
		t.Fatalf("current period ends Oct 24, before the Oct 31 boundary; should not close early")
	}
	if expenses.countedPeriod != preview.Impact.CurrentPeriod.ID {
		t.Fatalf("counted expenses for %q, want current period %q", expenses.countedPeriod, preview.Impact.CurrentPeriod.ID)
	}
	if preview.Safety.IsSafe || len(preview.Safety.Warnings) != 2 {
		t.Fatalf("expected expense and budget warnings, got %+v", preview.Safety)
	}
}

func TestPreviewResetChangeRejectsNoOp(t *testing.T) {
	svc, _, _, _, _ := newSettingsFixture(period.ResetConfig{Day: 25, Type: period.ResetFixed}, date(2025, time.October, 19))

	_, err := svc.PreviewResetChange(helpers.TestCtx(), "uid-1", dto.ResetChangeRequest{Day: 25, Type: period.ResetFixed})

	var validationErr *errs.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error for no-op change, got %v", err)
	}
}

func TestApplyResetChangePersistsEverything(t *testing.T) {
	today := date(2025, time.October, 19)
	svc, users, periods, history, cache := newSettingsFixture(period.ResetConfig{Day: 25, Type: period.ResetFixed}, today)

	result, err := svc.ApplyResetChange(helpers.TestCtx(), "uid-1", dto.ResetChangeRequest{Day: 1, Type: period.ResetFixed, Reason: "align with salary"})
	if err != nil {
		t.Fatalf("ApplyResetChange returned error: %v", err)
	}

	if periods.saveCalls != 1 {
		t.Fatalf("SaveTransition called %d times, want 1", periods.saveCalls)
	}
	if !periods.transition.IsTransition {
		t.Fatalf("persisted transition period not flagged: %+v", periods.transition)
	}
	if got := periods.newPeriod.StartDate; !got.Equal(date(2025, time.November, 1)) {
		t.Fatalf("new period starts %v, want 2025-11-01", got)
	}

	if history.appendCalls != 1 {
		t.Fatalf("history appended %d times, want 1", history.appendCalls)
	}
	if history.appended[0].Reason != "align with salary" {
		t.Fatalf("history reason = %q", history.appended[0].Reason)
	}

	if users.updateConfigCalls != 1 {
		t.Fatalf("UpdateResetConfig called %d times, want 1", users.updateConfigCalls)
	}
	if users.updatedConfig.Day != 1 {
		t.Fatalf("stored config day = %d, want 1", users.updatedConfig.Day)
	}

	if cache.invalidateUserCalls != 1 {
		t.Fatalf("cache invalidated %d times, want 1", cache.invalidateUserCalls)
	}

	if result.Transition.TransitionPeriod.ID != result.History.AffectedPeriodIDs[0] {
		t.Fatalf("history does not reference the transition period: %+v", result.History)
	}
}

func TestApplyResetChangeStopsWhenPeriodWriteFails(t *testing.T) {
	today := date(2025, time.October, 19)
	svc, users, periods, history, _ := newSettingsFixture(period.ResetConfig{Day: 25, Type: period.ResetFixed}, today)
	periods.err = errors.New("firestore unavailable")

	_, err := svc.ApplyResetChange(helpers.TestCtx(), "uid-1", dto.ResetChangeRequest{Day: 1, Type: period.ResetFixed})
	if err == nil {
		t.Fatalf("expected error when period write fails")
	}

	if history.appendCalls != 0 {
		t.Fatalf("history written despite failed period save")
	}
	if users.updateConfigCalls != 0 {
		t.Fatalf("config updated despite failed period save")
	}
}
