package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         UserService
	ExpenseSvc      ExpenseService
	BudgetSvc       BudgetService
	PeriodSvc       PeriodService
	SettingsSvc     SettingsService
	InsightsSvc     InsightsService
	DashboardSvc    DashboardService
}
