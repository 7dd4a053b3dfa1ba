package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tegarerputra/DuitTrack-sub000/internal/handlers"
	"github.com/tegarerputra/DuitTrack-sub000/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	mw := middleware.NewMiddleware(deps.Firebase)
	lmw := middleware.NewLoggerMiddleware(deps.Log)

	r.Use(chimiddleware.RequestID)
	r.Use(lmw.LoggerMiddleware)
	r.Use(mw.FirebaseAuth)

	ush := handlers.NewUserHandlers(deps)
	exh := handlers.NewExpenseHandlers(deps)
	buh := handlers.NewBudgetHandlers(deps)
	peh := handlers.NewPeriodHandlers(deps)
	seh := handlers.NewSettingsHandlers(deps)
	inh := handlers.NewInsightsHandlers(deps)
	dah := handlers.NewDashboardHandlers(deps)

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/expenses", exh.ExpenseRoutes())
	r.Mount("/budget", buh.BudgetRoutes())
	r.Mount("/periods", peh.PeriodRoutes())
	r.Mount("/settings", seh.SettingsRoutes())
	r.Mount("/insights", inh.InsightsRoutes())
	r.Mount("/dashboard", dah.DashboardRoutes())
	return r
}
