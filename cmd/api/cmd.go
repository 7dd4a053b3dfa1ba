package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/bootstrap"
	"github.com/tegarerputra/DuitTrack-sub000/internal/cache"
	"github.com/tegarerputra/DuitTrack-sub000/internal/config"
	"github.com/tegarerputra/DuitTrack-sub000/internal/handlers"
	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
	"github.com/tegarerputra/DuitTrack-sub000/internal/router"
	"github.com/tegarerputra/DuitTrack-sub000/internal/services"
	"github.com/tegarerputra/DuitTrack-sub000/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	estore := store.NewExpenseStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)
	pstore := store.NewPeriodStore(bs.Firestore)
	hstore := store.NewHistoryStore(bs.Firestore)

	// cache
	pcache := cache.NewPeriodDataCache(bs.Redis, time.Duration(cfg.CacheTTL)*time.Second)

	// services
	userv := services.NewUserService(ustore)
	pserv := services.NewPeriodService(ustore, pstore, estore, bstore, pcache, bs.Location)
	eserv := services.NewExpenseService(estore, pserv, pcache, bs.Location)
	buserv := services.NewBudgetService(bstore, pcache)
	sserv := services.NewSettingsService(ustore, pstore, hstore, estore, bstore, pcache, bs.Location)
	iserv := services.NewInsightsService(pserv, bs.Location)
	dserv := services.NewDashboardService(pserv, bs.Location)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.ExpenseSvc = eserv
	deps.BudgetSvc = buserv
	deps.PeriodSvc = pserv
	deps.SettingsSvc = sserv
	deps.InsightsSvc = iserv
	deps.DashboardSvc = dserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
