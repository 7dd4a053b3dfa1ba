package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tegarerputra/DuitTrack-sub000/internal/bootstrap"
	"github.com/tegarerputra/DuitTrack-sub000/internal/cache"
	"github.com/tegarerputra/DuitTrack-sub000/internal/config"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

// The rollover worker clears the period-data cache at local midnight, when a
// new day can move the active period, so the first morning request never
// serves yesterday's bundle.
func main() {
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	pcache := cache.NewPeriodDataCache(bs.Redis, time.Duration(cfg.CacheTTL)*time.Second)

	c := cron.New(cron.WithLocation(bs.Location))
	_, err = c.AddFunc("0 0 * * *", func() {
		ctx := logger.ToContext(context.Background(), bs.Log)
		pcache.Clear(ctx)
		bs.Log.Info("period cache cleared for day rollover")
	})
	exitOnError("failed to schedule rollover job", err, bs.Log)

	c.Start()
	bs.Log.Info("rollover worker started", "timezone", cfg.Timezone)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	<-c.Stop().Done()
	bs.Log.Info("rollover worker stopped")
}
