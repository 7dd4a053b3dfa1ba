package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"github.com/redis/go-redis/v9"

	"github.com/tegarerputra/DuitTrack-sub000/internal/config"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Firebase  *auth.Client
	Redis     *redis.Client
	Location  *time.Location
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return bs, err
	}
	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	bs.Firebase, err = InitFirebase(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.Redis = InitRedis(cfg.RedisAddr)

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		bs.Firestore.Close()
	}
	if bs.Redis != nil {
		bs.Redis.Close()
	}
}
