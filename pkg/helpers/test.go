package helpers

import (
	"context"
	"log/slog"

	"github.com/tegarerputra/DuitTrack-sub000/pkg/logger"
)

// TestCtx returns a context carrying a discard logger for tests.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return logger.ToContext(context.Background(), log)
}
