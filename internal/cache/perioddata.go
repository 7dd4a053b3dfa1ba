package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/logger"
)

const keyPrefix = "perioddata"

// PeriodDataCache keeps loaded period bundles in Redis so the dashboard and
// insight endpoints don't re-read every expense document on each request.
// Entries are invalidated on any write to the period and expire on their own
// after the TTL.
type PeriodDataCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPeriodDataCache(client *redis.Client, ttl time.Duration) *PeriodDataCache {
	return &PeriodDataCache{client: client, ttl: ttl}
}

func key(uid, periodID string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, uid, periodID)
}

// Get returns the cached bundle, or nil on a miss. Cache failures are
// logged and reported as misses; the caller falls through to Firestore.
func (c *PeriodDataCache) Get(ctx context.Context, uid, periodID string) *dto.PeriodData {
	raw, err := c.client.Get(ctx, key(uid, periodID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromContext(ctx).Warn("period cache read failed", "error", err, "period_id", periodID)
		}
		return nil
	}
	var data dto.PeriodData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		logger.FromContext(ctx).Warn("period cache entry corrupt", "error", err, "period_id", periodID)
		return nil
	}
	return &data
}

// Set stores the bundle with the cache TTL. Failures are logged, never
// returned; caching is best-effort.
func (c *PeriodDataCache) Set(ctx context.Context, uid string, data *dto.PeriodData) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.FromContext(ctx).Warn("period cache encode failed", "error", err, "period_id", data.PeriodID)
		return
	}
	if err := c.client.SetEx(ctx, key(uid, data.PeriodID), raw, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn("period cache write failed", "error", err, "period_id", data.PeriodID)
	}
}

// Invalidate drops one period's entry after a write touches it.
func (c *PeriodDataCache) Invalidate(ctx context.Context, uid, periodID string) {
	if err := c.client.Del(ctx, key(uid, periodID)).Err(); err != nil {
		logger.FromContext(ctx).Warn("period cache invalidate failed", "error", err, "period_id", periodID)
	}
}

// InvalidateUser drops every cached period for one user, used after a
// reset-day change redraws period boundaries.
func (c *PeriodDataCache) InvalidateUser(ctx context.Context, uid string) {
	c.deleteByPattern(ctx, fmt.Sprintf("%s:%s:*", keyPrefix, uid))
}

// Clear drops the whole cache. The rollover worker calls this at midnight,
// when a new day can move the active period.
func (c *PeriodDataCache) Clear(ctx context.Context) {
	c.deleteByPattern(ctx, keyPrefix+":*")
}

func (c *PeriodDataCache) deleteByPattern(ctx context.Context, pattern string) {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.FromContext(ctx).Warn("period cache delete failed", "error", err, "key", iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		logger.FromContext(ctx).Warn("period cache scan failed", "error", err, "pattern", pattern)
	}
}
