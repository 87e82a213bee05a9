package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
)

const (
	dayKeyPrefix     = "appointments:date:"
	versionKeyPrefix = "appointments:version:"

	versionTTL = 48 * time.Hour
)

// DaySnapshotCache stores the booked intervals of a date in Redis as JSON.
type DaySnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDaySnapshotCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DaySnapshotCache {
	return &DaySnapshotCache{client: client, ttl: ttl, logger: logger}
}

func DayKey(date string) string {
	return dayKeyPrefix + date
}

func VersionKey(date string) string {
	return versionKeyPrefix + date
}

// Version reads the date's invalidation counter. A missing key is version 0.
func (c *DaySnapshotCache) Version(ctx context.Context, date string) int64 {
	if c.client == nil {
		return -1
	}

	v, err := c.client.Get(ctx, VersionKey(date)).Int64()
	switch {
	case err == redis.Nil:
		return 0
	case err != nil:
		c.logger.Warn("day snapshot version read failed", zap.String("date", date), zap.Error(err))
		return -1
	}
	return v
}

func (c *DaySnapshotCache) Get(ctx context.Context, date string) ([]domain.Booked, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, DayKey(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("day snapshot read failed", zap.String("date", date), zap.Error(err))
		}
		return nil, false
	}

	var booked []domain.Booked
	if err := json.Unmarshal(raw, &booked); err != nil {
		c.logger.Warn("day snapshot corrupt", zap.String("date", date), zap.Error(err))
		return nil, false
	}

	return booked, true
}

// Set writes the snapshot under WATCH on the version key, so it is skipped
// when an Invalidate ran after version was read.
func (c *DaySnapshotCache) Set(ctx context.Context, date string, version int64, booked []domain.Booked) {
	if c.client == nil || version < 0 {
		return
	}

	if booked == nil {
		booked = []domain.Booked{}
	}
	payload, err := json.Marshal(booked)
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, VersionKey(date)).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != version {
			return errStaleSnapshot
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, DayKey(date), payload, c.ttl)
			return nil
		})
		return err
	}, VersionKey(date))

	switch {
	case err == nil:
	case errors.Is(err, errStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("day snapshot skipped, date changed during read", zap.String("date", date))
	default:
		c.logger.Warn("day snapshot write failed", zap.String("date", date), zap.Error(err))
	}
}

var errStaleSnapshot = errors.New("day snapshot is stale")

func (c *DaySnapshotCache) Invalidate(ctx context.Context, date string) {
	if c.client == nil {
		return
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, VersionKey(date))
		pipe.Expire(ctx, VersionKey(date), versionTTL)
		pipe.Del(ctx, DayKey(date))
		return nil
	})
	if err != nil {
		c.logger.Warn("day snapshot invalidate failed", zap.String("date", date), zap.Error(err))
	}
}

var _ domain.DaySnapshotCache = (*DaySnapshotCache)(nil)
