package runlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/ports/secondary"
)

const lockKey = "cgrader:run_in_flight"

var _ secondary.RunLock = (*RedisRunLock)(nil)

// RedisRunLock enforces the one-grading-run-at-a-time rule with a SET NX key.
// The TTL guards against a crashed run holding the lock forever; it must cover
// the worst-case run (scenario timeout times catalog size) plus slack.
type RedisRunLock struct {
	redisClient *redis.Client
	ttl         time.Duration
	logger      primary.Logger
}

func NewRedisRunLock(redisClient *redis.Client, ttl time.Duration, logger primary.Logger) *RedisRunLock {
	return &RedisRunLock{
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

// Acquire takes the lock, returning false when another run holds it
func (l *RedisRunLock) Acquire(ctx context.Context) (bool, error) {
	ok, err := l.redisClient.SetNX(ctx, lockKey, time.Now().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	return ok, nil
}

// Release frees the lock
func (l *RedisRunLock) Release(ctx context.Context) error {
	if err := l.redisClient.Del(ctx, lockKey).Err(); err != nil {
		return fmt.Errorf("failed to release run lock: %w", err)
	}
	return nil
}
