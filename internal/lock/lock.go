// Package lock serializes analysis runs per project. The reconciler's
// read-then-create logic is not safe under interleaved writers, so at
// most one analysis may hold a project's lock at a time.
package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"designmentor.app/api/common/id"
)

// ErrHeld is returned when another analysis currently holds the lock.
var ErrHeld = errors.New("lock already held")

type Locker interface {
	// Acquire takes the project lock or fails fast with ErrHeld.
	Acquire(ctx context.Context, projectID int64) (release func(), err error)
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) Locker {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisLocker{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (l *redisLocker) Acquire(ctx context.Context, projectID int64) (func(), error) {
	key := lockKey(projectID)
	token := fmt.Sprintf("%d", id.New())

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire analysis lock: %w", err)
	}
	if !ok {
		return nil, ErrHeld
	}

	release := func() {
		// Only delete the lock if we still own it; an expired lock
		// may have been re-acquired by another run.
		res, err := releaseScript.Run(context.WithoutCancel(ctx), l.client, []string{key}, token).Result()
		if err != nil {
			l.logger.WarnContext(ctx, "failed to release analysis lock", "project_id", projectID, "error", err)
			return
		}
		if n, _ := res.(int64); n == 0 {
			l.logger.WarnContext(ctx, "analysis lock expired before release", "project_id", projectID)
		}
	}

	return release, nil
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func lockKey(projectID int64) string {
	return fmt.Sprintf("analysis:lock:%d", projectID)
}
