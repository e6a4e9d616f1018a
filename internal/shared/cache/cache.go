package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StatisticsKey holds the cached dashboard statistics.
const StatisticsKey = "dashboard:statistics"

// Invalidate drops keys after a committed write. rdb may be nil. Failures
// are logged and swallowed; the entry expires on its own.
func Invalidate(ctx context.Context, rdb *redis.Client, logger *zap.Logger, keys ...string) {
	if rdb == nil || len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("failed to invalidate cache",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
}
