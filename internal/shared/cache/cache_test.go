package cache_test

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/shared/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes keys", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(cache.StatisticsKey).SetVal(1)

		cache.Invalidate(ctx, rdb, zap.NewNop(), cache.StatisticsKey)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error is swallowed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(cache.StatisticsKey).SetErr(errors.New("down"))

		assert.NotPanics(t, func() {
			cache.Invalidate(ctx, rdb, zap.NewNop(), cache.StatisticsKey)
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			cache.Invalidate(ctx, nil, zap.NewNop(), cache.StatisticsKey)
		})
	})
}
