package dashboard

import (
	"context"
	"encoding/json"
	"time"

	dashboarderrors "go-leave/internal/dashboard/errors"
	"go-leave/internal/shared/cache"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// loadTimeout bounds a shared load; it outlives the caller that started it.
	loadTimeout = 10 * time.Second
	// claimPrefix marks the cache key while a load is in flight.
	claimPrefix = "loading:"
)

// storeIfClaimed writes the statistics only if the claim placed before the
// load is still there. cache.Invalidate deletes it, so counts read before a
// committed write are never stored.
var storeIfClaimed = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
end
return 0
`)

type Service interface {
	Statistics(ctx context.Context) (Statistics, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	ttl      time.Duration
	sf       *singleflight.Group
	newClaim func() string
	logger   *zap.Logger
}

// NewService builds the aggregator. A nil rdb or a non-positive ttl
// disables caching.
func NewService(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		ttl:      ttl,
		sf:       &singleflight.Group{},
		newClaim: func() string { return claimPrefix + uuid.NewString() },
		logger:   l,
	}
}

func (s *service) cacheEnabled() bool {
	return s.rdb != nil && s.ttl > 0
}

func (s *service) Statistics(ctx context.Context) (Statistics, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.cacheEnabled() {
		if cached, err := s.rdb.Get(ctx, cache.StatisticsKey).Bytes(); err == nil {
			var stats Statistics
			if json.Unmarshal(cached, &stats) == nil {
				log.Debug("statistics served from cache")
				return stats, nil
			}
		}
	}

	ch := s.sf.DoChan(cache.StatisticsKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return s.load(loadCtx, log)
	})

	select {
	case <-ctx.Done():
		return Statistics{}, dashboarderrors.ErrStatistics.WithCause(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return Statistics{}, res.Err
		}
		if res.Shared {
			log.Debug("statistics load shared with a concurrent caller")
		}
		return res.Val.(Statistics), nil
	}
}

func (s *service) load(ctx context.Context, log *zap.Logger) (Statistics, error) {
	claim := s.claim(ctx, log)

	groups, err := s.repo.CountRequests(ctx)
	if err != nil {
		log.Error("count requests failed", zap.Error(err))
		return Statistics{}, dashboarderrors.ErrStatistics.WithCause(err)
	}
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		log.Error("count users failed", zap.Error(err))
		return Statistics{}, dashboarderrors.ErrStatistics.WithCause(err)
	}

	stats := Fold(users, groups)

	if claim != "" {
		if data, err := json.Marshal(stats); err == nil {
			err := storeIfClaimed.Run(ctx, s.rdb, []string{cache.StatisticsKey},
				claim, string(data), s.ttl.Milliseconds()).Err()
			if err != nil {
				log.Warn("statistics cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// claim marks the empty cache key as being loaded and returns the marker,
// or "" when the result must not be cached.
func (s *service) claim(ctx context.Context, log *zap.Logger) string {
	if !s.cacheEnabled() {
		return ""
	}
	claim := s.newClaim()
	ok, err := s.rdb.SetNX(ctx, cache.StatisticsKey, claim, loadTimeout).Result()
	if err != nil {
		log.Warn("statistics cache claim failed", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return claim
}
