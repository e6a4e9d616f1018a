package user

import (
	"context"
	"errors"

	"go-leave/internal/shared/cache"
	"go-leave/internal/shared/contextutil"
	usererrors "go-leave/internal/user/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, userID string) (*User, error)
	Delete(ctx context.Context, userID string) error
	MakeAdmin(ctx context.Context, userID string) error
	RemoveAdmin(ctx context.Context, userID string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewService wires the user service. rdb may be nil, in which case the
// dashboard cache is not invalidated.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("list users failed", zap.Error(err))
		return nil, usererrors.ErrListUsers.WithCause(err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

func (s *service) Get(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		s.log(ctx).Error("get user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, usererrors.ErrGetUser.WithCause(err)
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, userID string) error {
	log := s.log(ctx)

	deleted, err := s.repo.Delete(ctx, userID)
	if err != nil {
		log.Error("delete user failed", zap.String("user_id", userID), zap.Error(err))
		return usererrors.ErrDeleteUser.WithCause(err)
	}
	if !deleted {
		return usererrors.ErrUserNotFound
	}

	cache.Invalidate(ctx, s.rdb, log, cache.StatisticsKey)
	log.Info("user deleted", zap.String("user_id", userID))
	return nil
}

func (s *service) MakeAdmin(ctx context.Context, userID string) error {
	return s.setAdmin(ctx, userID, true, usererrors.ErrUserNotFound)
}

func (s *service) RemoveAdmin(ctx context.Context, userID string) error {
	return s.setAdmin(ctx, userID, false, usererrors.ErrUserNotFoundBadRequest)
}

// setAdmin reads the user first and then writes the flag. The two steps
// are not atomic; a concurrent delete between them is a silent no-op.
func (s *service) setAdmin(ctx context.Context, userID string, isAdmin bool, notFound error) error {
	log := s.log(ctx)

	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		log.Error("lookup user failed", zap.String("user_id", userID), zap.Error(err))
		return usererrors.ErrUpdateUser.WithCause(err)
	}

	if err := s.repo.SetAdmin(ctx, userID, isAdmin); err != nil {
		log.Error("update admin flag failed", zap.String("user_id", userID), zap.Error(err))
		return usererrors.ErrUpdateUser.WithCause(err)
	}

	log.Info("admin flag updated", zap.String("user_id", userID), zap.Bool("is_admin", isAdmin))
	return nil
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}
