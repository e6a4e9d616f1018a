package auth

import (
	"context"
	"errors"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/shared/cache"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/token"
	"go-leave/internal/user"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*user.User, error)
	Signin(ctx context.Context, req SigninRequest) (SigninResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

type service struct {
	users  user.Repository
	tokens token.Service
	hasher Hasher
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(users user.Repository, tokens token.Service, hasher Hasher, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		rdb:    rdb,
		logger: l,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*user.User, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.Password == "" {
		return nil, autherrors.ErrPasswordRequired
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error("hash password failed", zap.Error(err))
		return nil, autherrors.ErrCreateUser.WithDetails(err.Error()).WithCause(err)
	}

	u := &user.User{
		UserID:   req.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: hash,
		IsAdmin:  bool(req.IsAdmin),
	}
	if err := s.users.Create(ctx, u); err != nil {
		log.Warn("create user failed", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, autherrors.ErrCreateUser.WithDetails(err.Error()).WithCause(err)
	}

	cache.Invalidate(ctx, s.rdb, log, cache.StatisticsKey)

	log.Info("user signed up", zap.String("user_id", u.UserID), zap.Bool("is_admin", u.IsAdmin))
	return u, nil
}

func (s *service) Signin(ctx context.Context, req SigninRequest) (SigninResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("signin for unknown user", zap.String("user_id", req.UserID))
			return SigninResponse{}, autherrors.ErrInvalidCredentials
		}
		log.Error("signin lookup failed", zap.Error(err))
		return SigninResponse{}, autherrors.ErrSignin.WithDetails(err.Error()).WithCause(err)
	}

	if !s.hasher.Compare(u.Password, req.Password) {
		log.Debug("signin with wrong password", zap.String("user_id", req.UserID))
		return SigninResponse{}, autherrors.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(u.UserID, u.IsAdmin)
	if err != nil {
		log.Error("issue token failed", zap.Error(err))
		return SigninResponse{}, autherrors.ErrSignin.WithDetails(err.Error()).WithCause(err)
	}

	log.Info("user signed in", zap.String("user_id", u.UserID))
	return SigninResponse{Token: tok, User: u.Public()}, nil
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		log.Error("change password lookup failed", zap.Error(err))
		return autherrors.ErrChangePassword.WithCause(err)
	}

	if req.NewPassword == "" {
		return autherrors.ErrPasswordRequired
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Error("hash password failed", zap.Error(err))
		return autherrors.ErrChangePassword.WithCause(err)
	}

	if err := s.users.UpdatePassword(ctx, req.UserID, hash); err != nil {
		log.Error("update password failed", zap.String("user_id", req.UserID), zap.Error(err))
		return autherrors.ErrChangePassword.WithCause(err)
	}

	log.Info("password changed", zap.String("user_id", req.UserID))
	return nil
}
