package user_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-leave/internal/shared/cache"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/user"
	usererrors "go-leave/internal/user/errors"
	userMock "go-leave/internal/user/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo, nil)
	ctx := context.Background()

	t.Run("includes password hashes", func(t *testing.T) {
		repo.EXPECT().FindAll(ctx).Return([]user.User{
			{UserID: "alice", Name: strPtr("Alice"), Password: "$2a$10$hash"},
		}, nil)

		users, err := svc.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "$2a$10$hash", users[0].Password)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo.EXPECT().FindAll(ctx).Return(nil, nil)

		users, err := svc.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := svc.List(ctx)
		assert.ErrorIs(t, err, usererrors.ErrListUsers)
	})
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo, nil)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, "alice").Return(&user.User{UserID: "alice"}, nil)
	u, err := svc.Get(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.UserID)

	repo.EXPECT().FindByID(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := user.NewService(repo, rdb)
	ctx := context.Background()

	t.Run("deletes and invalidates statistics", func(t *testing.T) {
		repo.EXPECT().Delete(ctx, "alice").Return(true, nil)
		redisMock.ExpectDel(cache.StatisticsKey).SetVal(1)

		err := svc.Delete(ctx, "alice")
		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		repo.EXPECT().Delete(ctx, "ghost").Return(false, nil)

		err := svc.Delete(ctx, "ghost")
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestService_AdminFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo, nil)
	ctx := context.Background()

	t.Run("make admin", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, "bob").Return(&user.User{UserID: "bob"}, nil)
		repo.EXPECT().SetAdmin(ctx, "bob", true).Return(nil)

		assert.NoError(t, svc.MakeAdmin(ctx, "bob"))
	})

	t.Run("remove admin", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, "bob").Return(&user.User{UserID: "bob", IsAdmin: true}, nil)
		repo.EXPECT().SetAdmin(ctx, "bob", false).Return(nil)

		assert.NoError(t, svc.RemoveAdmin(ctx, "bob"))
	})

	t.Run("make admin on unknown user is 404", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		err := svc.MakeAdmin(ctx, "ghost")
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("remove admin on unknown user is 400", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		err := svc.RemoveAdmin(ctx, "ghost")
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
		assert.Equal(t, "User not found", apperror.ToHTTP(err).Message)
	})
}
