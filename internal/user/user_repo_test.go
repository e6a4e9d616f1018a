package user_test

import (
	"context"
	"regexp"
	"testing"

	"go-leave/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return db, mock
}

func TestRepository_CreateSendsNullForMissingID(t *testing.T) {
	db, mock := newGormMock(t)
	repo := user.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (user_id, name, email, mobile, password, is_admin)`)).
		WithArgs(nil, nil, nil, nil, "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "mobile", "password", "is_admin"}))

	u := &user.User{Password: "hash"}
	err := repo.Create(context.Background(), u)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock := newGormMock(t)
	repo := user.NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE user_id = $1`)).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE user_id = $1`)).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "alice")
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "alice")
	assert.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
