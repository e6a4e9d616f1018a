package main

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go-leave/internal/config"
	"go-leave/internal/database"

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

// connectTo returns a connectFunc handing out db and counting calls.
func connectTo(db *gorm.DB, calls *int) connectFunc {
	return func(string, int) (*gorm.DB, error) {
		*calls++
		return db, nil
	}
}

func TestMigrateCmd(t *testing.T) {
	t.Run("applies the schema", func(t *testing.T) {
		db, mock := newGormMock(t)
		for _, stmt := range database.Statements() {
			mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		var calls int

		cmd := newMigrateCmd(&config.Config{}, connectTo(db, &calls))
		cmd.SetArgs([]string{})
		err := cmd.ExecuteContext(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connect failure", func(t *testing.T) {
		connect := func(string, int) (*gorm.DB, error) { return nil, errors.New("refused") }

		cmd := newMigrateCmd(&config.Config{}, connect)
		cmd.SetArgs([]string{})
		err := cmd.ExecuteContext(context.Background())

		assert.EqualError(t, err, "refused")
	})
}

func TestCreateAdminCmd(t *testing.T) {
	t.Run("empty user id is rejected before connecting", func(t *testing.T) {
		var calls int

		cmd := newCreateAdminCmd(&config.Config{}, connectTo(nil, &calls))
		cmd.SetArgs([]string{"--user-id=", "--password=secret"})
		err := cmd.ExecuteContext(context.Background())

		assert.EqualError(t, err, "--user-id is required")
		assert.Zero(t, calls)
	})

	t.Run("missing password", func(t *testing.T) {
		var calls int

		cmd := newCreateAdminCmd(&config.Config{}, connectTo(nil, &calls))
		cmd.SetArgs([]string{"--user-id=root"})
		err := cmd.ExecuteContext(context.Background())

		assert.EqualError(t, err, "--password is required")
		assert.Zero(t, calls)
	})

	t.Run("missing user id flag", func(t *testing.T) {
		var calls int

		cmd := newCreateAdminCmd(&config.Config{}, connectTo(nil, &calls))
		cmd.SetArgs([]string{"--password=secret"})
		err := cmd.ExecuteContext(context.Background())

		assert.Error(t, err)
		assert.Zero(t, calls)
	})

	t.Run("creates an admin", func(t *testing.T) {
		db, mock := newGormMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (user_id, name, email, mobile, password, is_admin)`)).
			WithArgs("root", "Root", nil, nil, sqlmock.AnyArg(), true).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "mobile", "password", "is_admin"}).
				AddRow("root", "Root", nil, nil, "hash", true))
		var calls int

		cmd := newCreateAdminCmd(&config.Config{}, connectTo(db, &calls))
		cmd.SetArgs([]string{"--user-id=root", "--password=secret", "--name=Root"})
		err := cmd.ExecuteContext(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate user id", func(t *testing.T) {
		db, mock := newGormMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(errors.New("duplicate key value"))
		var calls int

		cmd := newCreateAdminCmd(&config.Config{}, connectTo(db, &calls))
		cmd.SetArgs([]string{"--user-id=root", "--password=secret"})
		err := cmd.ExecuteContext(context.Background())

		assert.ErrorContains(t, err, `create admin "root"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
