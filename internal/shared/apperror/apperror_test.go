package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Request not found", http.StatusNotFound)

		got := apperror.ToHTTP(fmt.Errorf("lookup: %w", err))

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, "Request not found", got.Message)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})
}

func TestFromPgError(t *testing.T) {
	missing := apperror.New(apperror.CodeMissingFields, "Missing required fields", http.StatusBadRequest)
	m := apperror.PgErrorMap{apperror.PgNotNullViolation: missing}

	t.Run("mapped code", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: apperror.PgNotNullViolation}

		err := apperror.FromPgError(pgErr, m)

		assert.ErrorIs(t, err, missing)
		assert.ErrorIs(t, err, pgErr)
	})

	t.Run("unmapped code passes through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: apperror.PgCheckViolation}

		err := apperror.FromPgError(pgErr, m)

		assert.Same(t, pgErr, err)
	})

	t.Run("non postgres error passes through", func(t *testing.T) {
		plain := errors.New("connection reset")

		assert.Equal(t, plain, apperror.FromPgError(plain, m))
		assert.Equal(t, "", apperror.PgCode(plain))
	})
}
