package apperror

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	PgNotNullViolation    = "23502"
	PgForeignKeyViolation = "23503"
	PgUniqueViolation     = "23505"
	PgCheckViolation      = "23514"
)

// PgCode returns the SQLSTATE carried by err, or "" when err did not
// come from postgres.
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// PgErrorMap maps SQLSTATE codes to the error a repository caller should see.
type PgErrorMap map[string]*AppError

// FromPgError translates constraint violations using m. Anything not listed
// is returned unchanged.
func FromPgError(err error, m PgErrorMap) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if mapped, ok := m[pgErr.Code]; ok && mapped != nil {
		return mapped.WithCause(err)
	}
	return err
}
