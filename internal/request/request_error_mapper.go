package request

import (
	"errors"

	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var createPgErrors = apperror.PgErrorMap{
	apperror.PgNotNullViolation:    requesterrors.ErrMissingFields,
	apperror.PgUniqueViolation:     requesterrors.ErrDuplicateRequest,
	apperror.PgForeignKeyViolation: requesterrors.ErrUnknownUser,
	apperror.PgCheckViolation:      requesterrors.ErrInvalidValue,
}

// mapCreateError turns a failed insert into a client error when a
// constraint rejected the row, and into fallback otherwise.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == apperror.PgCheckViolation {
		switch pgErr.ConstraintName {
		case "chk_requests_type":
			return requesterrors.ErrInvalidType.WithCause(err)
		case "chk_requests_status":
			return requesterrors.ErrInvalidStatus.WithCause(err)
		}
	}

	mapped := apperror.FromPgError(err, createPgErrors)
	var appErr *apperror.AppError
	if errors.As(mapped, &appErr) {
		return mapped
	}
	return requesterrors.ErrCreateRequest.WithCause(err)
}

// mapMutationError maps a failed update or delete of a single row.
func mapMutationError(err error, fallback *apperror.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requesterrors.ErrRequestNotFound
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fallback.WithCause(err)
}
