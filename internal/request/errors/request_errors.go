package requesterrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeMissingFields,
		"Missing required fields",
		http.StatusBadRequest,
	)

	// ErrDuplicateRequest is a conflict, reported as 400 for compatibility.
	ErrDuplicateRequest = apperror.New(
		apperror.CodeConflict,
		"Duplicate request",
		http.StatusBadRequest,
	)

	ErrUnknownUser = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown user",
		http.StatusBadRequest,
	)

	ErrInvalidType = apperror.New(
		apperror.CodeValidationError,
		"Invalid request type",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeValidationError,
		"Invalid request status",
		http.StatusBadRequest,
	)

	ErrInvalidValue = apperror.New(
		apperror.CodeValidationError,
		"Invalid field value",
		http.StatusBadRequest,
	)

	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)

	ErrCreateRequest = apperror.New(
		apperror.CodeInternalError,
		"Error creating permission request",
		http.StatusInternalServerError,
	)

	ErrListRequests = apperror.New(
		apperror.CodeInternalError,
		"Error retrieving requests",
		http.StatusInternalServerError,
	)

	ErrListUserRequests = apperror.New(
		apperror.CodeInternalError,
		"Error retrieving user requests",
		http.StatusInternalServerError,
	)

	ErrUpdateRequest = apperror.New(
		apperror.CodeInternalError,
		"Error updating request",
		http.StatusInternalServerError,
	)

	ErrApproveRequest = apperror.New(
		apperror.CodeInternalError,
		"Error approving request",
		http.StatusInternalServerError,
	)

	ErrRejectRequest = apperror.New(
		apperror.CodeInternalError,
		"Error rejecting request",
		http.StatusInternalServerError,
	)

	ErrDeleteRequest = apperror.New(
		apperror.CodeInternalError,
		"Error deleting request",
		http.StatusInternalServerError,
	)
)
