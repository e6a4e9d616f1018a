package usererrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	// ErrUserNotFoundBadRequest is what removeadmin answers for an unknown
	// user; existing clients expect a 400 there.
	ErrUserNotFoundBadRequest = apperror.New(
		apperror.CodeInvalidInput,
		"User not found",
		http.StatusBadRequest,
	)

	ErrListUsers = apperror.New(
		apperror.CodeInternalError,
		"Error retrieving users",
		http.StatusInternalServerError,
	)

	ErrGetUser = apperror.New(
		apperror.CodeInternalError,
		"Error retrieving user",
		http.StatusInternalServerError,
	)

	ErrDeleteUser = apperror.New(
		apperror.CodeInternalError,
		"Error deleting user",
		http.StatusInternalServerError,
	)

	ErrUpdateUser = apperror.New(
		apperror.CodeInternalError,
		"Error updating user",
		http.StatusInternalServerError,
	)
)
