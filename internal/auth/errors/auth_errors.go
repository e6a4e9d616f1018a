package autherrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrPasswordRequired = apperror.New(
		apperror.CodeValidationError,
		"Password is required",
		http.StatusBadRequest,
	)

	// ErrInvalidCredentials is returned for an unknown user and for a wrong
	// password alike.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid credentials",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"User not found",
		http.StatusBadRequest,
	)

	ErrCreateUser = apperror.New(
		apperror.CodeInternalError,
		"Error creating user",
		http.StatusInternalServerError,
	)

	ErrSignin = apperror.New(
		apperror.CodeInternalError,
		"Error logging in",
		http.StatusInternalServerError,
	)

	ErrChangePassword = apperror.New(
		apperror.CodeInternalError,
		"Error changing password",
		http.StatusInternalServerError,
	)
)
