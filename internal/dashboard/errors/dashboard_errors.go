package dashboarderrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var ErrStatistics = apperror.New(
	apperror.CodeInternalError,
	"Error retrieving statistics",
	http.StatusInternalServerError,
)
