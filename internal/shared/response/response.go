package response

import (
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the whole body; clients of this API read rows
// directly, without an envelope.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

func Error(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// AppError writes err after flattening it with apperror.ToHTTP.
func AppError(c *gin.Context, err error) apperror.HTTPError {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	return httpErr
}
