package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("app error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		notFound := apperror.New(apperror.CodeNotFound, "Request not found", http.StatusNotFound)
		response.AppError(c, notFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Request not found", body.Error)
		assert.Equal(t, apperror.CodeNotFound, body.Code)
		assert.Nil(t, body.Details)
	})

	t.Run("plain error hides cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.AppError(c, errors.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
	})
}
