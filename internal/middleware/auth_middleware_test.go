package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-leave/internal/config"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newAuthenticator(t *testing.T, invalidStatus int) (*middleware.Authenticator, token.Service) {
	t.Helper()

	tokens, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	rbacSvc, err := rbac.NewService(enforcer, rbac.DefaultPolicies())
	require.NoError(t, err)

	return middleware.NewAuthenticator(tokens, rbacSvc, invalidStatus), tokens
}

func newRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", guard, func(c *gin.Context) {
		claims, _ := middleware.ClaimsFrom(c)
		userID := ""
		if claims != nil {
			userID = claims.UserID
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireIdentity(t *testing.T) {
	auth, tokens := newAuthenticator(t, http.StatusUnauthorized)
	r := newRouter(auth.RequireIdentity())

	validToken, err := tokens.Issue("alice", false)
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing bearer prefix", func(t *testing.T) {
		w := doGet(r, validToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := doGet(r, "Bearer "+validToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"alice"}`, w.Body.String())
	})
}

func TestRequireIdentity_InvalidTokenStatusIsConfigurable(t *testing.T) {
	auth, _ := newAuthenticator(t, http.StatusForbidden)
	r := newRouter(auth.RequireIdentity())

	assert.Equal(t, http.StatusForbidden, doGet(r, "Bearer broken").Code)
	// A missing header is still unauthenticated.
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
}

func TestRequireIdentity_TokenFromOtherSecret(t *testing.T) {
	auth, _ := newAuthenticator(t, http.StatusUnauthorized)
	r := newRouter(auth.RequireIdentity())

	other, err := token.NewService("some-other-secret", time.Hour)
	require.NoError(t, err)
	forged, err := other.Issue("mallory", true)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+forged).Code)
}

func TestRequireRole(t *testing.T) {
	auth, tokens := newAuthenticator(t, http.StatusUnauthorized)
	r := newRouter(auth.RequireRole("requests", "approve"))

	userToken, err := tokens.Issue("bob", false)
	require.NoError(t, err)
	adminToken, err := tokens.Issue("root", true)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "Bearer "+userToken).Code)

	w := doGet(r, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"root"}`, w.Body.String())
}

func TestForLevel(t *testing.T) {
	auth, tokens := newAuthenticator(t, http.StatusUnauthorized)
	userToken, err := tokens.Issue("bob", false)
	require.NoError(t, err)

	tests := []struct {
		name       string
		level      string
		header     string
		wantStatus int
	}{
		{"none lets anonymous through", config.GuardNone, "", http.StatusOK},
		{"identity rejects anonymous", config.GuardIdentity, "", http.StatusUnauthorized},
		{"identity accepts user", config.GuardIdentity, "Bearer " + userToken, http.StatusOK},
		{"admin rejects user", config.GuardAdmin, "Bearer " + userToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(auth.ForLevel(tt.level, "dashboard", "read"))
			assert.Equal(t, tt.wantStatus, doGet(r, tt.header).Code)
		})
	}
}
