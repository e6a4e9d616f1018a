package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-leave/internal/config"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextClaims  = "claims"
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// GuardError is a failed guard: the status to answer with and why.
type GuardError struct {
	Status int
	Reason string
}

// Guard is one step of the auth chain. It returns nil to let the request
// through.
type Guard func(c *gin.Context) *GuardError

// Chain runs guards in order before the handler. The first failing guard
// aborts with its bare status code and no body.
func Chain(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, g := range guards {
			if gerr := g(c); gerr != nil {
				contextutil.GetLogger(c.Request.Context(), zap.L()).Named("auth").Debug("guard rejected request",
					zap.String("method", c.Request.Method),
					zap.String("path", c.FullPath()),
					zap.Int("status", gerr.Status),
					zap.String("reason", gerr.Reason),
				)
				c.AbortWithStatus(gerr.Status)
				return
			}
		}
		c.Next()
	}
}

type Authenticator struct {
	tokens             token.Service
	rbac               rbac.Service
	invalidTokenStatus int
}

// NewAuthenticator builds the guards. invalidTokenStatus is what a present
// but unverifiable token yields; 0 means 401.
func NewAuthenticator(tokens token.Service, rbacService rbac.Service, invalidTokenStatus int) *Authenticator {
	if invalidTokenStatus == 0 {
		invalidTokenStatus = http.StatusUnauthorized
	}
	return &Authenticator{
		tokens:             tokens,
		rbac:               rbacService,
		invalidTokenStatus: invalidTokenStatus,
	}
}

// Identity requires a verifiable bearer token and attaches its claims to
// the gin context and the request context.
func (a *Authenticator) Identity() Guard {
	return func(c *gin.Context) *GuardError {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return &GuardError{Status: http.StatusUnauthorized, Reason: "missing authorization header"}
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return &GuardError{Status: a.invalidTokenStatus, Reason: "malformed authorization header"}
		}

		claims, err := a.tokens.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			reason := "token verification failed"
			if !errors.Is(err, token.ErrInvalidToken) {
				reason = err.Error()
			}
			return &GuardError{Status: a.invalidTokenStatus, Reason: reason}
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)

		ctx := contextutil.WithIdentity(c.Request.Context(), claims.UserID, claims.IsAdmin)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", claims.UserID))
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)
		return nil
	}
}

// Role requires that the caller's role may perform action on resource.
// It must run after Identity.
func (a *Authenticator) Role(resource, action string) Guard {
	return func(c *gin.Context) *GuardError {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return &GuardError{Status: http.StatusUnauthorized, Reason: "identity guard did not run"}
		}

		allowed, err := a.rbac.Enforce(rbac.EnforceRequest{
			Role:     rbac.RoleOf(claims.IsAdmin),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			return &GuardError{Status: http.StatusInternalServerError, Reason: err.Error()}
		}
		if !allowed {
			return &GuardError{Status: http.StatusForbidden, Reason: "missing permission " + resource + ":" + action}
		}
		return nil
	}
}

func (a *Authenticator) RequireIdentity() gin.HandlerFunc {
	return Chain(a.Identity())
}

func (a *Authenticator) RequireRole(resource, action string) gin.HandlerFunc {
	return Chain(a.Identity(), a.Role(resource, action))
}

// ForLevel resolves a configured guard level (none, identity, admin).
func (a *Authenticator) ForLevel(level, resource, action string) gin.HandlerFunc {
	switch level {
	case config.GuardIdentity:
		return a.RequireIdentity()
	case config.GuardAdmin:
		return a.RequireRole(resource, action)
	default:
		return Chain()
	}
}

func ClaimsFrom(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok && claims != nil
}
