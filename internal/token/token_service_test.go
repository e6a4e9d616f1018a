package token_test

import (
	"testing"
	"time"

	"go-leave/internal/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_IssueVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("round trip carries identity and role", func(t *testing.T) {
		svc, err := token.NewService("secret", time.Hour, token.WithClock(fixedClock(now)))
		assert.NoError(t, err)

		tok, err := svc.Issue("u1", true)
		assert.NoError(t, err)

		claims, err := svc.Verify(tok)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.True(t, claims.IsAdmin)
		assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("expired after one hour", func(t *testing.T) {
		issuer, _ := token.NewService("secret", 0, token.WithClock(fixedClock(now)))
		tok, err := issuer.Issue("u1", false)
		assert.NoError(t, err)

		later, _ := token.NewService("secret", 0, token.WithClock(fixedClock(now.Add(61*time.Minute))))
		_, err = later.Verify(tok)

		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		a, _ := token.NewService("secret-a", time.Hour)
		b, _ := token.NewService("secret-b", time.Hour)
		tok, _ := a.Issue("u1", false)

		_, err := b.Verify(tok)

		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		svc, _ := token.NewService("secret", time.Hour)

		_, err := svc.Verify("not.a.jwt")

		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		svc, _ := token.NewService("secret", time.Hour)
		claims := token.Claims{
			UserID:  "u1",
			IsAdmin: true,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = svc.Verify(unsigned)

		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("empty secret refused", func(t *testing.T) {
		_, err := token.NewService("", time.Hour)

		assert.ErrorIs(t, err, token.ErrEmptySecret)
	})
}
