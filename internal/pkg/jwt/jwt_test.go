//go:build unit

package jwt

import (
	"testing"
	"time"

	"badminton-club/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("round trip keeps identity and role", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken(userID, "player@example.com", user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "player@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

		token, err := svc.GenerateToken(userID, "player@example.com", user.RoleMember)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(userID, "player@example.com", user.RoleMember)
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non HMAC signing method is rejected", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: userID, Role: "admin"})
		signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
