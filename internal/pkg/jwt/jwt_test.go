//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleStaff)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "staff", claims.Role)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
		assert.NotEmpty(t, claims.ID)

		actor, err := claims.Actor()
		require.NoError(t, err)
		assert.Equal(t, user.NewActor(userID, user.RoleStaff), actor)
	})

	t.Run("unknown role cannot be issued", func(t *testing.T) {
		_, err := svc.GenerateToken(userID, user.Role("owner"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired beyond the allowed skew", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: userID,
			Role:   "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		claims := jwt.Claims{UserID: userID, Role: "admin", RegisteredClaims: gojwt.RegisteredClaims{Issuer: jwt.Issuer}}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("claims with an unknown role", func(t *testing.T) {
		_, err := (&jwt.Claims{UserID: userID, Role: "root"}).Actor()
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
