//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"ezrent/internal/domain/user"
	ezjwt "ezrent/internal/pkg/jwt"
	"ezrent/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims ezjwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestTokenValidator(t *testing.T) {
	svc := ezjwt.NewService(testSecret, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	id := uuid.New()

	t.Run("issued token yields the actor", func(t *testing.T) {
		token, err := svc.GenerateToken(id, user.RoleOwner)
		require.NoError(t, err)

		actor, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, id, actor.UserID)
		assert.Equal(t, user.RoleOwner, actor.Role)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := validator.ValidateToken("not-a-token")
		require.ErrorIs(t, err, ezjwt.ErrInvalidToken)
	})

	testCases := []struct {
		name    string
		subject string
		role    string
	}{
		{name: "subject does not match user id", subject: uuid.NewString(), role: "customer"},
		{name: "unknown role", subject: id.String(), role: "admin"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Now()
			token := signed(t, ezjwt.Claims{
				UserID: id,
				Role:   tc.role,
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    "ezrent",
					Subject:   tc.subject,
					IssuedAt:  jwt.NewNumericDate(now),
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			})

			_, err := validator.ValidateToken(token)
			require.ErrorIs(t, err, ezjwt.ErrInvalidToken)
		})
	}
}
