//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"care-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret")
	userID, companyID := uuid.New(), uuid.New()

	token, err := svc.GenerateToken(userID, "company", &companyID, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "company", claims.Role)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, companyID, *claims.CompanyID)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	svc := jwt.NewService("secret")

	expired, err := svc.GenerateToken(uuid.New(), "user", nil, -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)

	foreign, err := jwt.NewService("other").GenerateToken(uuid.New(), "user", nil, time.Hour)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("a.b.c")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_Options(t *testing.T) {
	t.Run("success: leeway accepts a token that just expired", func(t *testing.T) {
		svc := jwt.NewService("secret", jwt.WithLeeway(time.Minute))
		token, err := svc.GenerateToken(uuid.New(), "user", nil, -10*time.Second)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("error: issuer mismatch", func(t *testing.T) {
		token, err := jwt.NewService("secret", jwt.WithIssuer("https://id.other.example")).
			GenerateToken(uuid.New(), "user", nil, time.Hour)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", jwt.WithIssuer("https://id.example")).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("success: matching issuer", func(t *testing.T) {
		svc := jwt.NewService("secret", jwt.WithIssuer("https://id.example"))
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, "user", nil, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.Subject)
	})
}
