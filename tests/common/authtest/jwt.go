//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"care-booking/internal/domain/user"
	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity provider would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role.String(), nil, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateCompanyToken(t *testing.T, userID, companyID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role.String(), &companyID, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role.String(), nil, -time.Minute)
	require.NoError(t, err)
	return token
}
