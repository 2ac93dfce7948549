//go:build unit

package user_test

import (
	"testing"

	"care-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	_, err := user.NewPrincipal(uuid.Nil, user.RoleMember, nil)
	require.ErrorIs(t, err, user.ErrMissingPrincipalID)

	_, err = user.NewPrincipal(uuid.New(), "guest", nil)
	require.ErrorIs(t, err, user.ErrInvalidRole)

	companyID := uuid.New()
	p, err := user.NewPrincipal(uuid.New(), user.RoleCompany, &companyID)
	require.NoError(t, err)
	assert.Equal(t, &companyID, p.CompanyID())
}

func TestPrincipalAccess(t *testing.T) {
	requesterID := uuid.New()
	specialistID := uuid.New()

	cases := []struct {
		name      string
		id        uuid.UUID
		role      user.Role
		canView   bool
		canActFor bool
	}{
		{name: "owner", id: requesterID, role: user.RoleMember, canView: true, canActFor: true},
		{name: "other member", id: uuid.New(), role: user.RoleMember, canView: false, canActFor: false},
		{name: "assigned specialist", id: specialistID, role: user.RoleSpecialist, canView: true, canActFor: false},
		{name: "other specialist", id: uuid.New(), role: user.RoleSpecialist, canView: false, canActFor: false},
		{name: "member sharing the specialist id", id: specialistID, role: user.RoleMember, canView: false, canActFor: false},
		{name: "admin", id: uuid.New(), role: user.RoleAdmin, canView: true, canActFor: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := user.NewPrincipal(c.id, c.role, nil)
			require.NoError(t, err)

			assert.Equal(t, c.canView, p.CanView(requesterID, specialistID))
			assert.Equal(t, c.canActFor, p.CanActFor(requesterID))
		})
	}
}

func TestNewRole(t *testing.T) {
	r, err := user.NewRole("specialist")
	require.NoError(t, err)
	assert.Equal(t, user.RoleSpecialist, r)

	_, err = user.NewRole("Admin")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}
