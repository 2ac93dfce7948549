//go:build unit || e2e

package builder

import (
	"care-booking/internal/domain/user"

	"github.com/google/uuid"
)

func Member(id uuid.UUID) user.Principal {
	return mustPrincipal(id, user.RoleMember)
}

func Admin() user.Principal {
	return mustPrincipal(uuid.New(), user.RoleAdmin)
}

func Specialist(id uuid.UUID) user.Principal {
	return mustPrincipal(id, user.RoleSpecialist)
}

func mustPrincipal(id uuid.UUID, role user.Role) user.Principal {
	p, err := user.NewPrincipal(id, role, nil)
	if err != nil {
		panic(err)
	}
	return p
}
