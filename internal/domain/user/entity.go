package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrMissingPrincipalID = errors.New("principal id is required")

// Principal is the authenticated caller as asserted by the identity
// provider. Accounts themselves live outside this service.
type Principal struct {
	id        uuid.UUID
	role      Role
	companyID *uuid.UUID
}

func NewPrincipal(id uuid.UUID, role Role, companyID *uuid.UUID) (Principal, error) {
	if id == uuid.Nil {
		return Principal{}, ErrMissingPrincipalID
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	return Principal{id: id, role: role, companyID: companyID}, nil
}

func (p Principal) ID() uuid.UUID         { return p.id }
func (p Principal) Role() Role            { return p.role }
func (p Principal) CompanyID() *uuid.UUID { return p.companyID }

func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// CanView reports whether the principal may read a booking owned by
// requesterID and assigned to specialistID.
func (p Principal) CanView(requesterID, specialistID uuid.UUID) bool {
	return p.IsAdmin() || p.id == requesterID || (p.role == RoleSpecialist && p.id == specialistID)
}

// CanActFor reports whether the principal may drive a booking flow owned by requesterID.
func (p Principal) CanActFor(requesterID uuid.UUID) bool {
	return p.IsAdmin() || p.id == requesterID
}
