package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the caller's platform role as carried in the access token.
// Members and company employees book for themselves; specialists only
// read the sessions assigned to them.
type Role string

const (
	RoleMember     Role = "user"
	RoleCompany    Role = "company"
	RoleSpecialist Role = "specialist"
	RoleAdmin      Role = "admin"
)

// BookingRoles may open booking drafts and reschedule.
var BookingRoles = []Role{RoleMember, RoleCompany, RoleAdmin}

var knownRoles = map[Role]struct{}{
	RoleMember:     {},
	RoleCompany:    {},
	RoleSpecialist: {},
	RoleAdmin:      {},
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := knownRoles[r]
	return ok
}

func NewRole(s string) (Role, error) {
	if r := Role(s); r.IsValid() {
		return r, nil
	}
	return "", ErrInvalidRole
}
