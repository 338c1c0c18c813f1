package authorization

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleAgent    UserRole = "agent"
	RoleCustomer UserRole = "customer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsAgent() bool {
	return r == RoleAgent
}

func (r UserRole) IsCustomer() bool {
	return r == RoleCustomer
}

// IsStaff reports whether the role belongs to support staff. Staff-created
// tickets bypass the auto-assignment engine.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleAgent
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent || r == RoleCustomer
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}
