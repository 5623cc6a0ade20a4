package rbac

import "fmt"

// Role is one of a closed set of access levels. Route declarations parse
// through ParseRole so a typo fails loudly instead of silently granting or
// denying access.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleVisitor    Role = "visitor"
)

// AllRoles lists every valid role. A resource declared with this set admits
// any authenticated identity.
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleVisitor}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleVisitor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a stored role name into a Role.
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", name)
	}
	return r, nil
}
