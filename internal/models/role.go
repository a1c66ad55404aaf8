package models

// Role is the ordinal administrator rank. Comparison is numeric, never by
// string; unknown role names parse to RoleUnknown which outranks nothing.
type Role int

const (
	RoleUnknown    Role = 0
	RoleStaff      Role = 100
	RoleManager    Role = 200
	RoleAdmin      Role = 300
	RoleSuperAdmin Role = 400
	RoleOwner      Role = 500
)

var roleNames = map[Role]string{
	RoleStaff:      "staff",
	RoleManager:    "manager",
	RoleAdmin:      "admin",
	RoleSuperAdmin: "super_admin",
	RoleOwner:      "owner",
}

func ParseRole(s string) Role {
	for r, name := range roleNames {
		if name == s {
			return r
		}
	}
	return RoleUnknown
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Privileged reports whether the role triggers the deletion hard override.
func (r Role) Privileged() bool {
	return r >= RoleSuperAdmin
}
