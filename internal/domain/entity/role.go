package entity

// Role is the access tag carried by a user and embedded in the session token
type Role string

const (
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
	RoleBoth   Role = "both"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RoleAdmin, RoleBoth:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants user administration
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleBoth
}
