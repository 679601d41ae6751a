package models

// Role is the access tier assigned to an account. A new account has no
// role until one is chosen (RoleUnset).
type Role string

const (
	RoleUnset    Role = ""
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the enumerated roles. RoleUnset is a
// legal state for a session but not a requestable role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Requestable reports whether the backend accepts r on set-role.
// Admin is assigned out of band and cannot be requested.
func (r Role) Requestable() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleManager:
		return true
	default:
		return false
	}
}

// In reports whether r is a member of the allow-list.
func (r Role) In(allow []Role) bool {
	for _, a := range allow {
		if r == a {
			return true
		}
	}
	return false
}
