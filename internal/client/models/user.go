package models

// User is the identity record returned by the backend. The client holds a
// read-through cache of it; the only mutation path is the backend's
// set-role endpoint.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	Department  string `json:"department,omitempty"`
	ManagerType string `json:"manager_type,omitempty"`
}

// HasRole reports whether a role has been assigned yet.
func (u *User) HasRole() bool {
	return u != nil && u.Role != RoleUnset
}

// DisplayName prefers the username and falls back to the email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
