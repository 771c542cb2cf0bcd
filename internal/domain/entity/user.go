package entity

import "time"

// Role represents the type of role a user can have in the system.
// It is the sole authorization signal consulted by the admin gate.
type Role string

const (
	// RoleUser indicates a regular shopper.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator with dashboard access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is a backend-managed account record. Identity (login sessions) lives
// with the external identity provider; this record carries profile data and
// the role. Email is immutable after creation and keys most user endpoints.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Photo     string    `json:"photo,omitempty"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may access the admin dashboard.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
