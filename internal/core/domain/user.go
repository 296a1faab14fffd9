package domain

import "time"

// Role is the closed set of user roles. Only admins may manage employee
// records; everyone else lands on their own dashboard.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User models an authenticated actor in the system. A user is both a
// potential review recipient and a potential reviewer.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may perform management operations.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
