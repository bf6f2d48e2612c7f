// Package models contains data structures for the application's domain models.
package models

// Role designates a user's privilege level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a user account. Passwords are stored and served in
// plaintext: this application demonstrates what goes wrong when they are,
// so the JSON tag deliberately exposes the field.
type User struct {
	ID       uint   `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Email    string `json:"email" yaml:"email"`
	Bio      string `json:"bio" yaml:"bio"`
	Role     Role   `json:"role" yaml:"role"`
}

// IsAdmin reports whether the user currently holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
