// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrative role.
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

// RoleFromHint maps the registration role hint to a Role.
// Only a case-insensitive "admin" yields RoleAdmin; every other value,
// including the empty string, yields RoleUser.
func RoleFromHint(hint string) Role {
	if strings.EqualFold(hint, string(RoleAdmin)) {
		return RoleAdmin
	}

	return RoleUser
}

// RoleFromString converts a stored role string to a Role, defaulting to
// RoleUser for anything outside the closed set.
func RoleFromString(s string) Role {
	role := Role(strings.ToLower(s))
	if role.IsValid() {
		return role
	}

	return RoleUser
}
