// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
// The catalog is closed: extending it requires a code change and a
// matching row in the roles table.
type Role string

const (
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "Admin"
	// RoleFarmer indicates a farmer role.
	RoleFarmer Role = "Farmer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFarmer:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a raw role token into the closed enumeration.
// Matching is case-insensitive so authorization never depends on the
// casing of data crossing the boundary; the canonical form is returned.
func ParseRole(s string) (Role, bool) {
	switch {
	case strings.EqualFold(s, RoleAdmin.String()):
		return RoleAdmin, true
	case strings.EqualFold(s, RoleFarmer.String()):
		return RoleFarmer, true
	default:
		return "", false
	}
}
