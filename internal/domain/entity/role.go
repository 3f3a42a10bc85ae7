// Package entity contains the core business objects of the bakery.
package entity

import "slices"

// Role represents the job a user performs in the bakery.
type Role string

const (
	// RoleBarista takes and hands out orders at the counter.
	RoleBarista Role = "barista"
	// RoleBaker prepares the ordered products.
	RoleBaker Role = "baker"
	// RoleAdmin manages products, users and pickup locations.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBarista, RoleBaker, RoleAdmin:
		return true
	default:
		return false
	}
}

// AllRoles lists every known role in display order.
func AllRoles() []Role {
	return []Role{RoleBarista, RoleBaker, RoleAdmin}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
