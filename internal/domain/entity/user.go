package entity

import "strings"

// User is a member of the bakery staff who can sign in.
type User struct {
	ID           int64  // Server-assigned identifier, zero until persisted.
	Version      int    // Optimistic-lock version.
	Email        string // Unique login, stored lower-cased.
	PasswordHash string // bcrypt hash, never the plain password.
	FirstName    string
	LastName     string
	Role         Role
	Locked       bool // Locked users cannot be modified or deleted.
}

// NormalizeEmail lower-cases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsNew reports whether the user has not been persisted yet.
func (u *User) IsNew() bool {
	return u.ID == 0
}
