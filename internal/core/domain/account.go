package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// ValidRole reports whether s is a role the portal knows about.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleClient
}

// Identity is the authentication record held by the identity store.
// The password hash is opaque to everything outside the store and the
// auth service.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the per-identity role. One-to-one with Identity and
// created alongside it with the default role "client".
type Profile struct {
	IdentityID string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// ClientRecord is the business-facing directory entry shown on the
// client roster. It is linked to an Identity only by matching email;
// storage does not enforce the link.
type ClientRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Caller is the resolved identity behind a bearer token, threaded
// explicitly through every administrative operation.
type Caller struct {
	IdentityID string
	Email      string
	Role       string
}

// IsAdmin reports whether the caller may perform administrative operations.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
