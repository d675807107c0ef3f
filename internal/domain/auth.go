// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Roles carried on user accounts and inside session tokens. Nothing branches
// on the value yet; it is stored and surfaced for the admin screens.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// User represents an admin account in the credential store. The password
// hash never leaves the server.
type User struct {
	ID           int64      `json:"id"`
	DisplayName  string     `json:"nombre"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastAccessAt *time.Time `json:"lastAccessAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// UserRepository defines the port for credential store operations.
// Lookup misses return (nil, nil), not an error.
type UserRepository interface {
	Ping(ctx context.Context) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, displayName, email, passwordHash, role string) (*User, error)
	TouchLastAccess(ctx context.Context, id int64, at time.Time) error
}
