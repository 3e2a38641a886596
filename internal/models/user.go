package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported user roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique, lower-cased email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`             // user or admin
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// IsAdmin reports whether the user carries the admin role.
func (u *UserDB) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// User is the public representation of a user returned by the API.
// swagger:model User
type User struct {
	// User id
	// example: 3f1c2a8e-8a43-4c8e-9c43-0d2a1f1e7b11
	ID uuid.UUID `json:"id"`

	// Display name
	// example: Jan Jansen
	Name string `json:"name"`

	// Email address
	// example: jan@example.com
	Email string `json:"email"`

	// Role
	// example: user
	Role string `json:"role"`
}

// ToUser strips private fields from a user record.
func (u *UserDB) ToUser() User {
	return User{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
