package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAuth carries the credential fields needed for login and token issuing.
type UserAuth struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRole is one row of the user_roles table. Roles are additive; a user
// without an "admin" row is a regular user.
type UserRole struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

const RoleAdmin = "admin"
