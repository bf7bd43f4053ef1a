package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Drivers and passengers share the
// same account type; the distinction is per ride, not per user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PhoneNumber  string    `db:"phone_number" json:"phone_number"`
	Name         string    `db:"name" json:"name,omitempty"`
	Email        string    `db:"email" json:"email,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	PhoneNumber string `json:"phone"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	PhoneNumber string `json:"phone"`
	Password    string `json:"password"`
}

// AuthResponse carries a signed token and the authenticated user
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
