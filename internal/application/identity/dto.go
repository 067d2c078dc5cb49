package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains input for account registration
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput contains input for authentication
type LoginInput struct {
	Email    string
	Password string
}

// UserResult is the application-level view of a user
type UserResult struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult carries a freshly issued token and the account it belongs to
type AuthResult struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      UserResult `json:"user"`
}
