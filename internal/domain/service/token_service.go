package service

import (
	"github.com/google/uuid"
)

// TokenService issues and validates session tokens. The original system had
// no session abstraction at all; this interface exists so that routes can be
// gated later without touching the login flow.
type TokenService interface {
	// GenerateToken creates a signed session token for a user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks a token and returns the user id it was issued for.
	ValidateToken(tokenString string) (uuid.UUID, error)
}
