// Package usecase defines the application's business interfaces and DTOs.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput carries the login request fields.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DetailsInput carries the account lookup request fields.
type DetailsInput struct {
	Email string `json:"email" validate:"required"`
}

// UserSummary is the public projection of an account.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginOutput extends the account summary with a session token.
type LoginOutput struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Token string    `json:"token,omitempty"`
}

// UserUsecase defines the account management use cases.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*UserSummary, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetDetails resolves an account id from its email. It requires no proof
	// of identity; kept for compatibility with the original client, which
	// restores sessions from a cookie holding only the email.
	GetDetails(ctx context.Context, input *DetailsInput) (*UserSummary, error)
}
