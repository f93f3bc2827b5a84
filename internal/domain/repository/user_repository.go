// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pluvio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user, filling in the generated id.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
