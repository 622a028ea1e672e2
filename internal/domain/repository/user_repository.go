// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Email comparison is exact; the store does not fold case.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user record.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Save persists the user, creating it when new and updating it otherwise.
	Save(ctx context.Context, user *entity.User) error
}
