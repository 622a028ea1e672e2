package usecase

import (
	"context"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the mutable part of a user profile. Role and
// email are immutable through this path.
type UpdateProfileInput struct {
	FullName  string
	AvatarURL string
}

// UserUsecase defines the interface for user account operations.
type UserUsecase interface {
	// ListUsers retrieves every registered account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser retrieves a single account by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateProfile mutates the profile fields of an account.
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*entity.User, error)
}
