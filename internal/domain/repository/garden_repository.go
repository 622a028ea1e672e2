package repository

import (
	"context"
	"errors"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGardenNotFound is a domain-specific error returned when a garden is not found.
var ErrGardenNotFound = errors.New("garden not found")

// GardenRepository defines the standard operations for garden persistence.
type GardenRepository interface {
	// FindAll retrieves every garden listing.
	FindAll(ctx context.Context) ([]*entity.Garden, error)

	// FindByID retrieves a single garden by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Garden, error)

	// FindByOwnerID retrieves all gardens listed by the given owner.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Garden, error)

	// FindAvailable retrieves gardens with at least one available plot.
	FindAvailable(ctx context.Context) ([]*entity.Garden, error)

	// SearchByName retrieves gardens whose name contains the query, case-insensitively.
	SearchByName(ctx context.Context, query string) ([]*entity.Garden, error)

	// Save persists the garden, creating it when new and updating it otherwise.
	Save(ctx context.Context, garden *entity.Garden) error

	// ExistsByID reports whether a garden with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByID hard-deletes the garden. Deleting an absent ID is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
