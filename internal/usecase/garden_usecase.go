package usecase

import (
	"context"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveGardenInput defines the data required to create or update a garden
// listing.
type SaveGardenInput struct {
	Name              string
	Description       string
	Address           string
	Latitude          float64
	Longitude         float64
	TotalPlots        int
	AvailablePlots    int
	BasePricePerMonth float64
	SizeSqm           float64
	OwnerID           uuid.UUID
	Amenities         []string
	Images            []string
}

// NearbyGardensInput defines the parameters of a proximity search.
type NearbyGardensInput struct {
	Latitude  float64
	Longitude float64
	// RadiusKm bounds the search; results are ordered nearest first.
	RadiusKm float64
}

// GardenUsecase defines the interface for garden listing operations.
type GardenUsecase interface {
	// ListGardens retrieves every garden listing.
	ListGardens(ctx context.Context) ([]*entity.Garden, error)

	// GetGarden retrieves a single garden by ID.
	GetGarden(ctx context.Context, id uuid.UUID) (*entity.Garden, error)

	// ListGardensByOwner retrieves gardens listed by the given owner.
	ListGardensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Garden, error)

	// ListAvailableGardens retrieves gardens with at least one open plot.
	ListAvailableGardens(ctx context.Context) ([]*entity.Garden, error)

	// SearchGardens retrieves gardens whose name matches the query.
	SearchGardens(ctx context.Context, query string) ([]*entity.Garden, error)

	// FindNearbyGardens retrieves gardens within the radius, nearest first.
	FindNearbyGardens(ctx context.Context, input NearbyGardensInput) ([]*entity.Garden, error)

	// CreateGarden persists a new garden listing.
	CreateGarden(ctx context.Context, input SaveGardenInput) (*entity.Garden, error)

	// UpdateGarden overwrites an existing garden listing.
	UpdateGarden(ctx context.Context, id uuid.UUID, input SaveGardenInput) (*entity.Garden, error)

	// DeleteGarden hard-deletes a garden. The boolean reports whether
	// the garden existed.
	DeleteGarden(ctx context.Context, id uuid.UUID) (bool, error)
}
