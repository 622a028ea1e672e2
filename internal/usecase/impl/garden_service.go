package impl

import (
	"context"
	"sort"
	"time"

	"gardenspace/internal/domain/entity"
	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/repository"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNearbyRadiusKm = 10.0

type gardenService struct {
	gardenRepo repository.GardenRepository
}

// GardenServiceParams holds dependencies for GardenService, injected by Fx.
type GardenServiceParams struct {
	fx.In

	GardenRepo repository.GardenRepository
}

// NewGardenService creates a new garden service instance
func NewGardenService(params GardenServiceParams) usecase.GardenUsecase {
	return &gardenService{
		gardenRepo: params.GardenRepo,
	}
}

// ListGardens retrieves every garden listing
func (s *gardenService) ListGardens(ctx context.Context) ([]*entity.Garden, error) {
	gardens, err := s.gardenRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gardens")
	}

	return gardens, nil
}

// GetGarden retrieves a single garden by ID
func (s *gardenService) GetGarden(ctx context.Context, id uuid.UUID) (*entity.Garden, error) {
	garden, err := s.gardenRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGardenNotFound) {
			return nil, domainerrors.ErrGardenNotFound
		}

		return nil, errors.Wrap(err, "failed to find garden")
	}

	return garden, nil
}

// ListGardensByOwner retrieves gardens listed by the given owner
func (s *gardenService) ListGardensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Garden, error) {
	gardens, err := s.gardenRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find gardens by owner")
	}

	return gardens, nil
}

// ListAvailableGardens retrieves gardens with at least one open plot
func (s *gardenService) ListAvailableGardens(ctx context.Context) ([]*entity.Garden, error) {
	gardens, err := s.gardenRepo.FindAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find available gardens")
	}

	return gardens, nil
}

// SearchGardens retrieves gardens whose name matches the query
func (s *gardenService) SearchGardens(ctx context.Context, query string) ([]*entity.Garden, error) {
	gardens, err := s.gardenRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search gardens")
	}

	return gardens, nil
}

// FindNearbyGardens retrieves gardens within the radius, nearest first.
// The candidate set is small enough to filter in memory; a spatial index
// would only pay off at a much larger garden count.
func (s *gardenService) FindNearbyGardens(ctx context.Context, input usecase.NearbyGardensInput) ([]*entity.Garden, error) {
	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	gardens, err := s.gardenRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gardens")
	}

	origin := orb.Point{input.Longitude, input.Latitude}

	type gardenDistance struct {
		garden *entity.Garden
		meters float64
	}

	nearby := make([]gardenDistance, 0, len(gardens))
	for _, garden := range gardens {
		meters := geo.Distance(origin, orb.Point{garden.Longitude, garden.Latitude})
		if meters <= radiusKm*1000 {
			nearby = append(nearby, gardenDistance{garden: garden, meters: meters})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].meters < nearby[j].meters
	})

	result := make([]*entity.Garden, 0, len(nearby))
	for _, gd := range nearby {
		result = append(result, gd.garden)
	}

	return result, nil
}

// CreateGarden persists a new garden listing
func (s *gardenService) CreateGarden(ctx context.Context, input usecase.SaveGardenInput) (*entity.Garden, error) {
	if err := validateGardenInput(input); err != nil {
		return nil, err
	}

	garden := &entity.Garden{
		ID:                uuid.New(),
		Name:              input.Name,
		Description:       input.Description,
		Address:           input.Address,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		TotalPlots:        input.TotalPlots,
		AvailablePlots:    input.AvailablePlots,
		BasePricePerMonth: input.BasePricePerMonth,
		SizeSqm:           input.SizeSqm,
		OwnerID:           input.OwnerID,
		Amenities:         input.Amenities,
		Images:            input.Images,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := s.gardenRepo.Save(ctx, garden); err != nil {
		return nil, err
	}

	return garden, nil
}

// UpdateGarden overwrites an existing garden listing
func (s *gardenService) UpdateGarden(ctx context.Context, id uuid.UUID, input usecase.SaveGardenInput) (*entity.Garden, error) {
	if err := validateGardenInput(input); err != nil {
		return nil, err
	}

	garden, err := s.GetGarden(ctx, id)
	if err != nil {
		return nil, err
	}

	garden.Name = input.Name
	garden.Description = input.Description
	garden.Address = input.Address
	garden.Latitude = input.Latitude
	garden.Longitude = input.Longitude
	garden.TotalPlots = input.TotalPlots
	garden.AvailablePlots = input.AvailablePlots
	garden.BasePricePerMonth = input.BasePricePerMonth
	garden.SizeSqm = input.SizeSqm
	garden.Amenities = input.Amenities
	garden.Images = input.Images
	garden.UpdatedAt = time.Now()

	if err := s.gardenRepo.Save(ctx, garden); err != nil {
		return nil, err
	}

	return garden, nil
}

// DeleteGarden hard-deletes a garden and reports whether it existed
func (s *gardenService) DeleteGarden(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.gardenRepo.ExistsByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check garden existence")
	}
	if !exists {
		return false, nil
	}

	if err := s.gardenRepo.DeleteByID(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}

func validateGardenInput(input usecase.SaveGardenInput) error {
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("garden name is required")
	}
	if input.TotalPlots < 0 || input.AvailablePlots < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("plot counts must not be negative")
	}
	if input.AvailablePlots > input.TotalPlots {
		return domainerrors.ErrValidationFailed.WrapMessage("available plots cannot exceed total plots")
	}
	if input.BasePricePerMonth < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("base price must not be negative")
	}

	return nil
}
