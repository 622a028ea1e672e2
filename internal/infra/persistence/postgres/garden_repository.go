// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gardenspace/internal/domain/entity"
	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/repository"
	"gardenspace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gardenRepository implements the repository.GardenRepository interface.
type gardenRepository struct {
	db *gorm.DB
}

// NewGardenRepository is the constructor for gardenRepository.
func NewGardenRepository(db *gorm.DB) repository.GardenRepository {
	return &gardenRepository{db: db}
}

// FindAll retrieves every garden listing with its amenities and images.
func (repo *gardenRepository) FindAll(ctx context.Context) ([]*entity.Garden, error) {
	var gardenModels []*model.GardenModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Images").
		Order("created_at").
		Find(&gardenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gardens")
	}

	return toGardenDomainSlice(gardenModels), nil
}

// FindByID retrieves a single garden by its unique ID.
func (repo *gardenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Garden, error) {
	var gardenM model.GardenModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Images").
		Where("id = ?", id).
		First(&gardenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGardenNotFound
		}

		return nil, errors.Wrap(err, "failed to find garden by id")
	}

	return toGardenDomain(&gardenM), nil
}

// FindByOwnerID retrieves all gardens listed by the given owner.
func (repo *gardenRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Garden, error) {
	var gardenModels []*model.GardenModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Images").
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&gardenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gardens by owner")
	}

	return toGardenDomainSlice(gardenModels), nil
}

// FindAvailable retrieves gardens with at least one available plot.
func (repo *gardenRepository) FindAvailable(ctx context.Context) ([]*entity.Garden, error) {
	var gardenModels []*model.GardenModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Images").
		Where("available_plots > 0").
		Order("created_at").
		Find(&gardenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available gardens")
	}

	return toGardenDomainSlice(gardenModels), nil
}

// SearchByName retrieves gardens whose name contains the query, case-insensitively.
func (repo *gardenRepository) SearchByName(ctx context.Context, query string) ([]*entity.Garden, error) {
	var gardenModels []*model.GardenModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Images").
		Where("name ILIKE ?", "%"+query+"%").
		Order("created_at").
		Find(&gardenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search gardens by name")
	}

	return toGardenDomainSlice(gardenModels), nil
}

// Save persists the garden together with its amenity and image rows.
// Element rows are replaced wholesale on update.
func (repo *gardenRepository) Save(ctx context.Context, garden *entity.Garden) error {
	gardenM := fromGardenDomain(garden)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(gardenM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required garden information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save garden")
	}

	garden.ID = gardenM.ID
	garden.CreatedAt = gardenM.CreatedAt
	garden.UpdatedAt = gardenM.UpdatedAt

	return nil
}

// ExistsByID reports whether a garden with the given ID exists.
func (repo *gardenRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GardenModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check garden existence")
	}

	return count > 0, nil
}

// DeleteByID hard-deletes the garden. Deleting an absent ID is not an error.
func (repo *gardenRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GardenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete garden")
	}

	return nil
}

// --- Mapper Functions ---

// toGardenDomain converts a GORM GardenModel to a domain Garden entity.
func toGardenDomain(data *model.GardenModel) *entity.Garden {
	if data == nil {
		return nil
	}

	amenities := make([]string, 0, len(data.Amenities))
	for _, amenity := range data.Amenities {
		amenities = append(amenities, amenity.Amenity)
	}

	images := make([]string, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, image.ImageURL)
	}

	return &entity.Garden{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		Address:           data.Address,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		TotalPlots:        data.TotalPlots,
		AvailablePlots:    data.AvailablePlots,
		BasePricePerMonth: data.BasePricePerMonth,
		SizeSqm:           data.SizeSqm,
		OwnerID:           data.OwnerID,
		Amenities:         amenities,
		Images:            images,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toGardenDomainSlice(models []*model.GardenModel) []*entity.Garden {
	gardens := make([]*entity.Garden, 0, len(models))
	for _, gardenM := range models {
		gardens = append(gardens, toGardenDomain(gardenM))
	}

	return gardens
}

// fromGardenDomain converts a domain Garden entity to a GORM GardenModel for persistence.
func fromGardenDomain(data *entity.Garden) *model.GardenModel {
	if data == nil {
		return nil
	}

	amenities := make([]model.GardenAmenityModel, 0, len(data.Amenities))
	for _, amenity := range data.Amenities {
		amenities = append(amenities, model.GardenAmenityModel{
			GardenID: data.ID,
			Amenity:  amenity,
		})
	}

	images := make([]model.GardenImageModel, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, model.GardenImageModel{
			GardenID: data.ID,
			ImageURL: image,
		})
	}

	return &model.GardenModel{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		Address:           data.Address,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		TotalPlots:        data.TotalPlots,
		AvailablePlots:    data.AvailablePlots,
		BasePricePerMonth: data.BasePricePerMonth,
		SizeSqm:           data.SizeSqm,
		OwnerID:           data.OwnerID,
		Amenities:         amenities,
		Images:            images,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
