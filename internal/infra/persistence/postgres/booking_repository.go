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

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// FindAll retrieves every booking record.
func (repo *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return toBookingDomainSlice(bookingModels), nil
}

// FindByID retrieves a single booking by its unique ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// FindByUserID retrieves all bookings made by the given user.
func (repo *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user")
	}

	return toBookingDomainSlice(bookingModels), nil
}

// FindByGardenID retrieves all bookings against the given garden.
func (repo *bookingRepository) FindByGardenID(ctx context.Context, gardenID uuid.UUID) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("garden_id = ?", gardenID).
		Order("created_at").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by garden")
	}

	return toBookingDomainSlice(bookingModels), nil
}

// FindByUserIDAndStatus retrieves the user's bookings in the given status.
func (repo *bookingRepository) FindByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status.String()).
		Order("created_at").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user and status")
	}

	return toBookingDomainSlice(bookingModels), nil
}

// FindByGardenIDAndStatus retrieves the garden's bookings in the given status.
func (repo *bookingRepository) FindByGardenIDAndStatus(ctx context.Context, gardenID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("garden_id = ? AND status = ?", gardenID, status.String()).
		Order("created_at").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by garden and status")
	}

	return toBookingDomainSlice(bookingModels), nil
}

// Save persists the booking, creating it when new and updating it otherwise.
func (repo *bookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Save(bookingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidBookingStatus.WrapMessage("status outside the closed enumeration")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid booking reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save booking")
	}

	// Update the entity with generated values
	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// ExistsByID reports whether a booking with the given ID exists.
func (repo *bookingRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check booking existence")
	}

	return count > 0, nil
}

// DeleteByID hard-deletes the booking. Deleting an absent ID is not an error.
func (repo *bookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookingModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete booking")
	}

	return nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:             data.ID,
		UserID:         data.UserID,
		GardenID:       data.GardenID,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		DurationMonths: data.DurationMonths,
		TotalPrice:     data.TotalPrice,
		Status:         entity.BookingStatus(data.Status),
		PaymentMethod:  data.PaymentMethod,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toBookingDomainSlice(models []*model.BookingModel) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(models))
	for _, bookingM := range models {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel for persistence.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:             data.ID,
		UserID:         data.UserID,
		GardenID:       data.GardenID,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		DurationMonths: data.DurationMonths,
		TotalPrice:     data.TotalPrice,
		Status:         data.Status.String(),
		PaymentMethod:  data.PaymentMethod,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
