package repository

import (
	"context"
	"errors"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is a domain-specific error returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the standard operations for booking persistence.
// Ordering of list results is whatever the store snapshot yields; callers
// must not assume a particular order.
type BookingRepository interface {
	// FindAll retrieves every booking record.
	FindAll(ctx context.Context) ([]*entity.Booking, error)

	// FindByID retrieves a single booking by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByUserID retrieves all bookings made by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// FindByGardenID retrieves all bookings against the given garden.
	FindByGardenID(ctx context.Context, gardenID uuid.UUID) ([]*entity.Booking, error)

	// FindByUserIDAndStatus retrieves the user's bookings in the given status.
	FindByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error)

	// FindByGardenIDAndStatus retrieves the garden's bookings in the given status.
	FindByGardenIDAndStatus(ctx context.Context, gardenID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error)

	// Save persists the booking, creating it when new and updating it otherwise.
	Save(ctx context.Context, booking *entity.Booking) error

	// ExistsByID reports whether a booking with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByID hard-deletes the booking. Deleting an absent ID is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
