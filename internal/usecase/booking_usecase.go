package usecase

import (
	"context"
	"time"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data required to create a plot booking.
type CreateBookingInput struct {
	UserID         uuid.UUID
	GardenID       uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	DurationMonths int
	TotalPrice     float64
}

// BookingUsecase defines the interface for booking lifecycle operations.
type BookingUsecase interface {
	// CreateBooking validates the input and persists a new pending booking.
	CreateBooking(ctx context.Context, input CreateBookingInput) (*entity.Booking, error)

	// ConfirmBooking moves a booking to confirmed and records the payment
	// method. Confirming an already-confirmed booking overwrites the
	// payment method; confirming a cancelled booking is rejected.
	ConfirmBooking(ctx context.Context, id uuid.UUID, paymentMethod string) (*entity.Booking, error)

	// CancelBooking moves a booking to cancelled. Cancelling an
	// already-cancelled booking only refreshes its update timestamp.
	CancelBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// DeleteBooking hard-deletes a booking. The boolean reports whether
	// the booking existed.
	DeleteBooking(ctx context.Context, id uuid.UUID) (bool, error)

	// GetBooking retrieves a single booking by ID.
	GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListBookings retrieves every booking.
	ListBookings(ctx context.Context) ([]*entity.Booking, error)

	// ListBookingsByUser retrieves bookings for a user, optionally
	// filtered by status.
	ListBookingsByUser(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error)

	// ListBookingsByGarden retrieves bookings for a garden, optionally
	// filtered by status.
	ListBookingsByGarden(ctx context.Context, gardenID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error)

	// GenerateBookingQR renders the check-in QR code PNG for a booking.
	GenerateBookingQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
