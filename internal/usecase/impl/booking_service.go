package impl

import (
	"context"
	"log/slog"
	"time"

	deliveryctx "gardenspace/internal/delivery/context"
	"gardenspace/internal/domain/entity"
	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/repository"
	"gardenspace/internal/domain/service"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bookingService struct {
	bookingRepo    repository.BookingRepository
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo    repository.BookingRepository
	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewBookingService creates a new booking service instance
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo:    params.BookingRepo,
		txManager:      params.TxManager,
		eventPublisher: params.EventPublisher,
		qrcodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

// CreateBooking validates the input and persists a new pending booking
func (s *bookingService) CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*entity.Booking, error) {
	// All validation happens before any write; an invalid booking never
	// reaches the store.
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ID:             uuid.New(),
		UserID:         input.UserID,
		GardenID:       input.GardenID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		DurationMonths: input.DurationMonths,
		TotalPrice:     input.TotalPrice,
		Status:         entity.BookingStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}

	s.publishBookingEvent(ctx, booking)

	return booking, nil
}

// ConfirmBooking moves a booking to confirmed and records the payment method.
// The read and the write share one transaction so concurrent cancels cannot
// interleave between them.
func (s *bookingService) ConfirmBooking(ctx context.Context, id uuid.UUID, paymentMethod string) (*entity.Booking, error) {
	var booking *entity.Booking

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()

		found, err := bookingRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return domainerrors.ErrBookingNotFound
			}

			return errors.Wrap(err, "failed to find booking")
		}

		// cancelled is terminal; re-confirming a confirmed booking is an
		// allowed overwrite of the payment method.
		if found.IsTerminal() {
			return domainerrors.ErrBookingCancelled
		}

		found.Status = entity.BookingStatusConfirmed
		found.PaymentMethod = paymentMethod
		found.UpdatedAt = time.Now()

		if err := bookingRepo.Save(ctx, found); err != nil {
			return err
		}

		booking = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishBookingEvent(ctx, booking)

	return booking, nil
}

// CancelBooking moves a booking to cancelled. Cancelling an already-cancelled
// booking keeps the status and still refreshes the update timestamp.
func (s *bookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking *entity.Booking

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()

		found, err := bookingRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return domainerrors.ErrBookingNotFound
			}

			return errors.Wrap(err, "failed to find booking")
		}

		found.Status = entity.BookingStatusCancelled
		found.UpdatedAt = time.Now()

		if err := bookingRepo.Save(ctx, found); err != nil {
			return err
		}

		booking = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishBookingEvent(ctx, booking)

	return booking, nil
}

// DeleteBooking hard-deletes a booking and reports whether it existed
func (s *bookingService) DeleteBooking(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.bookingRepo.ExistsByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check booking existence")
	}
	if !exists {
		return false, nil
	}

	if err := s.bookingRepo.DeleteByID(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}

// GetBooking retrieves a single booking by ID
func (s *bookingService) GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return booking, nil
}

// ListBookings retrieves every booking
func (s *bookingService) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// ListBookingsByUser retrieves bookings for a user, optionally filtered by status
func (s *bookingService) ListBookingsByUser(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error) {
	var (
		bookings []*entity.Booking
		err      error
	)

	if status != nil {
		bookings, err = s.bookingRepo.FindByUserIDAndStatus(ctx, userID, *status)
	} else {
		bookings, err = s.bookingRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user")
	}

	return bookings, nil
}

// ListBookingsByGarden retrieves bookings for a garden, optionally filtered by status
func (s *bookingService) ListBookingsByGarden(ctx context.Context, gardenID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error) {
	var (
		bookings []*entity.Booking
		err      error
	)

	if status != nil {
		bookings, err = s.bookingRepo.FindByGardenIDAndStatus(ctx, gardenID, *status)
	} else {
		bookings, err = s.bookingRepo.FindByGardenID(ctx, gardenID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by garden")
	}

	return bookings, nil
}

// GenerateBookingQR renders the check-in QR code PNG for a booking
func (s *bookingService) GenerateBookingQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateBookingQR(booking)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate booking QR")
	}

	return qrCode, nil
}

// publishBookingEvent publishes a lifecycle event for the booking.
// Publishing is best effort: a failure is logged and never surfaces to the
// caller, so the state transition itself is unaffected.
func (s *bookingService) publishBookingEvent(ctx context.Context, booking *entity.Booking) {
	event := &service.BookingEvent{
		RequestID:     deliveryctx.GetRequestIDFromContext(ctx),
		BookingID:     booking.ID.String(),
		UserID:        booking.UserID.String(),
		GardenID:      booking.GardenID.String(),
		Status:        booking.Status.String(),
		PaymentMethod: booking.PaymentMethod,
		OccurredAt:    time.Now().Format(time.RFC3339),
	}

	if err := s.eventPublisher.PublishBookingEvent(ctx, event); err != nil {
		logger := deliveryctx.GetLoggerOrDefault(ctx, s.logger)
		logger.Error("failed to publish booking event",
			slog.String("booking_id", event.BookingID),
			slog.String("status", event.Status),
			slog.Any("error", err),
		)
	}
}

// validateBookingInput enforces the creation invariants: end after start,
// positive duration, non-negative price.
func validateBookingInput(input usecase.CreateBookingInput) error {
	if !input.EndDate.After(input.StartDate) {
		return domainerrors.ErrValidationFailed.WrapMessage("end date must be after start date")
	}
	if input.DurationMonths <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("duration must be at least one month")
	}
	if input.TotalPrice < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("total price must not be negative")
	}

	return nil
}
