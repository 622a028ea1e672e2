package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gardenspace/internal/domain/entity"
	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/repository"
	"gardenspace/internal/domain/service"
	mockRepo "gardenspace/internal/mocks/repository"
	mockSvc "gardenspace/internal/mocks/service"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingServiceForTest(t *testing.T) (usecase.BookingUsecase, *mockRepo.MockBookingRepository, *mockSvc.MockEventPublisher, *mockSvc.MockQRCodeService) {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	svc := NewBookingService(BookingServiceParams{
		BookingRepo: bookingRepo,
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{Bookings: bookingRepo},
		},
		EventPublisher: eventPublisher,
		QRCodeService:  qrcodeService,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, bookingRepo, eventPublisher, qrcodeService
}

func validCreateBookingInput() usecase.CreateBookingInput {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	return usecase.CreateBookingInput{
		UserID:         uuid.New(),
		GardenID:       uuid.New(),
		StartDate:      start,
		EndDate:        start.AddDate(0, 6, 0),
		DurationMonths: 6,
		TotalPrice:     300,
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	svc, bookingRepo, eventPublisher, _ := newBookingServiceForTest(t)
	ctx := context.Background()
	input := validCreateBookingInput()

	bookingRepo.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	eventPublisher.On("PublishBookingEvent", ctx, mock.AnythingOfType("*service.BookingEvent")).Return(nil)

	booking, err := svc.CreateBooking(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, input.UserID, booking.UserID)
	assert.Equal(t, input.GardenID, booking.GardenID)
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Empty(t, booking.PaymentMethod)
}

func TestBookingService_CreateBooking_ValidationBeforeAnyWrite(t *testing.T) {
	base := validCreateBookingInput()

	tests := []struct {
		name   string
		mutate func(*usecase.CreateBookingInput)
	}{
		{"end date equals start date", func(in *usecase.CreateBookingInput) {
			in.EndDate = in.StartDate
		}},
		{"end date before start date", func(in *usecase.CreateBookingInput) {
			in.EndDate = in.StartDate.AddDate(0, -1, 0)
		}},
		{"zero duration", func(in *usecase.CreateBookingInput) {
			in.DurationMonths = 0
		}},
		{"negative duration", func(in *usecase.CreateBookingInput) {
			in.DurationMonths = -3
		}},
		{"negative price", func(in *usecase.CreateBookingInput) {
			in.TotalPrice = -0.01
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bookingRepo, _, _ := newBookingServiceForTest(t)
			input := base
			tt.mutate(&input)

			booking, err := svc.CreateBooking(context.Background(), input)
			assert.Nil(t, booking)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			bookingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_CreateBooking_ZeroPriceAllowed(t *testing.T) {
	svc, bookingRepo, eventPublisher, _ := newBookingServiceForTest(t)
	ctx := context.Background()
	input := validCreateBookingInput()
	input.TotalPrice = 0

	bookingRepo.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	eventPublisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

	booking, err := svc.CreateBooking(ctx, input)
	require.NoError(t, err)
	assert.Zero(t, booking.TotalPrice)
}

func TestBookingService_ConfirmBooking_FromPending(t *testing.T) {
	svc, bookingRepo, eventPublisher, _ := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.Booking{
		ID:       id,
		UserID:   uuid.New(),
		GardenID: uuid.New(),
		Status:   entity.BookingStatusPending,
	}

	bookingRepo.On("FindByID", ctx, id).Return(stored, nil)
	bookingRepo.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	eventPublisher.On("PublishBookingEvent", ctx, mock.MatchedBy(func(e *service.BookingEvent) bool {
		return e.Status == "confirmed" && e.PaymentMethod == "credit_card"
	})).Return(nil)

	booking, err := svc.ConfirmBooking(ctx, id, "credit_card")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "credit_card", booking.PaymentMethod)
	assert.False(t, booking.UpdatedAt.IsZero())
}

func TestBookingService_ConfirmBooking_ReconfirmOverwritesPaymentMethod(t *testing.T) {
	svc, bookingRepo, eventPublisher, _ := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.Booking{
		ID:            id,
		Status:        entity.BookingStatusConfirmed,
		PaymentMethod: "credit_card",
	}

	bookingRepo.On("FindByID", ctx, id).Return(stored, nil)
	bookingRepo.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	eventPublisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

	booking, err := svc.ConfirmBooking(ctx, id, "bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "bank_transfer", booking.PaymentMethod)
}

func TestBookingService_ConfirmBooking_CancelledIsTerminal(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.Booking{ID: id, Status: entity.BookingStatusCancelled}

	bookingRepo.On("FindByID", ctx, id).Return(stored, nil)

	booking, err := svc.ConfirmBooking(ctx, id, "credit_card")
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domainerrors.ErrBookingCancelled)
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBookingService_ConfirmBooking_NotFound(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	bookingRepo.On("FindByID", ctx, id).Return(nil, repository.ErrBookingNotFound)

	booking, err := svc.ConfirmBooking(ctx, id, "credit_card")
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_CancelBooking_FromPending(t *testing.T) {
	svc, bookingRepo, eventPublisher, _ := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.Booking{ID: id, Status: entity.BookingStatusPending}

	bookingRepo.On("FindByID", ctx, id).Return(stored, nil)
	bookingRepo.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	eventPublisher.On("PublishBookingEvent", ctx, mock.MatchedBy(func(e *service.BookingEvent) bool {
		return e.Status == "cancelled"
	})).Return(nil)

	booking, err := svc.CancelBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestBookingService_CancelBooking_IdempotentRefreshesTimestamp(t *testing.T) {
	svc, bookingRepo, eventPublisher, _ := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	previousUpdate := time.Now().Add(-time.Hour)
	stored := &entity.Booking{
		ID:        id,
		Status:    entity.BookingStatusCancelled,
		UpdatedAt: previousUpdate,
	}

	bookingRepo.On("FindByID", ctx, id).Return(stored, nil)
	bookingRepo.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	eventPublisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

	booking, err := svc.CancelBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
	assert.True(t, booking.UpdatedAt.After(previousUpdate))
}

func TestBookingService_PublishFailureDoesNotFailTransition(t *testing.T) {
	svc, bookingRepo, eventPublisher, _ := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.Booking{ID: id, Status: entity.BookingStatusPending}

	bookingRepo.On("FindByID", ctx, id).Return(stored, nil)
	bookingRepo.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	eventPublisher.On("PublishBookingEvent", ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	booking, err := svc.ConfirmBooking(ctx, id, "credit_card")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
}

func TestBookingService_DeleteBooking(t *testing.T) {
	t.Run("existing booking", func(t *testing.T) {
		svc, bookingRepo, _, _ := newBookingServiceForTest(t)
		ctx := context.Background()

		id := uuid.New()
		bookingRepo.On("ExistsByID", ctx, id).Return(true, nil)
		bookingRepo.On("DeleteByID", ctx, id).Return(nil)

		existed, err := svc.DeleteBooking(ctx, id)
		require.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, bookingRepo, _, _ := newBookingServiceForTest(t)
		ctx := context.Background()

		id := uuid.New()
		bookingRepo.On("ExistsByID", ctx, id).Return(false, nil)

		existed, err := svc.DeleteBooking(ctx, id)
		require.NoError(t, err)
		assert.False(t, existed)
		bookingRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestBookingService_ListBookingsByUser_StatusFilterDispatch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Booking{{ID: uuid.New(), UserID: userID}}

	t.Run("without status", func(t *testing.T) {
		svc, bookingRepo, _, _ := newBookingServiceForTest(t)

		bookingRepo.On("FindByUserID", ctx, userID).Return(expected, nil)

		bookings, err := svc.ListBookingsByUser(ctx, userID, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, bookings)
	})

	t.Run("with status", func(t *testing.T) {
		svc, bookingRepo, _, _ := newBookingServiceForTest(t)

		status := entity.BookingStatusConfirmed
		bookingRepo.On("FindByUserIDAndStatus", ctx, userID, status).Return(expected, nil)

		bookings, err := svc.ListBookingsByUser(ctx, userID, &status)
		require.NoError(t, err)
		assert.Equal(t, expected, bookings)
	})
}

func TestBookingService_ListBookingsByGarden_StatusFilterDispatch(t *testing.T) {
	ctx := context.Background()
	gardenID := uuid.New()
	expected := []*entity.Booking{{ID: uuid.New(), GardenID: gardenID}}

	t.Run("without status", func(t *testing.T) {
		svc, bookingRepo, _, _ := newBookingServiceForTest(t)

		bookingRepo.On("FindByGardenID", ctx, gardenID).Return(expected, nil)

		bookings, err := svc.ListBookingsByGarden(ctx, gardenID, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, bookings)
	})

	t.Run("with status", func(t *testing.T) {
		svc, bookingRepo, _, _ := newBookingServiceForTest(t)

		status := entity.BookingStatusPending
		bookingRepo.On("FindByGardenIDAndStatus", ctx, gardenID, status).Return(expected, nil)

		bookings, err := svc.ListBookingsByGarden(ctx, gardenID, &status)
		require.NoError(t, err)
		assert.Equal(t, expected, bookings)
	})
}

func TestBookingService_GenerateBookingQR(t *testing.T) {
	svc, bookingRepo, _, qrcodeService := newBookingServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.Booking{ID: id, Status: entity.BookingStatusConfirmed}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	bookingRepo.On("FindByID", ctx, id).Return(stored, nil)
	qrcodeService.On("GenerateBookingQR", stored).Return(png, nil)

	got, err := svc.GenerateBookingQR(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
