package repository

import (
	"context"
	"testing"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBookingRepository is a mock implementation of repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

// NewMockBookingRepository creates a MockBookingRepository whose expectations
// are asserted on test cleanup.
func NewMockBookingRepository(t *testing.T) *MockBookingRepository {
	m := &MockBookingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByGardenID(ctx context.Context, gardenID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, gardenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByGardenIDAndStatus(ctx context.Context, gardenID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	args := m.Called(ctx, gardenID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)

	return args.Error(0)
}

func (m *MockBookingRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
