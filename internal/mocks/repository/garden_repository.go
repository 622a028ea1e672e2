package repository

import (
	"context"
	"testing"

	"gardenspace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGardenRepository is a mock implementation of repository.GardenRepository.
type MockGardenRepository struct {
	mock.Mock
}

// NewMockGardenRepository creates a MockGardenRepository whose expectations
// are asserted on test cleanup.
func NewMockGardenRepository(t *testing.T) *MockGardenRepository {
	m := &MockGardenRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGardenRepository) FindAll(ctx context.Context) ([]*entity.Garden, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Garden), args.Error(1)
}

func (m *MockGardenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Garden, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Garden), args.Error(1)
}

func (m *MockGardenRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Garden, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Garden), args.Error(1)
}

func (m *MockGardenRepository) FindAvailable(ctx context.Context) ([]*entity.Garden, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Garden), args.Error(1)
}

func (m *MockGardenRepository) SearchByName(ctx context.Context, query string) ([]*entity.Garden, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Garden), args.Error(1)
}

func (m *MockGardenRepository) Save(ctx context.Context, garden *entity.Garden) error {
	args := m.Called(ctx, garden)

	return args.Error(0)
}

func (m *MockGardenRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockGardenRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
