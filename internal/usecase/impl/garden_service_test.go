package impl

import (
	"context"
	"testing"

	"gardenspace/internal/domain/entity"
	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/repository"
	mockRepo "gardenspace/internal/mocks/repository"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGardenServiceForTest(t *testing.T) (usecase.GardenUsecase, *mockRepo.MockGardenRepository) {
	gardenRepo := mockRepo.NewMockGardenRepository(t)
	svc := NewGardenService(GardenServiceParams{GardenRepo: gardenRepo})

	return svc, gardenRepo
}

func validSaveGardenInput() usecase.SaveGardenInput {
	return usecase.SaveGardenInput{
		Name:              "Jardin des Lilas",
		Description:       "Shared plots near the canal",
		Address:           "12 Rue des Lilas, Paris",
		Latitude:          48.8768,
		Longitude:         2.3822,
		TotalPlots:        20,
		AvailablePlots:    5,
		BasePricePerMonth: 45,
		SizeSqm:           12,
		OwnerID:           uuid.New(),
		Amenities:         []string{"water", "toolshed"},
		Images:            []string{"https://cdn.example.com/lilas.jpg"},
	}
}

func TestGardenService_CreateGarden_Success(t *testing.T) {
	svc, gardenRepo := newGardenServiceForTest(t)
	ctx := context.Background()
	input := validSaveGardenInput()

	gardenRepo.On("Save", ctx, mock.AnythingOfType("*entity.Garden")).Return(nil)

	garden, err := svc.CreateGarden(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, garden.ID)
	assert.Equal(t, input.Name, garden.Name)
	assert.Equal(t, input.OwnerID, garden.OwnerID)
	assert.Equal(t, input.Amenities, garden.Amenities)
}

func TestGardenService_CreateGarden_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.SaveGardenInput)
	}{
		{"empty name", func(in *usecase.SaveGardenInput) { in.Name = "" }},
		{"negative total plots", func(in *usecase.SaveGardenInput) { in.TotalPlots = -1 }},
		{"available exceeds total", func(in *usecase.SaveGardenInput) {
			in.TotalPlots = 3
			in.AvailablePlots = 4
		}},
		{"negative price", func(in *usecase.SaveGardenInput) { in.BasePricePerMonth = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gardenRepo := newGardenServiceForTest(t)
			input := validSaveGardenInput()
			tt.mutate(&input)

			garden, err := svc.CreateGarden(context.Background(), input)
			assert.Nil(t, garden)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			gardenRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestGardenService_UpdateGarden_NotFound(t *testing.T) {
	svc, gardenRepo := newGardenServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	gardenRepo.On("FindByID", ctx, id).Return(nil, repository.ErrGardenNotFound)

	garden, err := svc.UpdateGarden(ctx, id, validSaveGardenInput())
	assert.Nil(t, garden)
	assert.ErrorIs(t, err, domainerrors.ErrGardenNotFound)
}

func TestGardenService_FindNearbyGardens_RanksByDistance(t *testing.T) {
	svc, gardenRepo := newGardenServiceForTest(t)
	ctx := context.Background()

	// Origin is Notre-Dame; distances grow with each garden below.
	near := &entity.Garden{ID: uuid.New(), Name: "Ile de la Cite", Latitude: 48.8530, Longitude: 2.3499}
	mid := &entity.Garden{ID: uuid.New(), Name: "Bastille", Latitude: 48.8532, Longitude: 2.3692}
	far := &entity.Garden{ID: uuid.New(), Name: "La Villette", Latitude: 48.8938, Longitude: 2.3930}
	remote := &entity.Garden{ID: uuid.New(), Name: "Lyon", Latitude: 45.7640, Longitude: 4.8357}

	gardenRepo.On("FindAll", ctx).Return([]*entity.Garden{far, remote, near, mid}, nil)

	gardens, err := svc.FindNearbyGardens(ctx, usecase.NearbyGardensInput{
		Latitude:  48.8530,
		Longitude: 2.3499,
		RadiusKm:  10,
	})
	require.NoError(t, err)
	require.Len(t, gardens, 3)
	assert.Equal(t, near.ID, gardens[0].ID)
	assert.Equal(t, mid.ID, gardens[1].ID)
	assert.Equal(t, far.ID, gardens[2].ID)
}

func TestGardenService_FindNearbyGardens_DefaultRadius(t *testing.T) {
	svc, gardenRepo := newGardenServiceForTest(t)
	ctx := context.Background()

	// About 1.4 km from the origin, within the 10 km default.
	inside := &entity.Garden{ID: uuid.New(), Latitude: 48.8530, Longitude: 2.3692}
	// About 390 km away.
	outside := &entity.Garden{ID: uuid.New(), Latitude: 45.7640, Longitude: 4.8357}

	gardenRepo.On("FindAll", ctx).Return([]*entity.Garden{outside, inside}, nil)

	gardens, err := svc.FindNearbyGardens(ctx, usecase.NearbyGardensInput{
		Latitude:  48.8530,
		Longitude: 2.3499,
	})
	require.NoError(t, err)
	require.Len(t, gardens, 1)
	assert.Equal(t, inside.ID, gardens[0].ID)
}

func TestGardenService_DeleteGarden(t *testing.T) {
	t.Run("existing garden", func(t *testing.T) {
		svc, gardenRepo := newGardenServiceForTest(t)
		ctx := context.Background()

		id := uuid.New()
		gardenRepo.On("ExistsByID", ctx, id).Return(true, nil)
		gardenRepo.On("DeleteByID", ctx, id).Return(nil)

		existed, err := svc.DeleteGarden(ctx, id)
		require.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("unknown garden", func(t *testing.T) {
		svc, gardenRepo := newGardenServiceForTest(t)
		ctx := context.Background()

		id := uuid.New()
		gardenRepo.On("ExistsByID", ctx, id).Return(false, nil)

		existed, err := svc.DeleteGarden(ctx, id)
		require.NoError(t, err)
		assert.False(t, existed)
		gardenRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestGardenService_SearchGardens(t *testing.T) {
	svc, gardenRepo := newGardenServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Garden{{ID: uuid.New(), Name: "Rosengarten"}}
	gardenRepo.On("SearchByName", ctx, "rosen").Return(expected, nil)

	gardens, err := svc.SearchGardens(ctx, "rosen")
	require.NoError(t, err)
	assert.Equal(t, expected, gardens)
}
