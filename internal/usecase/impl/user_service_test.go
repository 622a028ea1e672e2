package impl

import (
	"context"
	"testing"
	"time"

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

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})

	return svc, userRepo
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, userRepo := newUserServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUser(ctx, id)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_OnlyProfileFieldsChange(t *testing.T) {
	svc, userRepo := newUserServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.User{
		ID:           id,
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
		FullName:     "Alice",
		Role:         entity.RoleUser,
		UpdatedAt:    time.Now().Add(-time.Hour),
	}

	userRepo.On("FindByID", ctx, id).Return(stored, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := svc.UpdateProfile(ctx, id, usecase.UpdateProfileInput{
		FullName:  "Alice Doe",
		AvatarURL: "https://cdn.example.com/alice.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", user.FullName)
	assert.Equal(t, "https://cdn.example.com/alice.png", user.AvatarURL)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "stored-hash", user.PasswordHash)
	assert.Equal(t, entity.RoleUser, user.Role)
}
