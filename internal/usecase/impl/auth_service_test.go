package impl

import (
	"context"
	"testing"
	"time"

	"gardenspace/internal/domain/entity"
	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/repository"
	"gardenspace/internal/domain/service"
	mockRepo "gardenspace/internal/mocks/repository"
	mockSvc "gardenspace/internal/mocks/service"
	"gardenspace/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
	})

	return svc, userRepo, hasher, tokenService
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, userRepo, hasher, tokenService := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "s3cretpass").Return("$2a$10$hash", nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	tokenService.On("Generate", mock.AnythingOfType("uuid.UUID"), "alice@example.com", "user").
		Return("signed-token", nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Equal(t, "$2a$10$hash", out.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
}

func TestAuthService_Register_AdminRoleHint(t *testing.T) {
	tests := []struct {
		name     string
		roleHint string
		want     entity.Role
	}{
		{"lowercase admin", "admin", entity.RoleAdmin},
		{"uppercase admin", "ADMIN", entity.RoleAdmin},
		{"mixed case admin", "Admin", entity.RoleAdmin},
		{"empty hint", "", entity.RoleUser},
		{"arbitrary hint", "superuser", entity.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, hasher, tokenService := newAuthServiceForTest(t)
			ctx := context.Background()

			userRepo.On("FindByEmail", ctx, "bob@example.com").
				Return(nil, repository.ErrUserNotFound)
			hasher.On("Hash", "s3cretpass").Return("hash", nil)
			userRepo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			tokenService.On("Generate", mock.AnythingOfType("uuid.UUID"), "bob@example.com", tt.want.String()).
				Return("token", nil)

			out, err := svc.Register(ctx, usecase.RegisterInput{
				Email:    "bob@example.com",
				Password: "s3cretpass",
				FullName: "Bob",
				RoleHint: tt.roleHint,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.User.Role)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}
	userRepo.On("FindByEmail", ctx, "taken@example.com").Return(existing, nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "s3cretpass",
		FullName: "Imposter",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, hasher, tokenService := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	hasher.On("Check", "s3cretpass", "stored-hash").Return(true)
	tokenService.On("Generate", user.ID, user.Email, "user").Return("signed-token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Same(t, user, out.User)
}

func TestAuthService_Login_UniformErrorForUnknownEmailAndBadPassword(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		svc, userRepo, _, _ := newAuthServiceForTest(t)
		ctx := context.Background()

		userRepo.On("FindByEmail", ctx, "ghost@example.com").
			Return(nil, repository.ErrUserNotFound)

		_, err := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, "Invalid login credentials", domainerrors.ErrInvalidCredentials.Message())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, hasher, _ := newAuthServiceForTest(t)
		ctx := context.Background()

		user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "stored-hash"}
		userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
		hasher.On("Check", "wrong", "stored-hash").Return(false)

		_, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_StorageFailureIsNotInvalidCredentials(t *testing.T) {
	svc, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(nil, errors.New("connection reset"))

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ResolveCurrentUser_Success(t *testing.T) {
	svc, userRepo, _, tokenService := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	claims := &service.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tokenService.On("Validate", "valid-token").Return(claims, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	resolved, err := svc.ResolveCurrentUser(ctx, "Bearer valid-token")
	require.NoError(t, err)
	assert.Same(t, user, resolved)
}

func TestAuthService_ResolveCurrentUser_AcceptsRawToken(t *testing.T) {
	svc, userRepo, _, tokenService := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New()}
	claims := &service.Claims{UserID: user.ID}

	tokenService.On("Validate", "valid-token").Return(claims, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	resolved, err := svc.ResolveCurrentUser(ctx, "valid-token")
	require.NoError(t, err)
	assert.Same(t, user, resolved)
}

func TestAuthService_ResolveCurrentUser_AbsentResultNeverFault(t *testing.T) {
	t.Run("empty header", func(t *testing.T) {
		svc, _, _, _ := newAuthServiceForTest(t)

		resolved, err := svc.ResolveCurrentUser(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, _, _, tokenService := newAuthServiceForTest(t)

		tokenService.On("Validate", "tampered").Return(nil, errors.New("signature invalid"))

		resolved, err := svc.ResolveCurrentUser(context.Background(), "Bearer tampered")
		assert.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("token for deleted account", func(t *testing.T) {
		svc, userRepo, _, tokenService := newAuthServiceForTest(t)
		ctx := context.Background()

		userID := uuid.New()
		tokenService.On("Validate", "valid-token").Return(&service.Claims{UserID: userID}, nil)
		userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

		resolved, err := svc.ResolveCurrentUser(ctx, "Bearer valid-token")
		assert.NoError(t, err)
		assert.Nil(t, resolved)
	})
}
