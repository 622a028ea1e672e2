// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"strings"
	"time"

	"gardenspace/internal/domain/entity"
	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/repository"
	"gardenspace/internal/domain/service"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
}

// NewAuthService creates a new authentication service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
	}
}

// Register creates a new account and returns a signed token for it
func (s *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	// Reject duplicate emails before hashing. The unique constraint on the
	// store still backstops concurrent registrations.
	_, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         entity.RoleFromHint(input.RoleHint),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a signed token
func (s *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	// Unknown email and wrong password produce the same error, so a caller
	// cannot probe which addresses are registered.
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// ResolveCurrentUser resolves the account behind an Authorization header.
// Every failure path collapses to an absent result; the delivery layer maps
// absence to 401 without distinguishing causes.
func (s *authService) ResolveCurrentUser(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if tokenString == "" {
		return nil, nil
	}

	claims, err := s.tokenService.Validate(tokenString)
	if err != nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil
	}

	return user, nil
}

func (s *authService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := s.tokenService.Generate(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &usecase.AuthOutput{
		Token: token,
		User:  user,
	}, nil
}
