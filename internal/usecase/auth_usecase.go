// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gardenspace/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	// RoleHint is matched case-insensitively against "admin"; anything
	// else yields a regular user account.
	RoleHint string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed bearer token together with the public
// projection of the authenticated account.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and returns a signed token for it.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// ResolveCurrentUser resolves the account behind an Authorization
	// header value. Any failure yields (nil, nil): an absent result,
	// never a fault.
	ResolveCurrentUser(ctx context.Context, authorizationHeader string) (*entity.User, error)
}
