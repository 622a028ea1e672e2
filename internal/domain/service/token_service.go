package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued bearer tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating signed,
// time-bounded bearer tokens. The signing secret is process-wide and
// injected at construction; a multi-instance deployment must share it
// out-of-band.
type TokenService interface {
	// Generate creates a signed token binding the user id, email and role.
	Generate(userID uuid.UUID, email, role string) (string, error)

	// Validate checks signature integrity and expiry. A tampered token is
	// indistinguishable from an expired one: both return an error.
	Validate(tokenString string) (*Claims, error)
}
