// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record for a plot owner or renter.
type User struct {
	ID           uuid.UUID // Stable opaque identifier, generated at registration.
	Email        string    // Unique login identifier, stored case-sensitively.
	PasswordHash string    // Bcrypt hash of the credential. Never serialized.
	FullName     string    // Display name.
	Role         Role      // Fixed at registration; not mutable through profile updates.
	AvatarURL    string    // Optional avatar image URL.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// PublicProjection is the externally visible view of a User.
// It carries no credential material.
type PublicProjection struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Public maps the user to its credential-free projection.
// Role is always rendered lowercase on the wire.
func (u *User) Public() *PublicProjection {
	return &PublicProjection{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role.String(),
		AvatarURL: u.AvatarURL,
	}
}
