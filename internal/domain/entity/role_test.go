package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromHint(t *testing.T) {
	tests := []struct {
		hint string
		want Role
	}{
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"AdMiN", RoleAdmin},
		{"", RoleUser},
		{"user", RoleUser},
		{"administrator", RoleUser},
		{"root", RoleUser},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoleFromHint(tt.hint), "hint %q", tt.hint)
	}
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromString("ADMIN"))
	assert.Equal(t, RoleUser, RoleFromString("user"))
	assert.Equal(t, RoleUser, RoleFromString("unknown"))
}

func TestUserPublicOmitsCredentials(t *testing.T) {
	user := &User{
		Email:        "alice@example.com",
		PasswordHash: "secret",
		FullName:     "Alice",
		Role:         RoleAdmin,
	}

	public := user.Public()
	assert.Equal(t, "alice@example.com", public.Email)
	assert.Equal(t, "admin", public.Role)
	assert.NotContains(t, []string{public.ID, public.Email, public.FullName, public.Role, public.AvatarURL}, "secret")
}
