package auth

import (
	"strings"
	"testing"
	"time"

	"gardenspace/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTServiceForTest(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: secret,
			TokenTTL:  ttl,
		},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newJWTServiceForTest(t, "test-secret", time.Hour)

	userID := uuid.New()
	token, err := svc.Generate(userID, "alice@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newJWTServiceForTest(t, "test-secret", time.Hour)

	token, err := svc.Generate(uuid.New(), "alice@example.com", "user")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Validate(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newJWTServiceForTest(t, "issuer-secret", time.Hour)
	verifier := newJWTServiceForTest(t, "other-secret", time.Hour)

	token, err := issuer.Generate(uuid.New(), "alice@example.com", "user")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newJWTServiceForTest(t, "test-secret", time.Hour)
	svc.ttl = -time.Minute

	token, err := svc.Generate(uuid.New(), "alice@example.com", "user")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newJWTServiceForTest(t, "test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
