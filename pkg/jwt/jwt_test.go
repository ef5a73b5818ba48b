package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(
		"access-secret-0123456789",
		"refresh-secret-0123456789",
		time.Hour,
		24*time.Hour,
	)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID, "manager@shiftline.dev", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "manager@shiftline.dev", claims.Email)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	service := newTestService()
	other := NewService("different-secret", "different-refresh", time.Hour, 24*time.Hour)

	token, err := service.GenerateAccessToken(uuid.New(), "a@b.c", "employee")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateRefreshToken(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)

	// And the other way around.
	access, err := service.GenerateAccessToken(uuid.New(), "a@b.c", "employee")
	require.NoError(t, err)
	_, err = service.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken(uuid.New(), "a@b.c", "employee")
	require.NoError(t, err)
	assert.False(t, service.IsTokenExpired(token))

	expiredService := NewService(
		"access-secret-0123456789",
		"refresh-secret-0123456789",
		-time.Minute,
		24*time.Hour,
	)
	expired, err := expiredService.GenerateAccessToken(uuid.New(), "a@b.c", "employee")
	require.NoError(t, err)
	assert.True(t, service.IsTokenExpired(expired))

	assert.True(t, service.IsTokenExpired("garbage"))
}
