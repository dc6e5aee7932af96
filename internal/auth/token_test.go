package auth

import (
	"testing"
	"time"

	"hr-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "jordan@example.com",
		Role:  models.RoleCandidate,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	user := testUser()

	token, err := NewAccessToken(testSecret, user, 15*time.Minute)
	require.NoError(t, err)

	claims, err := ParseAccessToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleCandidate, claims.Role)
}

func TestParseAccessToken_Expired(t *testing.T) {
	user := testUser()

	token, err := NewAccessToken(testSecret, user, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(testSecret, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	user := testUser()

	token, err := NewAccessToken(testSecret, user, 15*time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("a-different-secret", token)
	assert.Error(t, err)
}

func TestNewRefreshToken(t *testing.T) {
	a, err := NewRefreshToken()
	require.NoError(t, err)
	b, err := NewRefreshToken()
	require.NoError(t, err)

	assert.Len(t, a, 64) // 32 random bytes hex-encoded
	assert.NotEqual(t, a, b)
}
