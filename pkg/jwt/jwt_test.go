package jwt_test

import (
	"testing"
	"time"

	"clinic-api/config"
	"clinic-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, expiry time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: secret, Expiry: expiry})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newService("test-secret", time.Hour)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, "ana@example.com", "patient")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "patient", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newService("test-secret", time.Hour)
	userID := uuid.New()

	_, first, err := svc.GenerateToken(userID, "ana@example.com", "patient")
	require.NoError(t, err)
	_, second, err := svc.GenerateToken(userID, "ana@example.com", "patient")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newService("secret-a", time.Hour).GenerateToken(uuid.New(), "ana@example.com", "patient")
	require.NoError(t, err)

	_, err = newService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newService("test-secret", -time.Minute)

	token, _, err := svc.GenerateToken(uuid.New(), "ana@example.com", "patient")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newService("test-secret", time.Hour)
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
