package auth

import (
	"testing"

	"skillswap_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, ttlMinutes int) {
	t.Helper()

	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, "test-secret", 60)

	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t, "test-secret", 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, "test-secret", 60)

	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "another-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	setTestConfig(t, "test-secret", -1)

	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
