package auth

import (
	"testing"
	"time"

	"beanwatch/config"
	"beanwatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	signed, tokenID, err := jwtService.GenerateToken(userID, entity.RoleFarmer)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.NotEqual(t, uuid.Nil, tokenID)

	claims, err := jwtService.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleFarmer, claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

// Each issued token carries its own jti so sessions are revocable one by one.
func TestJWTService_TokenIDsAreUnique(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()

	_, firstID, err := jwtService.GenerateToken(userID, entity.RoleAdmin)
	require.NoError(t, err)

	_, secondID, err := jwtService.GenerateToken(userID, entity.RoleAdmin)
	require.NoError(t, err)

	assert.NotEqual(t, firstID, secondID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	verifier, err := NewJWTService(newTestJWTConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	signed, _, err := issuer.GenerateToken(uuid.New(), entity.RoleFarmer)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_GetTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, jwtService.GetTokenDuration())
}
