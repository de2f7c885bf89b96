package auth

import (
	"testing"

	"transfer-backend/internal/config"
	"transfer-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "transfer-backend"
	return cfg
}

func TestJWTRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testConfig("test-secret"))
	clientID := 7

	user := &models.User{
		ID:                 3,
		Email:              "ops@example.com",
		Role:               models.RoleClient,
		AssociatedClientID: &clientID,
		IsActive:           true,
	}

	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, models.RoleClient, claims.Role)
	require.NotNil(t, claims.AssociatedClientID)
	assert.Equal(t, 7, *claims.AssociatedClientID)
	assert.True(t, claims.IsActive)
	assert.Equal(t, "transfer-backend", claims.Issuer)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager(testConfig("test-secret"))
	other := NewJWTManager(testConfig("different-secret"))

	token, err := mgr.GenerateToken(&models.User{ID: 1, Role: models.RoleAdmin, IsActive: true})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	cfg := testConfig("test-secret")
	cfg.JWT.ExpirationHours = -1
	mgr := NewJWTManager(cfg)

	token, err := mgr.GenerateToken(&models.User{ID: 1, Role: models.RoleAdmin, IsActive: true})
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	mgr := NewJWTManager(testConfig("test-secret"))

	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}
