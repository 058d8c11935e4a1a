package jwtutil

import (
	"testing"

	"shop-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.JWTConfig {
	return &config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: 1,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	Initialize(testConfig())

	token, err := GenerateToken("jane@example.com", 42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsStaff)
}

func TestValidateTokenCarriesStaffFlag(t *testing.T) {
	Initialize(testConfig())

	token, err := GenerateToken("joe@example.com", 7, false)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsStaff)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "key-one", ExpirationHours: 1})
	token, err := GenerateToken("jane@example.com", 42, false)
	require.NoError(t, err)

	Initialize(&config.JWTConfig{SigningKey: "key-two", ExpirationHours: 1})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	Initialize(testConfig())

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestUninitializedConfig(t *testing.T) {
	Initialize(nil)
	defer Initialize(testConfig())

	_, err := GenerateToken("jane@example.com", 1, false)
	assert.Error(t, err)

	_, err = ValidateToken("whatever")
	assert.Error(t, err)
}
