package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIKeyService(t *testing.T) {
	service := NewAPIKeyService()
	assert.IsType(t, &apiKeyService{}, service)
}

func TestAPIKeyService_GenerateAPIKey(t *testing.T) {
	service := NewAPIKeyService()

	t.Run("Success_GeneratesVerifiableKey", func(t *testing.T) {
		plainKey, hashedKey, err := service.GenerateAPIKey()
		require.NoError(t, err)

		decoded, err := base64.RawURLEncoding.DecodeString(plainKey)
		require.NoError(t, err)
		assert.Len(t, decoded, apiKeyLength)

		assert.Contains(t, hashedKey, "$argon2id$")
		assert.NotContains(t, hashedKey, plainKey)
		assert.True(t, service.VerifyAPIKey(plainKey, hashedKey))
	})

	t.Run("Success_GeneratesUniqueKeys", func(t *testing.T) {
		plainKey1, hashedKey1, err := service.GenerateAPIKey()
		require.NoError(t, err)
		plainKey2, hashedKey2, err := service.GenerateAPIKey()
		require.NoError(t, err)

		assert.NotEqual(t, plainKey1, plainKey2)
		assert.NotEqual(t, hashedKey1, hashedKey2)
	})
}

func TestAPIKeyService_HashAPIKey(t *testing.T) {
	service := NewAPIKeyService()

	hash1, err := service.HashAPIKey("operator-key")
	require.NoError(t, err)
	hash2, err := service.HashAPIKey("operator-key")
	require.NoError(t, err)

	// Random salt per hash.
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, service.VerifyAPIKey("operator-key", hash1))
	assert.True(t, service.VerifyAPIKey("operator-key", hash2))
}

func TestAPIKeyService_VerifyAPIKey(t *testing.T) {
	service := NewAPIKeyService()

	hashedKey, err := service.HashAPIKey("correct-key")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plainKey  string
		hashedKey string
		expected  bool
	}{
		{name: "matching key", plainKey: "correct-key", hashedKey: hashedKey, expected: true},
		{name: "wrong key", plainKey: "wrong-key", hashedKey: hashedKey, expected: false},
		{name: "empty key", plainKey: "", hashedKey: hashedKey, expected: false},
		{name: "empty hash", plainKey: "correct-key", hashedKey: "", expected: false},
		{name: "malformed hash", plainKey: "correct-key", hashedKey: "not-a-phc-string", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.VerifyAPIKey(tt.plainKey, tt.hashedKey))
		})
	}
}
