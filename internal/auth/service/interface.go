// Package service provides API key generation and verification for the HTTP API.
//
// Plain API keys are shown once by the create-api-key command; the server only keeps
// their Argon2id hash in configuration.
package service

// APIKeyService generates and verifies API keys.
type APIKeyService interface {
	// GenerateAPIKey returns a new random key and its Argon2id hash in PHC format.
	GenerateAPIKey() (plainKey string, hashedKey string, err error)

	// HashAPIKey hashes an existing plain key.
	HashAPIKey(plainKey string) (hashedKey string, err error)

	// VerifyAPIKey reports whether plainKey matches hashedKey. Comparison is constant-time.
	VerifyAPIKey(plainKey string, hashedKey string) bool
}
