package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/creditcards/internal/errors"
)

// apiKeyLength is the number of random bytes in a generated key.
const apiKeyLength = 32

type apiKeyService struct {
	hasher *pwdhash.PasswordHasher
}

// NewAPIKeyService creates an APIKeyService using Argon2id with the Moderate policy.
func NewAPIKeyService() APIKeyService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// Only reachable with an invalid policy.
		panic(err)
	}

	return &apiKeyService{
		hasher: hasher,
	}
}

// GenerateAPIKey returns a URL-safe base64 encoded 32-byte key and its hash.
func (s *apiKeyService) GenerateAPIKey() (string, string, error) {
	randomBytes := make([]byte, apiKeyLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate api key")
	}

	plainKey := base64.RawURLEncoding.EncodeToString(randomBytes)

	hashedKey, err := s.HashAPIKey(plainKey)
	if err != nil {
		return "", "", err
	}

	return plainKey, hashedKey, nil
}

func (s *apiKeyService) HashAPIKey(plainKey string) (string, error) {
	hashedKey, err := s.hasher.Hash([]byte(plainKey))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash api key")
	}
	return hashedKey, nil
}

func (s *apiKeyService) VerifyAPIKey(plainKey string, hashedKey string) bool {
	if plainKey == "" || hashedKey == "" {
		return false
	}
	ok, err := s.hasher.Verify([]byte(plainKey), hashedKey)
	if err != nil {
		return false
	}
	return ok
}
