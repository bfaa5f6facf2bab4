package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/creditcards/internal/crypto/domain"
)

// DeriveKey stretches an operator supplied secret into a 32-byte key with
// PBKDF2-HMAC-SHA256 over the fixed application salt. The same secret always
// yields the same key, so stored data stays readable across restarts.
func DeriveKey(secret string) []byte {
	password := []byte(secret)
	defer cryptoDomain.Zero(password)

	return pbkdf2.Key(
		password,
		[]byte(cryptoDomain.KeyDerivationSalt),
		cryptoDomain.PBKDF2Iterations,
		cryptoDomain.KeySize,
		sha256.New,
	)
}
