package service

import (
	"crypto/sha256"
	"encoding/base64"
)

// NoOpFieldEncryptor stores fields as plaintext. It is selected when encryption is
// disabled so the persistence layer keeps a single code path.
type NoOpFieldEncryptor struct{}

// NewNoOpFieldEncryptor creates a pass-through FieldEncryptor.
func NewNoOpFieldEncryptor() *NoOpFieldEncryptor {
	return &NoOpFieldEncryptor{}
}

// Encrypt returns plaintext unchanged.
func (n *NoOpFieldEncryptor) Encrypt(plaintext string) (string, error) {
	return plaintext, nil
}

// Decrypt returns envelope unchanged.
func (n *NoOpFieldEncryptor) Decrypt(envelope string) (string, error) {
	return envelope, nil
}

// ComputeHash returns an unkeyed base64 SHA-256 digest so the unique lookup column
// keeps working. Empty input is returned unchanged.
func (n *NoOpFieldEncryptor) ComputeHash(value string) (string, error) {
	if value == "" {
		return value, nil
	}
	sum := sha256.Sum256([]byte(value))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// Close does nothing.
func (n *NoOpFieldEncryptor) Close() {}
