// Package service provides field-level encryption for sensitive credit card data.
//
// A FieldEncryptor turns plaintext fields into self-contained AES-256-GCM envelopes
// and computes deterministic HMAC-SHA256 hashes used as lookup keys for values that
// are stored encrypted. The no-op implementation keeps the same contract for
// deployments that run without encryption.
package service

// FieldEncryptor encrypts, decrypts and hashes individual string fields.
//
// Empty input is returned unchanged by all three operations. Implementations are
// safe for concurrent use. Close wipes key material; operations called after Close
// fail with cryptoDomain.ErrEncryptorClosed.
type FieldEncryptor interface {
	// Encrypt returns base64(nonce || tag || ciphertext) using a fresh random nonce.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Malformed input returns ErrMalformedEnvelope and a
	// failed authentication check returns ErrDecryptionFailed.
	Decrypt(envelope string) (string, error)

	// ComputeHash returns a deterministic base64 digest of value.
	ComputeHash(value string) (string, error)

	// Close releases key material. It is safe to call more than once.
	Close()
}
