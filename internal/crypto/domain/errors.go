package domain

import (
	"github.com/allisson/creditcards/internal/errors"
)

// Field encryption error definitions.
var (
	// ErrInvalidKeySize indicates a raw key is not exactly 32 bytes.
	//
	// Returned when the encryption key or the HMAC key is injected directly
	// with the wrong length. Each key is checked independently.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrEncryptionSecretNotSet indicates ENCRYPTION_KEY is missing while encryption is enabled.
	ErrEncryptionSecretNotSet = errors.New("encryption secret is not set")

	// ErrHMACSecretNotSet indicates ENCRYPTION_HMAC_KEY is missing while encryption is enabled.
	ErrHMACSecretNotSet = errors.New("hmac secret is not set")

	// ErrMalformedEnvelope indicates a stored value is not valid base64 or is shorter
	// than nonce plus tag.
	ErrMalformedEnvelope = errors.New("malformed cipher envelope")

	// ErrDecryptionFailed indicates GCM authentication failed.
	//
	// This can be caused by a wrong key, a corrupted ciphertext or a tampered
	// nonce, tag or ciphertext. The specific cause is not disclosed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptorClosed indicates the key material has already been wiped.
	ErrEncryptorClosed = errors.New("field encryptor is closed")
)
