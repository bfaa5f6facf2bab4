// Package domain defines the key material, envelope constants and errors used by
// field-level encryption of credit card data.
package domain

import "fmt"

// FieldKeys holds the two independent 32-byte keys of a field encryptor.
// EncryptionKey feeds AES-256-GCM and HMACKey feeds HMAC-SHA256 lookup hashes.
type FieldKeys struct {
	EncryptionKey []byte
	HMACKey       []byte
}

// NewFieldKeys validates both keys and returns private copies of them.
// The caller keeps ownership of the slices it passed in.
func NewFieldKeys(encryptionKey, hmacKey []byte) (*FieldKeys, error) {
	if len(encryptionKey) != KeySize {
		return nil, fmt.Errorf(
			"%w: encryption key must be %d bytes, got %d",
			ErrInvalidKeySize,
			KeySize,
			len(encryptionKey),
		)
	}
	if len(hmacKey) != KeySize {
		return nil, fmt.Errorf("%w: hmac key must be %d bytes, got %d", ErrInvalidKeySize, KeySize, len(hmacKey))
	}

	return &FieldKeys{
		EncryptionKey: append([]byte(nil), encryptionKey...),
		HMACKey:       append([]byte(nil), hmacKey...),
	}, nil
}

// Close wipes both keys.
func (k *FieldKeys) Close() {
	Zero(k.EncryptionKey)
	Zero(k.HMACKey)
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
