package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"

	cryptoDomain "github.com/allisson/creditcards/internal/crypto/domain"
)

// AESGCMFieldEncryptor implements FieldEncryptor with AES-256-GCM for confidentiality
// and HMAC-SHA256 for lookup hashes.
//
// Envelope layout before base64 encoding:
//
//	+-----------+----------+----------------------+
//	| nonce(12) | tag(16)  | ciphertext(len(pt))  |
//	+-----------+----------+----------------------+
//
// Key material is owned by the encryptor and wiped by Close.
type AESGCMFieldEncryptor struct {
	mu   sync.RWMutex
	keys *cryptoDomain.FieldKeys
	aead cipher.AEAD
}

// NewAESGCMFieldEncryptor derives both keys from the configured secrets and builds
// the encryptor. Both secrets are required.
func NewAESGCMFieldEncryptor(encryptionSecret, hmacSecret string) (*AESGCMFieldEncryptor, error) {
	if encryptionSecret == "" {
		return nil, cryptoDomain.ErrEncryptionSecretNotSet
	}
	if hmacSecret == "" {
		return nil, cryptoDomain.ErrHMACSecretNotSet
	}

	encryptionKey := DeriveKey(encryptionSecret)
	defer cryptoDomain.Zero(encryptionKey)

	hmacKey := DeriveKey(hmacSecret)
	defer cryptoDomain.Zero(hmacKey)

	return NewAESGCMFieldEncryptorFromKeys(encryptionKey, hmacKey)
}

// NewAESGCMFieldEncryptorFromKeys builds the encryptor from raw 32-byte keys,
// skipping derivation. The keys are copied; callers may wipe their slices afterwards.
func NewAESGCMFieldEncryptorFromKeys(encryptionKey, hmacKey []byte) (*AESGCMFieldEncryptor, error) {
	keys, err := cryptoDomain.NewFieldKeys(encryptionKey, hmacKey)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(keys.EncryptionKey)
	if err != nil {
		keys.Close()
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		keys.Close()
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMFieldEncryptor{keys: keys, aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (e *AESGCMFieldEncryptor) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return plaintext, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.aead == nil {
		return "", cryptoDomain.ErrEncryptorClosed
	}

	nonce := make([]byte, cryptoDomain.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the tag after the ciphertext; the envelope stores it first.
	sealed := e.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertextLen := len(sealed) - cryptoDomain.TagSize

	envelope := make([]byte, 0, cryptoDomain.NonceSize+len(sealed))
	envelope = append(envelope, nonce...)
	envelope = append(envelope, sealed[ciphertextLen:]...)
	envelope = append(envelope, sealed[:ciphertextLen]...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt opens an envelope produced by Encrypt.
func (e *AESGCMFieldEncryptor) Decrypt(envelope string) (string, error) {
	if envelope == "" {
		return envelope, nil
	}

	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrMalformedEnvelope, err)
	}
	if len(raw) < cryptoDomain.MinEnvelopeSize {
		return "", fmt.Errorf(
			"%w: got %d bytes, need at least %d",
			cryptoDomain.ErrMalformedEnvelope,
			len(raw),
			cryptoDomain.MinEnvelopeSize,
		)
	}

	nonce := raw[:cryptoDomain.NonceSize]
	tag := raw[cryptoDomain.NonceSize:cryptoDomain.MinEnvelopeSize]
	ciphertext := raw[cryptoDomain.MinEnvelopeSize:]

	sealed := make([]byte, 0, len(ciphertext)+cryptoDomain.TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.aead == nil {
		return "", cryptoDomain.ErrEncryptorClosed
	}

	plaintext, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// ComputeHash returns base64(HMAC-SHA256(hmacKey, value)).
func (e *AESGCMFieldEncryptor) ComputeHash(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.keys == nil {
		return "", cryptoDomain.ErrEncryptorClosed
	}

	mac := hmac.New(sha256.New, e.keys.HMACKey)
	mac.Write([]byte(value))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Close wipes both keys and drops the cipher. Subsequent calls are no-ops.
func (e *AESGCMFieldEncryptor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.keys == nil {
		return
	}

	e.keys.Close()
	e.keys = nil
	e.aead = nil
}
