package domain

// Sizes of the AES-256-GCM field envelope: base64(nonce || tag || ciphertext).
const (
	// KeySize is the length in bytes of both the encryption key and the HMAC key.
	KeySize = 32

	// NonceSize is the GCM standard nonce size. Other sizes take a different GHASH path
	// and are not accepted.
	NonceSize = 12

	// TagSize is the full-strength GCM authentication tag.
	TagSize = 16

	// MinEnvelopeSize is the smallest decoded envelope: an empty ciphertext plus framing.
	MinEnvelopeSize = NonceSize + TagSize
)

// Key derivation parameters. Changing any of them makes previously stored
// ciphertexts and card number hashes unreadable.
const (
	PBKDF2Iterations  = 100000
	KeyDerivationSalt = "CreditCard.Encryption.Salt.V1"
)
