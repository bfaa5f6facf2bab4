package service

// Options selects and configures the FieldEncryptor implementation.
type Options struct {
	// Enabled switches between AES-256-GCM and the pass-through encryptor.
	Enabled bool
	// EncryptionSecret is the passphrase the AES key is derived from.
	EncryptionSecret string
	// HMACSecret is the passphrase the lookup hash key is derived from.
	HMACSecret string
}

// NewFieldEncryptor returns the AES-256-GCM encryptor when encryption is enabled and
// the no-op encryptor otherwise. Missing secrets are an error only when enabled.
func NewFieldEncryptor(opts Options) (FieldEncryptor, error) {
	if !opts.Enabled {
		return NewNoOpFieldEncryptor(), nil
	}

	encryptor, err := NewAESGCMFieldEncryptor(opts.EncryptionSecret, opts.HMACSecret)
	if err != nil {
		return nil, err
	}
	return encryptor, nil
}
