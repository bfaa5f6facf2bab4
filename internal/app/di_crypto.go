package app

import (
	"fmt"

	cryptoService "github.com/allisson/creditcards/internal/crypto/service"
)

// FieldEncryptor returns the field encryptor selected by ENCRYPTION_ENABLED, wrapped with
// business metrics when metrics are enabled. Shutdown closes it.
func (c *Container) FieldEncryptor() (cryptoService.FieldEncryptor, error) {
	err := c.resolve("fieldEncryptor", &c.fieldEncryptorInit, func() error {
		encryptor, err := c.initFieldEncryptor()
		if err != nil {
			return err
		}
		c.fieldEncryptor = encryptor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.fieldEncryptor, nil
}

func (c *Container) initFieldEncryptor() (cryptoService.FieldEncryptor, error) {
	encryptor, err := cryptoService.NewFieldEncryptor(cryptoService.Options{
		Enabled:          c.config.EncryptionEnabled,
		EncryptionSecret: c.config.EncryptionKey,
		HMACSecret:       c.config.EncryptionHMACKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create field encryptor: %w", err)
	}

	if !c.config.EncryptionEnabled {
		c.Logger().Warn("field encryption disabled, card data will be stored as plaintext")
	}

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			encryptor.Close()
			return nil, fmt.Errorf("failed to get business metrics for field encryptor: %w", err)
		}
		return cryptoService.NewFieldEncryptorWithMetrics(encryptor, businessMetrics), nil
	}

	return encryptor, nil
}
