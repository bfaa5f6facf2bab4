package service

import (
	"context"
	"time"

	"github.com/allisson/creditcards/internal/metrics"
)

const metricsDomainCrypto = "crypto"

// fieldEncryptorWithMetrics counts field operations. Decrypt errors are the signal for
// tampered or foreign envelopes in storage.
type fieldEncryptorWithMetrics struct {
	next    FieldEncryptor
	metrics metrics.BusinessMetrics
}

// NewFieldEncryptorWithMetrics wraps a FieldEncryptor with metrics recording.
func NewFieldEncryptorWithMetrics(encryptor FieldEncryptor, m metrics.BusinessMetrics) FieldEncryptor {
	return &fieldEncryptorWithMetrics{
		next:    encryptor,
		metrics: m,
	}
}

func (f *fieldEncryptorWithMetrics) Encrypt(plaintext string) (string, error) {
	start := time.Now()
	envelope, err := f.next.Encrypt(plaintext)
	f.record("field_encrypt", start, err)
	return envelope, err
}

func (f *fieldEncryptorWithMetrics) Decrypt(envelope string) (string, error) {
	start := time.Now()
	plaintext, err := f.next.Decrypt(envelope)
	f.record("field_decrypt", start, err)
	return plaintext, err
}

func (f *fieldEncryptorWithMetrics) ComputeHash(value string) (string, error) {
	start := time.Now()
	hash, err := f.next.ComputeHash(value)
	f.record("field_hash", start, err)
	return hash, err
}

func (f *fieldEncryptorWithMetrics) Close() {
	f.next.Close()
}

func (f *fieldEncryptorWithMetrics) record(operation string, start time.Time, err error) {
	ctx := context.Background()
	status := metrics.Status(err)
	f.metrics.RecordOperation(ctx, metricsDomainCrypto, operation, status)
	f.metrics.RecordDuration(ctx, metricsDomainCrypto, operation, time.Since(start), status)
}
