package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// encryptionSecretLength is the number of random bytes behind each generated secret.
const encryptionSecretLength = 32

// RunCreateEncryptionKeys prints two independent random secrets, one for field
// encryption and one for card number lookup hashes.
func RunCreateEncryptionKeys(writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	encryptionKey, err := randomSecret()
	if err != nil {
		return err
	}
	hmacKey, err := randomSecret()
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(writer, map[string]string{
			"encryption_key":      encryptionKey,
			"encryption_hmac_key": hmacKey,
		})
	}

	_, _ = fmt.Fprintln(writer, "# Field encryption configuration")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintln(writer, "ENCRYPTION_ENABLED=\"true\"")
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", encryptionKey)
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_HMAC_KEY=\"%s\"\n", hmacKey)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintln(writer, "# Changing either key makes existing rows unreadable or unsearchable.")
	return nil
}

func randomSecret() (string, error) {
	secret := make([]byte, encryptionSecretLength)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	defer clear(secret)

	return base64.StdEncoding.EncodeToString(secret), nil
}
