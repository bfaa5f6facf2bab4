package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoService "github.com/allisson/creditcards/internal/crypto/service"
)

func TestRunHashCardNumber(t *testing.T) {
	encryptor, err := cryptoService.NewAESGCMFieldEncryptor(
		"a-very-long-encryption-secret-value",
		"a-very-long-hmac-secret-value-here",
	)
	require.NoError(t, err)
	defer encryptor.Close()

	expected, err := encryptor.ComputeHash("4111111111111111")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunHashCardNumber(encryptor, &out, " 4111111111111111 "))

		assert.Contains(t, out.String(), "Lookup hash: "+expected)
		assert.Contains(t, out.String(), "************1111")
		assert.NotContains(t, out.String(), "4111111111111111")
	})

	t.Run("empty", func(t *testing.T) {
		err := RunHashCardNumber(encryptor, &bytes.Buffer{}, "  ")
		require.Error(t, err)
	})

	t.Run("closed-encryptor", func(t *testing.T) {
		closed, err := cryptoService.NewAESGCMFieldEncryptor("secret-one", "secret-two")
		require.NoError(t, err)
		closed.Close()

		err = RunHashCardNumber(closed, &bytes.Buffer{}, "4111111111111111")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to hash card number")
	})
}
