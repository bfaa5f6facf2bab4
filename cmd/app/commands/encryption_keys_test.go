package commands

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCreateEncryptionKeys(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunCreateEncryptionKeys(&out, "text"))

		matches := regexp.MustCompile(`(?m)^ENCRYPTION(_HMAC)?_KEY="([^"]+)"$`).FindAllStringSubmatch(out.String(), -1)
		require.Len(t, matches, 2)
		assert.NotEqual(t, matches[0][2], matches[1][2])

		for _, match := range matches {
			decoded, err := base64.StdEncoding.DecodeString(match[2])
			require.NoError(t, err)
			assert.Len(t, decoded, 32)
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunCreateEncryptionKeys(&out, "json"))

		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.NotEmpty(t, result["encryption_key"])
		assert.NotEmpty(t, result["encryption_hmac_key"])
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunCreateEncryptionKeys(&bytes.Buffer{}, "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}
