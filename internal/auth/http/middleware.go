// Package http provides HTTP middleware for API key authentication and rate limiting.
package http

import (
	"crypto/sha256"
	"log/slog"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/creditcards/internal/auth/service"
	apperrors "github.com/allisson/creditcards/internal/errors"
	"github.com/allisson/creditcards/internal/httputil"
)

// APIKeyMiddleware authenticates requests carrying "Authorization: Bearer <api key>"
// against the configured Argon2id hash.
//
// The SHA-256 digest of each key that verified is cached; later requests with the
// same key skip Argon2id. Keys that failed verification are never cached.
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Key that does not match the hash → 401 Unauthorized
func APIKeyMiddleware(
	apiKeyService authService.APIKeyService,
	apiKeyHash string,
	logger *slog.Logger,
) gin.HandlerFunc {
	var verified sync.Map // map[[32]byte]struct{}

	return func(c *gin.Context) {
		plainKey, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		digest := sha256.Sum256([]byte(plainKey))
		if _, cached := verified.Load(digest); !cached {
			if !apiKeyService.VerifyAPIKey(plainKey, apiKeyHash) {
				logger.Debug("authentication failed: invalid api key")
				httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
				c.Abort()
				return
			}
			verified.Store(digest, struct{}{})
		}

		c.Next()
	}
}

// bearerToken extracts the token from a case-insensitive "Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
