package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, discardLogger()))
	router.GET("/v1/credit-cards", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func requestFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/credit-cards", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	router := newRateLimitedRouter(t, 10.0, 20)

	for i := 0; i < 5; i++ {
		w := requestFrom(router, "192.168.1.10:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_BlocksRequestsExceedingBurst(t *testing.T) {
	router := newRateLimitedRouter(t, 0.5, 2)

	for i := 0; i < 2; i++ {
		w := requestFrom(router, "192.168.1.10:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := requestFrom(router, "192.168.1.10:1234")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitMiddleware_IndependentLimitsPerIP(t *testing.T) {
	router := newRateLimitedRouter(t, 0.5, 1)

	assert.Equal(t, http.StatusOK, requestFrom(router, "192.168.1.100:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "192.168.1.100:1234").Code)

	assert.Equal(t, http.StatusOK, requestFrom(router, "192.168.1.200:1234").Code)
}

func TestRateLimiterStore_EvictIdle(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}

	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")

	value, _ := store.limiters.Load("10.0.0.1")
	entry := value.(*rateLimiterEntry)
	entry.mu.Lock()
	entry.lastAccess = time.Now().Add(-2 * time.Hour)
	entry.mu.Unlock()

	store.evictIdle(time.Now().Add(-time.Hour))

	_, stale := store.limiters.Load("10.0.0.1")
	_, fresh := store.limiters.Load("10.0.0.2")
	assert.False(t, stale)
	assert.True(t, fresh)
}

func TestRateLimiterStore_ReusesLimiterPerIP(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}

	assert.Same(t, store.getLimiter("10.0.0.1"), store.getLimiter("10.0.0.1"))
	assert.NotSame(t, store.getLimiter("10.0.0.1"), store.getLimiter("10.0.0.2"))
}
