package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authMocks "github.com/allisson/creditcards/internal/auth/service/mocks"
	"github.com/allisson/creditcards/internal/config"
	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	creditcardHTTP "github.com/allisson/creditcards/internal/creditcard/http"
	creditcardMocks "github.com/allisson/creditcards/internal/creditcard/usecase/mocks"
	"github.com/allisson/creditcards/internal/metrics"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestServer() *Server {
	return NewServer(nil, "localhost", 8080, discardLogger())
}

type routerFixture struct {
	server      *Server
	cardUseCase *creditcardMocks.MockCreditCardUseCase
	apiKeys     *authMocks.MockAPIKeyService
}

func setupRouter(t *testing.T, cfg *config.Config) routerFixture {
	t.Helper()

	cardUseCase := creditcardMocks.NewMockCreditCardUseCase(t)
	reportUseCase := creditcardMocks.NewMockReportUseCase(t)
	apiKeys := authMocks.NewMockAPIKeyService(t)

	server := createTestServer()
	server.SetupRouter(
		t.Context(),
		cfg,
		creditcardHTTP.NewCreditCardHandler(cardUseCase, server.logger),
		creditcardHTTP.NewReportHandler(reportUseCase, server.logger),
		apiKeys,
		nil,
	)

	return routerFixture{server: server, cardUseCase: cardUseCase, apiKeys: apiKeys}
}

func emptyPage() *creditcardDomain.Page[*creditcardDomain.CreditCard] {
	return &creditcardDomain.Page[*creditcardDomain.CreditCard]{Limit: 50}
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Run("NotReady_NilDB", func(t *testing.T) {
		server := createTestServer()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_ready", response["status"])

		components, ok := response["components"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "error", components["database"])
	})

	t.Run("Ready_PingSucceeds", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		sqlMock.ExpectPing()

		server := NewServer(db, "localhost", 8080, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","components":{"database":"ok"}}`, w.Body.String())
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"test"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSetupRouter_HealthAndRequestID(t *testing.T) {
	fixture := setupRouter(t, &config.Config{})

	w := httptest.NewRecorder()
	fixture.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	parsed, err := uuid.Parse(w.Header().Get("X-Request-Id"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, parsed)
}

func TestSetupRouter_NoMetricsEndpoint(t *testing.T) {
	fixture := setupRouter(t, &config.Config{})

	w := httptest.NewRecorder()
	fixture.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRouter_APIKeyAuthentication(t *testing.T) {
	const apiKeyHash = "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"

	t.Run("MissingKey", func(t *testing.T) {
		fixture := setupRouter(t, &config.Config{APIKeyHash: apiKeyHash})

		w := httptest.NewRecorder()
		fixture.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/credit-cards", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidKey", func(t *testing.T) {
		fixture := setupRouter(t, &config.Config{APIKeyHash: apiKeyHash})

		fixture.apiKeys.EXPECT().VerifyAPIKey("valid-key", apiKeyHash).Return(true).Once()
		fixture.cardUseCase.EXPECT().List(mock.Anything, 0, 50).Return(emptyPage(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/credit-cards", nil)
		req.Header.Set("Authorization", "Bearer valid-key")

		w := httptest.NewRecorder()
		fixture.server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("HealthIsPublic", func(t *testing.T) {
		fixture := setupRouter(t, &config.Config{APIKeyHash: apiKeyHash})

		w := httptest.NewRecorder()
		fixture.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSetupRouter_RateLimit(t *testing.T) {
	fixture := setupRouter(t, &config.Config{
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 0.001,
		RateLimitBurst:          1,
	})

	fixture.cardUseCase.EXPECT().List(mock.Anything, 0, 50).Return(emptyPage(), nil).Once()

	w := httptest.NewRecorder()
	fixture.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/credit-cards", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	fixture.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/credit-cards", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestSetupRouter_CreditCardRoutes(t *testing.T) {
	fixture := setupRouter(t, &config.Config{})

	routes := make(map[string]bool)
	for _, route := range fixture.server.router.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	for _, expected := range []string{
		"POST /v1/credit-cards",
		"GET /v1/credit-cards",
		"GET /v1/credit-cards/:id",
		"PUT /v1/credit-cards/:id",
		"DELETE /v1/credit-cards/:id",
		"POST /v1/credit-cards/:id/charge",
		"POST /v1/credit-cards/:id/payment",
		"POST /v1/credit-cards/:id/activate",
		"POST /v1/credit-cards/:id/deactivate",
		"GET /v1/reports/credit-cards",
		"GET /v1/reports/credit-cards/active",
		"GET /v1/reports/credit-cards/high-usage",
		"GET /v1/reports/credit-cards/:id",
		"GET /health",
		"GET /ready",
	} {
		assert.True(t, routes[expected], "missing route %s", expected)
	}
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server := NewServer(nil, "localhost", 0, discardLogger())
	server.router = gin.New()

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("creditcards_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
