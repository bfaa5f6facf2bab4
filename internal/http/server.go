// Package http provides the HTTP servers of the credit card API and the metrics endpoint.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/creditcards/internal/auth/http"
	authService "github.com/allisson/creditcards/internal/auth/service"
	"github.com/allisson/creditcards/internal/config"
	creditcardHTTP "github.com/allisson/creditcards/internal/creditcard/http"
	"github.com/allisson/creditcards/internal/metrics"
)

const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// SetupRouter registers middleware and routes.
//
// The rate limiter cleanup goroutine lives until ctx is cancelled. API key
// authentication is applied to /v1 only when cfg.APIKeyHash is set.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	creditCardHandler *creditcardHTTP.CreditCardHandler,
	reportHandler *creditcardHTTP.ReportHandler,
	apiKeyService authService.APIKeyService,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	if cfg.APIKeyHash != "" {
		v1.Use(authHTTP.APIKeyMiddleware(apiKeyService, cfg.APIKeyHash, s.logger))
	} else {
		s.logger.Warn("API_KEY_HASH not set, /v1 endpoints are unauthenticated")
	}

	cards := v1.Group("/credit-cards")
	{
		cards.POST("", creditCardHandler.CreateHandler)
		cards.GET("", creditCardHandler.ListHandler)
		cards.GET("/:id", creditCardHandler.GetHandler)
		cards.PUT("/:id", creditCardHandler.UpdateHandler)
		cards.DELETE("/:id", creditCardHandler.DeleteHandler)
		cards.POST("/:id/charge", creditCardHandler.ChargeHandler)
		cards.POST("/:id/payment", creditCardHandler.PaymentHandler)
		cards.POST("/:id/activate", creditCardHandler.ActivateHandler)
		cards.POST("/:id/deactivate", creditCardHandler.DeactivateHandler)
	}

	reports := v1.Group("/reports/credit-cards")
	{
		reports.GET("", reportHandler.ListHandler)
		reports.GET("/active", reportHandler.ListActiveHandler)
		reports.GET("/high-usage", reportHandler.ListHighUsageHandler)
		reports.GET("/:id", reportHandler.GetHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
