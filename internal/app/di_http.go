package app

import (
	"context"
	"fmt"

	authService "github.com/allisson/creditcards/internal/auth/service"
	"github.com/allisson/creditcards/internal/http"
)

// APIKeyService returns the Argon2id API key service.
func (c *Container) APIKeyService() authService.APIKeyService {
	c.apiKeyServiceInit.Do(func() {
		c.apiKeyService = authService.NewAPIKeyService()
	})
	return c.apiKeyService
}

// HTTPServer returns the API server with its router configured. ctx bounds the
// background goroutines started by the middleware.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	err := c.resolve("httpServer", &c.httpServerInit, func() error {
		return c.initHTTPServer(ctx)
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.resolve("metricsServer", &c.metricsServerInit, func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		if provider == nil {
			return nil
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

func (c *Container) initHTTPServer(ctx context.Context) error {
	db, err := c.DB()
	if err != nil {
		return fmt.Errorf("failed to get database for http server: %w", err)
	}

	creditCardHandler, err := c.CreditCardHandler()
	if err != nil {
		return fmt.Errorf("failed to get credit card handler for http server: %w", err)
	}

	reportHandler, err := c.ReportHandler()
	if err != nil {
		return fmt.Errorf("failed to get report handler for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(ctx, c.config, creditCardHandler, reportHandler, c.APIKeyService(), metricsProvider)

	c.httpServer = server
	return nil
}
