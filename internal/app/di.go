// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/allisson/creditcards/internal/auth/service"
	"github.com/allisson/creditcards/internal/config"
	creditcardHTTP "github.com/allisson/creditcards/internal/creditcard/http"
	creditcardUseCase "github.com/allisson/creditcards/internal/creditcard/usecase"
	cryptoService "github.com/allisson/creditcards/internal/crypto/service"
	"github.com/allisson/creditcards/internal/database"
	"github.com/allisson/creditcards/internal/http"
	"github.com/allisson/creditcards/internal/metrics"
	outboxRepository "github.com/allisson/creditcards/internal/outbox/repository"
	outboxUseCase "github.com/allisson/creditcards/internal/outbox/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access and cached; an initialization error is
// cached as well and returned on every later call.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	fieldEncryptor  cryptoService.FieldEncryptor

	// Repositories
	creditCardRepository creditcardUseCase.CreditCardRepository
	reportRepository     creditcardUseCase.ReportRepository
	outboxRepository     outboxUseCase.OutboxEventRepository

	// Services and use cases
	apiKeyService     authService.APIKeyService
	creditCardUseCase creditcardUseCase.CreditCardUseCase
	reportUseCase     creditcardUseCase.ReportUseCase
	outboxUseCase     outboxUseCase.UseCase

	// HTTP
	creditCardHandler *creditcardHTTP.CreditCardHandler
	reportHandler     *creditcardHTTP.ReportHandler
	httpServer        *http.Server
	metricsServer     *http.MetricsServer

	mu                       sync.Mutex
	loggerInit               sync.Once
	dbInit                   sync.Once
	txManagerInit            sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	fieldEncryptorInit       sync.Once
	creditCardRepositoryInit sync.Once
	reportRepositoryInit     sync.Once
	outboxRepositoryInit     sync.Once
	apiKeyServiceInit        sync.Once
	creditCardUseCaseInit    sync.Once
	reportUseCaseInit        sync.Once
	outboxUseCaseInit        sync.Once
	creditCardHandlerInit    sync.Once
	reportHandlerInit        sync.Once
	httpServerInit           sync.Once
	metricsServerInit        sync.Once
	initErrors               map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// resolve runs init once and returns the error it produced, on this and every later call.
func (c *Container) resolve(name string, once *sync.Once, init func() error) error {
	once.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[name] = err
			c.mu.Unlock()
		}
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	err := c.resolve("db", &c.dbInit, func() (err error) {
		c.db, err = c.initDB()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	err := c.resolve("txManager", &c.txManagerInit, func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for tx manager: %w", err)
		}
		c.txManager = database.NewTxManager(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus-backed metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.resolve("metricsProvider", &c.metricsProviderInit, func() (err error) {
		if !c.config.MetricsEnabled {
			return nil
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.resolve("businessMetrics", &c.businessMetricsInit, func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}
		c.businessMetrics, err = metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// OutboxRepository returns the outbox event repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	err := c.resolve("outboxRepository", &c.outboxRepositoryInit, func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for outbox repository: %w", err)
		}

		switch c.config.DBDriver {
		case "mysql":
			c.outboxRepository = outboxRepository.NewMySQLOutboxEventRepository(db)
		case "postgres":
			c.outboxRepository = outboxRepository.NewPostgreSQLOutboxEventRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.outboxRepository, nil
}

// OutboxUseCase returns the outbox processor.
func (c *Container) OutboxUseCase() (outboxUseCase.UseCase, error) {
	err := c.resolve("outboxUseCase", &c.outboxUseCaseInit, func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
		}

		outboxRepo, err := c.OutboxRepository()
		if err != nil {
			return fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
		}

		logger := c.Logger()
		c.outboxUseCase = outboxUseCase.NewOutboxUseCase(
			outboxUseCase.Config{
				Interval:      c.config.OutboxInterval,
				BatchSize:     c.config.OutboxBatchSize,
				MaxRetries:    c.config.OutboxMaxRetries,
				RetryInterval: c.config.OutboxRetryInterval,
			},
			txManager,
			outboxRepo,
			outboxUseCase.NewCreditCardEventProcessor(logger),
			logger,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.outboxUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
// Key material is wiped after the servers stop and before the database closes.
func (c *Container) Shutdown(ctx context.Context) error {
	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.fieldEncryptor != nil {
		c.fieldEncryptor.Close()
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(shutdownErrors...))
	}

	return nil
}

// initLogger creates a JSON logger at the configured level, defaulting to info.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
