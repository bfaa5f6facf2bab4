package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/creditcards/internal/app"
	"github.com/allisson/creditcards/internal/config"
)

// runnable is a component that runs until Shutdown is called.
type runnable interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// backgroundWorker runs until its context is cancelled.
type backgroundWorker interface {
	Start(ctx context.Context) error
}

// RunServer starts the API server, the metrics server when enabled and the outbox
// processor when enabled. It blocks until SIGINT/SIGTERM or until one of them fails,
// then shuts the servers down within ServerShutdownTimeout and wipes key material.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server, err := container.HTTPServer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	servers := []runnable{server}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers = append(servers, metricsServer)
	}

	var workers []backgroundWorker
	if cfg.OutboxEnabled {
		outboxUseCase, err := container.OutboxUseCase()
		if err != nil {
			return fmt.Errorf("failed to initialize outbox processor: %w", err)
		}
		workers = append(workers, outboxUseCase)
	}

	return serve(ctx, cfg, logger, servers, workers)
}

// serve runs servers and workers in one errgroup. The first failure, or cancellation
// of ctx, stops everything. A worker returning context.Canceled is a clean exit.
func serve(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	servers []runnable,
	workers []backgroundWorker,
) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		g.Go(func() error {
			return s.Start(gctx)
		})
	}

	for _, w := range workers {
		g.Go(func() error {
			if err := w.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
		defer shutdownCancel()

		var shutdownErrors []error
		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}
		}
		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
