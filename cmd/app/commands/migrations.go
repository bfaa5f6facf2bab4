package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending migration from <dir>/postgresql or <dir>/mysql,
// depending on driver. Having nothing to apply is not an error.
func RunMigrations(logger *slog.Logger, dir, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	var subdir string
	switch driver {
	case "postgres":
		subdir = "postgresql"
	case "mysql":
		subdir = "mysql"
	default:
		return fmt.Errorf("failed to create migrate instance: unsupported database driver: %s", driver)
	}

	m, err := migrate.New("file://"+filepath.Join(dir, subdir), connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
