// Package app wires configuration, storage, remote gateways and services together. The HTTP
// server and the CLI share it.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SscSPs/l10n_addons/internal/adapters/pac"
	"github.com/SscSPs/l10n_addons/internal/adapters/sandbox"
	"github.com/SscSPs/l10n_addons/internal/adapters/sat"
	"github.com/SscSPs/l10n_addons/internal/analytics"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/core/services"
	"github.com/SscSPs/l10n_addons/internal/platform/config"
	"github.com/SscSPs/l10n_addons/internal/repositories/database/memory"
	"github.com/SscSPs/l10n_addons/internal/repositories/database/pgsql"
	"github.com/SscSPs/l10n_addons/pkg/database"
)

// App holds the wired services and the resources to release on shutdown.
type App struct {
	Config   *config.Config
	Services *portssvc.ServiceContainer
	Tracker  *analytics.PosthogClientWrapper
	closers  []func()
}

// New builds the repositories of the configured storage backend, the remote gateways and the
// service container. Postgres migrations run when runMigrations is set.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, runMigrations bool) (*App, error) {
	a := &App{Config: cfg}

	repos, err := a.repositories(ctx, logger, runMigrations)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Tracker = analytics.NewPosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	a.closers = append(a.closers, a.Tracker.Close)

	gw := newGateways(cfg, logger)
	gw.Tracker = a.Tracker
	a.Services = services.NewServiceContainer(repos, gw)
	return a, nil
}

// Close releases the resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) repositories(ctx context.Context, logger *slog.Logger, runMigrations bool) (portsrepo.RepositoryProvider, error) {
	cfg := a.Config
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a.closers = append(a.closers, func() { database.ClosePgxPool(dbPool) })

	if runMigrations {
		if err := RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
	}
	return pgsql.NewRepositoryProvider(dbPool), nil
}

// newGateways picks the signing and status clients. Test mode signs with the sandbox; the SAT
// client is real as soon as SAT_URL is set.
func newGateways(cfg *config.Config, logger *slog.Logger) services.Gateways {
	var gw services.Gateways
	box := sandbox.New()
	if cfg.PACTestMode {
		logger.Warn("PAC test mode enabled, documents are signed by the sandbox")
		gw.PAC = box
	} else {
		gw.PAC = pac.NewClient(pac.Config{
			BaseURL:      cfg.PACURL,
			TokenURL:     cfg.PACTokenURL,
			ClientID:     cfg.PACClientID,
			ClientSecret: cfg.PACClientSecret,
			Timeout:      cfg.PACTimeout,
		})
	}
	if cfg.SATURL != "" {
		gw.SAT = sat.NewClient(cfg.SATURL, cfg.SATTimeout)
	} else {
		gw.SAT = box
	}
	return gw
}

// RunMigrations applies every pending "up" migration found at path.
func RunMigrations(databaseURL, path string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
