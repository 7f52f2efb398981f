package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Mallqui258/Automatizacion2/internal/cache"
	"github.com/Mallqui258/Automatizacion2/internal/config"
	"github.com/Mallqui258/Automatizacion2/internal/events"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/repositories/memory"
	"github.com/Mallqui258/Automatizacion2/internal/repositories/postgres"
	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/Mallqui258/Automatizacion2/internal/utils"
	"github.com/Mallqui258/Automatizacion2/pkg"
	"github.com/spf13/cobra"
)

// application holds everything a command needs, plus the cleanup to run
// when the command ends.
type application struct {
	cfg      *config.Config
	logger   utils.Logger
	services services.ServiceManager
	closers  []func() error
}

// loadConfig reads the environment and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if storage, _ := cmd.Flags().GetString("storage"); storage != "" {
		cfg.Storage = storage
	}
	if dsn, _ := cmd.Flags().GetString("database-url"); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApplication wires storage, cache and events from cfg. A cache or broker
// that cannot be reached is logged and replaced by its no-op version;
// storage failures are fatal.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	logger := utils.NewLogger(cfg.Environment)
	slogger := utils.ToSlogLogger(logger)
	app := &application{cfg: cfg, logger: logger}

	repo, err := app.openRepository(ctx)
	if err != nil {
		return nil, err
	}

	cacheService := cache.NewNoopCache()
	client, err := pkg.NewRedisClient(ctx, cfg.RedisURL)
	switch {
	case err != nil:
		logger.Warn("Redis unavailable, profile cache disabled", "error", err)
	case client != nil:
		cacheService = cache.NewRedisCache(client, slogger)
		app.closers = append(app.closers, client.Close)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.Warn("Event publisher unavailable, falling back to mock", "error", err)
		publisher = events.NewMockEventPublisher(slogger)
	}
	app.closers = append(app.closers, publisher.Close)

	app.services = services.NewServiceManager(services.Dependencies{
		Repository: repo,
		Cache:      cacheService,
		CacheTTL:   cfg.CacheTTL,
		Publisher:  publisher,
		Logger:     slogger,
	})
	return app, nil
}

func (app *application) openRepository(ctx context.Context) (repositories.Repository, error) {
	if app.cfg.Storage == config.StorageMemory {
		app.logger.Info("Using in-memory session storage")
		return memory.NewRepository(), nil
	}

	db, err := pkg.InitDatabase(app.cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	app.closers = append(app.closers, sqlDB.Close)

	repo := postgres.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return repo, nil
}

// Close releases resources in reverse order of acquisition.
func (app *application) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Warn("Error during shutdown", "error", err)
		}
	}
	app.closers = nil
}

func discardSlog() *slog.Logger {
	return utils.ToSlogLogger(utils.NewDiscardLogger())
}
