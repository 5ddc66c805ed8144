// Package app wires the application together: configuration, logging,
// database, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres"
	pgcatalog "github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres/catalog"
	pgfilament "github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres/filament"
	"github.com/spoolkeep/spoolkeep-backend/internal/auth"
	"github.com/spoolkeep/spoolkeep-backend/internal/config"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/catalog"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/filament"
	"github.com/spoolkeep/spoolkeep-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, runs pending migrations, builds the service graph,
// and serves HTTP until the context is cancelled or a shutdown signal
// arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	filamentSvc := filament.NewService(logger, pgfilament.New(pool), cfg.Inventory)
	manufacturerSvc := catalog.NewNamedSet(logger, pgcatalog.NewManufacturers(pool), "manufacturer", cfg.Inventory)
	materialSvc := catalog.NewNamedSet(logger, pgcatalog.NewMaterials(pool), "material", cfg.Inventory)
	locationSvc := catalog.NewNamedSet(logger, pgcatalog.NewStorageLocations(pool), "storage-location", cfg.Inventory)
	colorSvc := catalog.NewColorSet(logger, pgcatalog.NewColors(pool), cfg.Inventory)
	diameterSvc := catalog.NewDiameterSet(logger, pgcatalog.NewDiameters(pool), cfg.Inventory)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handlers := rest.Handlers{
		Health:           rest.NewHealthHandler(pool, BuildVersion()),
		Filaments:        rest.NewFilamentHandler(filamentSvc, logger),
		Manufacturers:    rest.NewNamedHandler(manufacturerSvc, logger, "manufacturer"),
		Materials:        rest.NewNamedHandler(materialSvc, logger, "material"),
		StorageLocations: rest.NewNamedHandler(locationSvc, logger, "storage-location"),
		Colors:           rest.NewColorHandler(colorSvc, logger),
		Diameters:        rest.NewDiameterHandler(diameterSvc, logger),
	}

	router := rest.NewRouter(handlers, jwtManager, logger, cfg.CORS)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped cleanly")
	return nil
}
