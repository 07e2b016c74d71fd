package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"larek/internal/config"
	"larek/internal/database"
	"larek/internal/handler"
	"larek/internal/repository"
	"larek/internal/router"
	"larek/internal/seed"
	"larek/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("driver", cfg.Database.Driver).Msg("starting larek API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	productRepo, orderRepo, closeStore, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)

	if err := seedCatalog(ctx, cfg, productService, logger); err != nil {
		return err
	}

	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	mux := router.New(productHandler, orderHandler, cfg.Auth.APIKey, cfg.Content.Dir, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// openStore opens the configured catalog store and returns its repositories.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (repository.ProductRepository, repository.OrderRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLiteDSN, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewSQLiteProductRepository(db, logger),
			repository.NewSQLiteOrderRepository(db, logger),
			func() { db.Close() },
			nil

	default:
		pool, err := database.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewProductRepository(pool, logger),
			repository.NewOrderRepository(pool, logger),
			pool.Close,
			nil
	}
}

// seedCatalog loads the configured catalog files, from S3 when enabled with
// local files as the fallback, and upserts them into the store.
func seedCatalog(ctx context.Context, cfg *config.Config, products service.ProductService, logger zerolog.Logger) error {
	if len(cfg.Seed.Files) == 0 {
		logger.Info().Msg("no catalog seed files configured")
		return nil
	}

	var remote seed.Loader
	if cfg.S3.Enabled {
		s3Loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			remote = s3Loader
		}
	}
	loader := seed.NewFallbackLoader(remote, seed.NewFileLoader(logger), cfg.S3.Prefix, logger)

	catalog, err := seed.LoadAll(ctx, loader, cfg.Seed.Files, logger)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	if err := products.Import(ctx, catalog); err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	return nil
}
