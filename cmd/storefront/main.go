package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"larek/internal/client"
	"larek/internal/config"
	"larek/internal/events"
	"larek/internal/shell"
	"larek/internal/storefront"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadStorefront()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("api_url", cfg.APIURL).Msg("starting larek storefront")

	bus := events.NewBus(logger)
	api := client.New(client.Config{
		BaseURL: cfg.APIURL,
		CDNURL:  cfg.CDNURL,
		Timeout: cfg.RequestTimeout,
		APIKey:  cfg.APIKey,
	}, logger)
	store := storefront.New(bus, api, logger)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	if err := store.Load(loadCtx); err != nil {
		// The page still renders; POST /reload retries.
		logger.Error().Err(err).Msg("failed to load catalog")
	}
	loadCancel()

	sh, err := shell.New(store, logger)
	if err != nil {
		return fmt.Errorf("failed to create shell: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- sh.Listen(cfg.Shell.Address())
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

		if err := sh.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
