// Package main applies the embedded database schema for the configured driver.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"grainpay/internal/config"
	"grainpay/internal/infrastructure/storage"
	"grainpay/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Fatalw("migration failed", "driver", cfg.DB.Driver, "error", err)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}
	log.Infow("schema applied", "driver", store.Driver)
	return nil
}
