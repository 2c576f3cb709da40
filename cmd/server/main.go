// Package main is the entry point for the grainpay API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grainpay/internal/config"
	"grainpay/internal/domain/expense"
	"grainpay/internal/domain/income"
	v1 "grainpay/internal/infrastructure/http/v1"
	"grainpay/internal/infrastructure/storage"
	"grainpay/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetDefault(log)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	log.Infow("starting grainpay server", "env", cfg.Env, "driver", cfg.DB.Driver)

	// --- Storage ---
	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatalw("failed to open storage", "error", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		log.Fatalw("failed to ping database", "error", err)
	}
	log.Info("database connection established")

	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
		log.Info("schema applied")
	}

	// --- Services ---
	expenseService := expense.NewService(store.Expenses, store.TxManager, nil)
	incomeService := income.NewService(store.Incomes, store.TxManager, nil)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Expenses:    expenseService,
		Incomes:     incomeService,
		DB:          store,
		Driver:      store.Driver,
		Logger:      log,
		Development: cfg.IsDevelopment(),
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: v1.Wrap(router, v1.TransportConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Debug:          cfg.IsDevelopment() && cfg.LogLevel == "debug",
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
