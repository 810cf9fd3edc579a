package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/billforge/billforge/internal/api"
	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/database"
	"github.com/billforge/billforge/internal/lifecycle"
	"github.com/billforge/billforge/internal/logger"
	"github.com/billforge/billforge/internal/server"
	"github.com/billforge/billforge/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("finalize config: %w", err)
	}

	log := logger.New(&cfg.Logging)
	lc := lifecycle.New()

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	store, err := storage.New(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := db.Start(lc); err != nil {
		return fmt.Errorf("start database: %w", err)
	}
	if err := store.Start(lc); err != nil {
		return fmt.Errorf("start storage: %w", err)
	}

	handler, err := api.New(cfg, log, db, store, lc)
	if err != nil {
		return fmt.Errorf("build api: %w", err)
	}

	srv := server.New(&cfg.Server, handler, log)
	if err := srv.Start(lc); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	lc.WaitForStartup()
	log.Info("service ready", "addr", cfg.Server.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutdown signal received")
	if err := lc.Shutdown(cfg.Server.ShutdownTimeoutDuration()); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("service stopped")
	return nil
}
