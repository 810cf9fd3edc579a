// Package database provides PostgreSQL connection management and schema
// migration for the service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// System manages the database connection pool and schema lifecycle.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type system struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens and verifies a database connection pool from the configuration.
func New(cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &system{
		db:     db,
		logger: logger.With("system", "database"),
	}, nil
}

// Connection returns the underlying connection pool.
func (s *system) Connection() *sql.DB {
	return s.db
}

// Start applies pending migrations during startup and closes the pool on shutdown.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting database system")

	lc.OnStartup(func() {
		if err := s.migrate(); err != nil {
			s.logger.Error("migration failed", "error", err)
			return
		}
		s.logger.Info("schema up to date")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close error", "error", err)
		}
	})

	return nil
}
