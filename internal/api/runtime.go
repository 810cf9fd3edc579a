package api

import (
	"log/slog"

	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/database"
	"github.com/billforge/billforge/internal/lifecycle"
	"github.com/billforge/billforge/internal/storage"
)

// Runtime bundles the infrastructure the API module builds on.
type Runtime struct {
	Config    *config.Config
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Lifecycle *lifecycle.Coordinator
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(
	cfg *config.Config,
	logger *slog.Logger,
	db database.System,
	store storage.System,
	lc *lifecycle.Coordinator,
) *Runtime {
	return &Runtime{
		Config:    cfg,
		Logger:    logger.With("module", "api"),
		Database:  db,
		Storage:   store,
		Lifecycle: lc,
	}
}
