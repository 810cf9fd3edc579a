// Package api assembles the domain systems into the service's HTTP surface.
// All domain routes live under /api and require a user identity; health
// endpoints sit at the root and do not.
package api

import (
	"log/slog"
	"net/http"

	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/database"
	"github.com/billforge/billforge/internal/identity"
	"github.com/billforge/billforge/internal/lifecycle"
	"github.com/billforge/billforge/internal/middleware"
	"github.com/billforge/billforge/internal/storage"
	"github.com/billforge/billforge/pkg/handlers"
)

// BasePath is the URL prefix for all domain routes.
const BasePath = "/api"

// New builds the complete HTTP handler for the service.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	db database.System,
	store storage.System,
	lc *lifecycle.Coordinator,
) (http.Handler, error) {
	runtime := NewRuntime(cfg, logger, db, store, lc)
	domain := NewDomain(runtime)

	if err := domain.Start(runtime); err != nil {
		return nil, err
	}

	apiHandler := identity.Require(buildRoutes(runtime, domain))

	mux := http.NewServeMux()
	mux.Handle(BasePath+"/", http.StripPrefix(BasePath, apiHandler))
	mux.HandleFunc("GET /healthz", health)
	mux.HandleFunc("GET /readyz", readiness(lc))

	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.CORS(&cfg.CORS))
	mw.Use(middleware.Logger(runtime.Logger))

	return mw.Wrap(mux), nil
}

func health(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readiness(lc *lifecycle.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "starting"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
