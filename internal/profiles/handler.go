package profiles

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/billforge/billforge/internal/identity"
	"github.com/billforge/billforge/pkg/handlers"
	"github.com/billforge/billforge/pkg/routes"
)

// Handler provides HTTP endpoints for profile operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a profile handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "profiles"),
	}
}

// Routes returns the profile endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/profile",
		Tags:        []string{"Profile"},
		Description: "Business profile management",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get},
			{Method: "PUT", Pattern: "", Handler: h.Upsert},
			{Method: "DELETE", Pattern: "", Handler: h.Delete},
		},
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.sys.Get(r.Context(), identity.UserID(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}

func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var cmd UpsertProfileCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	profile, err := h.sys.Upsert(r.Context(), identity.UserID(r.Context()), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), identity.UserID(r.Context())); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
