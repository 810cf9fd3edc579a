package drafts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/identity"
	"github.com/billforge/billforge/pkg/handlers"
	"github.com/billforge/billforge/pkg/routes"
)

// Handler provides HTTP endpoints for draft operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a draft handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "drafts"),
	}
}

// Routes returns the draft endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/drafts",
		Tags:        []string{"Drafts"},
		Description: "Work-in-progress document persistence",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{kind}", Handler: h.Get},
			{Method: "PUT", Pattern: "/{kind}", Handler: h.Save},
			{Method: "DELETE", Pattern: "/{kind}", Handler: h.Delete},
		},
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	kind := documents.Kind(r.PathValue("kind"))

	draft, err := h.sys.Get(r.Context(), identity.UserID(r.Context()), kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}

// Save responds 202 Accepted: the payload is buffered and persisted once
// the save burst settles.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	kind := documents.Kind(r.PathValue("kind"))

	var payload documents.Document
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Save(r.Context(), identity.UserID(r.Context()), kind, payload); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	kind := documents.Kind(r.PathValue("kind"))

	if err := h.sys.Delete(r.Context(), identity.UserID(r.Context()), kind); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
