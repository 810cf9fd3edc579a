package shareditems

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/identity"
	"github.com/billforge/billforge/pkg/handlers"
	"github.com/billforge/billforge/pkg/routes"
)

// Handler provides HTTP endpoints for shared item operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a shared item handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "shareditems"),
	}
}

// Routes returns the shared item endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/items",
		Tags:        []string{"Items"},
		Description: "Reusable line item library",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get},
			{Method: "PUT", Pattern: "", Handler: h.Replace},
		},
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.Get(r.Context(), identity.UserID(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	var items []documents.LineItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Replace(r.Context(), identity.UserID(r.Context()), items)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
