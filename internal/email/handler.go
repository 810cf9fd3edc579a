package email

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/billforge/billforge/internal/identity"
	"github.com/billforge/billforge/pkg/handlers"
	"github.com/billforge/billforge/pkg/routes"
)

// Handler provides HTTP endpoints for email operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an email handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "email"),
	}
}

// Routes returns the email endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/email",
		Tags:        []string{"Email"},
		Description: "Document dispatch by email",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Send},
		},
	}
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserID(r.Context())

	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	receipt, err := h.sys.Send(r.Context(), userID, msg)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, receipt)
}
