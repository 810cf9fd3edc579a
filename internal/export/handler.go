package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/identity"
	"github.com/billforge/billforge/pkg/handlers"
	"github.com/billforge/billforge/pkg/routes"
)

// Handler provides HTTP endpoints for export operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an export handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "export"),
	}
}

// Routes returns the export endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/export",
		Tags:        []string{"Export"},
		Description: "Document PDF export",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Export},
		},
	}
}

// Export accepts the document to export as the request body. The destination
// query parameter selects file or inline delivery, defaulting to file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserID(r.Context())

	dest := Destination(r.URL.Query().Get("destination"))
	if dest == "" {
		dest = DestinationFile
	}

	var doc documents.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Export(r.Context(), userID, doc, dest)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if dest == DestinationFile {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		w.Write(result.Bytes)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
