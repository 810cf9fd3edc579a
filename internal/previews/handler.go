package previews

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/identity"
	"github.com/billforge/billforge/pkg/handlers"
	"github.com/billforge/billforge/pkg/routes"
)

// Handler provides HTTP endpoints for preview operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a preview handler with the specified upload limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "previews"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the preview endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/previews",
		Tags:        []string{"Previews"},
		Description: "Document preview surface captures",
		Routes: []routes.Route{
			{Method: "PUT", Pattern: "/{kind}", Handler: h.Upload},
			{Method: "GET", Pattern: "/{kind}", Handler: h.Fetch},
			{Method: "DELETE", Pattern: "/{kind}", Handler: h.Delete},
		},
	}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserID(r.Context())
	kind := documents.Kind(r.PathValue("kind"))
	number := r.URL.Query().Get("number")

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidImage)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidImage)
		return
	}

	preview, err := h.sys.Store(r.Context(), userID, kind, number, data)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, preview)
}

func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserID(r.Context())
	kind := documents.Kind(r.PathValue("kind"))
	number := r.URL.Query().Get("number")

	if !kind.Valid() {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidKind)
		return
	}

	data, err := h.sys.Locate(r.Context(), userID, kind, number)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserID(r.Context())
	kind := documents.Kind(r.PathValue("kind"))
	number := r.URL.Query().Get("number")

	if !kind.Valid() {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidKind)
		return
	}

	if err := h.sys.Delete(r.Context(), userID, kind, number); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
