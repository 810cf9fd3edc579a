package export

import (
	"errors"
	"net/http"

	"github.com/billforge/billforge/internal/documents"
)

// Export error sentinels.
var (
	ErrPreviewNotFound  = errors.New("no preview capture available for export")
	ErrNoDrawingSurface = errors.New("preview surface has no drawable content")
	ErrExportFailed     = errors.New("export failed")
	ErrExportInFlight   = errors.New("an export is already running for this user")
	ErrBadDestination   = errors.New("destination must be file or inline")
)

// MapHTTPStatus maps export errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, documents.ErrValidation), errors.Is(err, ErrBadDestination):
		return http.StatusBadRequest
	case errors.Is(err, ErrPreviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrExportInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrNoDrawingSurface):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
