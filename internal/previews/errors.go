package previews

import (
	"errors"
	"net/http"
)

// Preview error sentinels.
var (
	ErrNotFound     = errors.New("preview not found")
	ErrInvalidImage = errors.New("preview must be a decodable PNG image")
	ErrFileTooLarge = errors.New("preview exceeds the maximum upload size")
	ErrInvalidKind  = errors.New("unknown document kind")
)

// MapHTTPStatus maps preview errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidImage), errors.Is(err, ErrInvalidKind):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
