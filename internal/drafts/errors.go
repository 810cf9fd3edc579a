package drafts

import (
	"errors"
	"net/http"
)

// Domain errors for draft operations.
var (
	ErrNotFound    = errors.New("draft not found")
	ErrDuplicate   = errors.New("draft already exists")
	ErrInvalidKind = errors.New("unknown document kind")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidKind) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
