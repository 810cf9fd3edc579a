package contacts

import (
	"errors"
	"net/http"
)

// Domain errors for contact operations.
var (
	ErrNotFound    = errors.New("contact not found")
	ErrDuplicate   = errors.New("contact already exists")
	ErrMissingName = errors.New("name is required")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrMissingName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
