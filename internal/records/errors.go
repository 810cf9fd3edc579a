package records

import (
	"errors"
	"net/http"

	"github.com/billforge/billforge/internal/documents"
)

// Domain errors for record operations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, documents.ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
