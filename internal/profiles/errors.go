package profiles

import (
	"errors"
	"net/http"
)

// Domain errors for profile operations.
var (
	ErrNotFound    = errors.New("profile not found")
	ErrDuplicate   = errors.New("profile already exists for user")
	ErrMissingName = errors.New("business_name is required")
	ErrBadCurrency = errors.New("default_currency must be a 3-letter currency code")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrMissingName) || errors.Is(err, ErrBadCurrency) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
