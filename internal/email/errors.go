package email

import (
	"errors"
	"net/http"
)

// Email error sentinels, categorized so the client can distinguish
// configuration problems from delivery problems.
var (
	ErrInvalidMessage      = errors.New("invalid email message")
	ErrMisconfigured       = errors.New("email provider is not configured or rejected the credentials")
	ErrSandboxRestricted   = errors.New("sandbox mode restricts delivery to the configured sandbox recipient")
	ErrAttachmentTooLarge  = errors.New("exported document exceeds the attachment size limit")
	ErrMalformedAttachment = errors.New("provider rejected the attachment as malformed")
	ErrDeliveryFailed      = errors.New("provider failed to deliver the message")
)

// MapHTTPStatus maps email errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidMessage):
		return http.StatusBadRequest
	case errors.Is(err, ErrMisconfigured):
		return http.StatusBadGateway
	case errors.Is(err, ErrSandboxRestricted):
		return http.StatusForbidden
	case errors.Is(err, ErrAttachmentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrMalformedAttachment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
