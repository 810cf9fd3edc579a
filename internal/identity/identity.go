// Package identity resolves the acting user for a request. The service
// trusts the X-User-ID header populated by the authenticating front door;
// it performs no authentication of its own.
package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// Header carries the authenticated user identifier.
const Header = "X-User-ID"

// ErrMissingUser indicates a request without a user identifier.
var ErrMissingUser = errors.New("missing user identity")

type contextKey struct{}

// WithUserID returns a context carrying the user identifier.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID returns the user identifier from the context, or an empty string
// when none is set.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Require wraps a handler, rejecting requests without a user identifier
// and storing the identifier on the request context otherwise.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(Header))
		if userID == "" {
			http.Error(w, "missing "+Header+" header", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
