// Package middleware provides the HTTP middleware chain: request logging,
// CORS handling, and trailing slash normalization.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes middleware into a single handler chain.
type System interface {
	Use(m Middleware)
	Wrap(h http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{}
}

// Use appends middleware to the chain. Middleware runs in registration order.
func (s *system) Use(m Middleware) {
	s.stack = append(s.stack, m)
}

// Wrap applies the middleware chain to the handler.
func (s *system) Wrap(h http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		h = s.stack[i](h)
	}
	return h
}
