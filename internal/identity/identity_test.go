package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/billforge/billforge/internal/identity"
)

func TestRequire(t *testing.T) {
	var gotUser string
	handler := identity.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = identity.UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set(identity.Header, "alice")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotUser != "alice" {
		t.Errorf("user = %q, want alice", gotUser)
	}
}

func TestRequire_MissingHeader(t *testing.T) {
	called := false
	handler := identity.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("handler called without user header")
	}
}

func TestRequire_BlankHeader(t *testing.T) {
	handler := identity.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set(identity.Header, "   ")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := identity.UserID(req.Context()); got != "" {
		t.Errorf("UserID() = %q, want empty", got)
	}
}
