// Package shareditems manages the line item library shared between a
// user's invoice and receipt drafts. The library is replaced wholesale on
// every save; there is no per-item endpoint.
package shareditems

import (
	"context"
	"time"

	"github.com/billforge/billforge/internal/documents"
)

// SharedItems is a user's reusable line item library.
type SharedItems struct {
	UserID    string               `json:"user_id"`
	Items     []documents.LineItem `json:"items"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// System defines the shared item operations.
type System interface {
	Handler() *Handler
	Get(ctx context.Context, userID string) (*SharedItems, error)
	Replace(ctx context.Context, userID string, items []documents.LineItem) (*SharedItems, error)
}
