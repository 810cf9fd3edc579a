// Package drafts persists work-in-progress documents, one per user and
// kind. Saves arrive on every editor keystroke burst, so they pass through
// a coalescing write-behind buffer and only the settled state reaches the
// database.
package drafts

import (
	"context"
	"time"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/lifecycle"
	"github.com/google/uuid"
)

// Draft is a stored work-in-progress document. Payload may be partially
// filled; drafts are not validated until export.
type Draft struct {
	ID        uuid.UUID          `json:"id"`
	UserID    string             `json:"user_id"`
	Kind      documents.Kind     `json:"kind"`
	Payload   documents.Document `json:"payload"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Key identifies a draft slot: one per user and document kind.
type Key struct {
	UserID string
	Kind   documents.Kind
}

// System defines the draft operations. Save is asynchronous: the payload is
// buffered and written once the save burst settles. Start must be called so
// pending saves are flushed on shutdown.
type System interface {
	Handler() *Handler
	Start(lc *lifecycle.Coordinator) error
	Get(ctx context.Context, userID string, kind documents.Kind) (*Draft, error)
	Save(ctx context.Context, userID string, kind documents.Kind, payload documents.Document) error
	Delete(ctx context.Context, userID string, kind documents.Kind) error
}
