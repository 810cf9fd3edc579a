// Package contacts manages a user's client address book. Contacts prefill
// the billed-party fields when the client composes a document.
package contacts

import (
	"context"
	"time"

	"github.com/billforge/billforge/pkg/pagination"
	"github.com/google/uuid"
)

// Contact is one billable party in a user's address book.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactCommand carries the writable contact fields for create and update.
type ContactCommand struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// System defines the contact operations, all scoped to the acting user.
type System interface {
	Handler() *Handler
	List(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResult[Contact], error)
	Find(ctx context.Context, userID string, id uuid.UUID) (*Contact, error)
	Create(ctx context.Context, userID string, cmd ContactCommand) (*Contact, error)
	Update(ctx context.Context, userID string, id uuid.UUID, cmd ContactCommand) (*Contact, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
