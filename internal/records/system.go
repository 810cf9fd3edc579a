// Package records keeps the immutable history of finalized documents.
// A record is written when a document is finalized and never modified
// afterwards; corrections are issued as new documents.
package records

import (
	"context"
	"time"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is one finalized document with its computed total frozen at
// finalization time.
type Record struct {
	ID        uuid.UUID          `json:"id"`
	UserID    string             `json:"user_id"`
	Kind      documents.Kind     `json:"kind"`
	Number    string             `json:"number"`
	Currency  string             `json:"currency"`
	Total     decimal.Decimal    `json:"total"`
	Document  documents.Document `json:"document"`
	CreatedAt time.Time          `json:"created_at"`
}

// System defines the record operations. Records are create and read only.
type System interface {
	Handler() *Handler
	List(ctx context.Context, userID string, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Record], error)
	Find(ctx context.Context, userID string, id uuid.UUID) (*Record, error)
	Create(ctx context.Context, userID string, doc documents.Document) (*Record, error)
}
