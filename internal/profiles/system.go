// Package profiles manages the per-user business profile applied to every
// document: the issuing business's identity, logo, and document defaults.
package profiles

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the business identity printed on a user's documents.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	BusinessName    string    `json:"business_name"`
	BusinessEmail   string    `json:"business_email"`
	BusinessPhone   string    `json:"business_phone"`
	BusinessAddress string    `json:"business_address"`
	LogoKey         *string   `json:"logo_key,omitempty"`
	DefaultCurrency string    `json:"default_currency"`
	DefaultNotes    string    `json:"default_notes"`
	DefaultTerms    string    `json:"default_terms"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpsertProfileCommand carries the writable profile fields.
type UpsertProfileCommand struct {
	BusinessName    string  `json:"business_name"`
	BusinessEmail   string  `json:"business_email"`
	BusinessPhone   string  `json:"business_phone"`
	BusinessAddress string  `json:"business_address"`
	LogoKey         *string `json:"logo_key"`
	DefaultCurrency string  `json:"default_currency"`
	DefaultNotes    string  `json:"default_notes"`
	DefaultTerms    string  `json:"default_terms"`
}

// System defines the profile operations. Each user has at most one profile.
type System interface {
	Handler() *Handler
	Get(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, userID string, cmd UpsertProfileCommand) (*Profile, error)
	Delete(ctx context.Context, userID string) error
}
