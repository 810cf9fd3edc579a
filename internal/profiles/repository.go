package profiles

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/billforge/billforge/pkg/query"
	"github.com/billforge/billforge/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the profile system backed by the database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "profiles"),
	}
}

// Handler creates the HTTP handler for profile operations.
func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Get(ctx context.Context, userID string) (*Profile, error) {
	q, args := query.NewBuilder(profileProjection, defaultSort).
		WhereEquals("UserID", &userID).
		Build()

	profile, err := repository.QueryOne(ctx, r.db, q, args, scanProfile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &profile, nil
}

func (r *repo) Upsert(ctx context.Context, userID string, cmd UpsertProfileCommand) (*Profile, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO profiles (
			user_id, business_name, business_email, business_phone,
			business_address, logo_key, default_currency, default_notes, default_terms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id)
		DO UPDATE SET
			business_name = $2, business_email = $3, business_phone = $4,
			business_address = $5, logo_key = $6, default_currency = $7,
			default_notes = $8, default_terms = $9, updated_at = NOW()
		RETURNING id, user_id, business_name, business_email, business_phone,
			business_address, logo_key, default_currency, default_notes,
			default_terms, created_at, updated_at`

	profile, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Profile, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			userID, cmd.BusinessName, cmd.BusinessEmail, cmd.BusinessPhone,
			cmd.BusinessAddress, cmd.LogoKey, cmd.DefaultCurrency,
			cmd.DefaultNotes, cmd.DefaultTerms,
		}, scanProfile)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("profile saved", "user_id", userID, "business", profile.BusinessName)
	return &profile, nil
}

func (r *repo) Delete(ctx context.Context, userID string) error {
	q := `DELETE FROM profiles WHERE user_id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, userID); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("profile deleted", "user_id", userID)
	return nil
}

func validateCommand(cmd UpsertProfileCommand) error {
	if cmd.BusinessName == "" {
		return ErrMissingName
	}
	if cmd.DefaultCurrency != "" && len(cmd.DefaultCurrency) != 3 {
		return ErrBadCurrency
	}
	return nil
}
