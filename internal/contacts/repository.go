package contacts

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/billforge/billforge/pkg/pagination"
	"github.com/billforge/billforge/pkg/query"
	"github.com/billforge/billforge/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the contact system backed by the database.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "contacts"),
		pagination: pagination,
	}
}

// Handler creates the HTTP handler for contact operations.
func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResult[Contact], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(contactProjection, defaultSort).
		WhereEquals("UserID", &userID).
		WhereSearch(page.Search, "Name", "Email")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	contacts, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanContact)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	result := pagination.NewPageResult(contacts, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, userID string, id uuid.UUID) (*Contact, error) {
	q, args := query.NewBuilder(contactProjection, defaultSort).
		WhereEquals("UserID", &userID).
		WhereEquals("ID", &id).
		Build()

	contact, err := repository.QueryOne(ctx, r.db, q, args, scanContact)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &contact, nil
}

func (r *repo) Create(ctx context.Context, userID string, cmd ContactCommand) (*Contact, error) {
	if cmd.Name == "" {
		return nil, ErrMissingName
	}

	q := `
		INSERT INTO contacts (user_id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, email, phone, address, created_at, updated_at`

	contact, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Contact, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			userID, cmd.Name, cmd.Email, cmd.Phone, cmd.Address,
		}, scanContact)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("contact created", "user_id", userID, "id", contact.ID, "name", contact.Name)
	return &contact, nil
}

func (r *repo) Update(ctx context.Context, userID string, id uuid.UUID, cmd ContactCommand) (*Contact, error) {
	if cmd.Name == "" {
		return nil, ErrMissingName
	}

	q := `
		UPDATE contacts
		SET name = $3, email = $4, phone = $5, address = $6, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING id, user_id, name, email, phone, address, created_at, updated_at`

	contact, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Contact, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			userID, id, cmd.Name, cmd.Email, cmd.Phone, cmd.Address,
		}, scanContact)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("contact updated", "user_id", userID, "id", id)
	return &contact, nil
}

func (r *repo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	q := `DELETE FROM contacts WHERE user_id = $1 AND id = $2`

	if err := repository.ExecExpectOne(ctx, r.db, q, userID, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("contact deleted", "user_id", userID, "id", id)
	return nil
}
