package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/billforge/billforge/internal/documents"
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

// New creates the record system backed by the database.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "records"),
		pagination: pagination,
	}
}

// Handler creates the HTTP handler for record operations.
func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, userID string, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(recordProjection, defaultSort).
		WhereEquals("UserID", &userID).
		WhereSearch(page.Search, "Number")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, userID string, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(recordProjection, defaultSort).
		WhereEquals("UserID", &userID).
		WhereEquals("ID", &id).
		Build()

	record, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &record, nil
}

// Create validates the document and freezes it into the history with its
// computed total.
func (r *repo) Create(ctx context.Context, userID string, doc documents.Document) (*Record, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal record document: %w", err)
	}

	totals := doc.Totals()

	q := `
		INSERT INTO records (user_id, kind, number, currency, total, document)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, kind, number, currency, total, document, created_at`

	record, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			userID, doc.Kind, doc.Number, doc.Currency, totals.Total, data,
		}, scanRecord)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record created",
		"user_id", userID,
		"id", record.ID,
		"kind", record.Kind,
		"number", record.Number,
		"total", record.Total)

	return &record, nil
}
