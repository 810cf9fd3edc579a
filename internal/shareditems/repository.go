package shareditems

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the shared item system backed by the database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "shareditems"),
	}
}

// Handler creates the HTTP handler for shared item operations.
func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Get returns the user's item library. A user without a stored library gets
// an empty one rather than an error.
func (r *repo) Get(ctx context.Context, userID string) (*SharedItems, error) {
	q := `SELECT user_id, items, updated_at FROM shared_items WHERE user_id = $1`

	items, err := repository.QueryOne(ctx, r.db, q, []any{userID}, scanSharedItems)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &SharedItems{
				UserID:    userID,
				Items:     []documents.LineItem{},
				UpdatedAt: time.Now().UTC(),
			}, nil
		}
		return nil, fmt.Errorf("query shared items: %w", err)
	}

	return &items, nil
}

func (r *repo) Replace(ctx context.Context, userID string, items []documents.LineItem) (*SharedItems, error) {
	if items == nil {
		items = []documents.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal shared items: %w", err)
	}

	q := `
		INSERT INTO shared_items (user_id, items)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET items = $2, updated_at = NOW()
		RETURNING user_id, items, updated_at`

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (SharedItems, error) {
		return repository.QueryOne(ctx, tx, q, []any{userID, data}, scanSharedItems)
	})

	if err != nil {
		return nil, fmt.Errorf("replace shared items: %w", err)
	}

	r.logger.Info("shared items replaced", "user_id", userID, "count", len(items))
	return &result, nil
}

func scanSharedItems(s repository.Scanner) (SharedItems, error) {
	var si SharedItems
	var items []byte

	err := s.Scan(&si.UserID, &items, &si.UpdatedAt)
	if err != nil {
		return si, err
	}

	err = json.Unmarshal(items, &si.Items)
	return si, err
}
