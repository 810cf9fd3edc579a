package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/pkg/query"
	"github.com/billforge/billforge/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func (r *repo) get(ctx context.Context, userID string, kind documents.Kind) (*Draft, error) {
	q, args := query.NewBuilder(draftProjection, defaultSort).
		WhereEquals("UserID", &userID).
		WhereEquals("Kind", &kind).
		Build()

	draft, err := repository.QueryOne(ctx, r.db, q, args, scanDraft)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &draft, nil
}

func (r *repo) upsert(ctx context.Context, userID string, kind documents.Kind, payload documents.Document) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal draft payload: %w", err)
	}

	q := `
		INSERT INTO drafts (user_id, kind, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, kind)
		DO UPDATE SET payload = $3, updated_at = NOW()
		RETURNING id`

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (string, error) {
		var id string
		return id, tx.QueryRowContext(ctx, q, userID, kind, data).Scan(&id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Debug("draft persisted", "user_id", userID, "kind", kind)
	return nil
}

func (r *repo) delete(ctx context.Context, userID string, kind documents.Kind) error {
	q := `DELETE FROM drafts WHERE user_id = $1 AND kind = $2`

	if err := repository.ExecExpectOne(ctx, r.db, q, userID, kind); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("draft deleted", "user_id", userID, "kind", kind)
	return nil
}
