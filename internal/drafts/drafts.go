package drafts

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/lifecycle"
	"github.com/billforge/billforge/pkg/writebehind"
)

type system struct {
	repo   *repo
	buffer *writebehind.Buffer[Key, documents.Document]
	logger *slog.Logger
}

// New creates the draft system. Saves coalesce within the window; the last
// write per user and kind wins.
func New(db *sql.DB, window time.Duration, logger *slog.Logger) System {
	logger = logger.With("system", "drafts")
	r := &repo{db: db, logger: logger}

	s := &system{
		repo:   r,
		logger: logger,
	}
	s.buffer = writebehind.New(window, s.flushDraft, logger)

	return s
}

// Handler creates the HTTP handler for draft operations.
func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Start registers the shutdown hook that drains pending saves.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	lc.OnShutdown(func() {
		<-lc.Context().Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.buffer.Close(ctx); err != nil {
			s.logger.Error("draining draft buffer failed", "error", err)
			return
		}
		s.logger.Info("draft buffer drained")
	})

	return nil
}

func (s *system) Get(ctx context.Context, userID string, kind documents.Kind) (*Draft, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	return s.repo.get(ctx, userID, kind)
}

// Save buffers the payload; it reaches the database once the save burst
// settles. The payload is accepted as-is since drafts may be incomplete.
func (s *system) Save(ctx context.Context, userID string, kind documents.Kind, payload documents.Document) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	payload.Kind = kind
	s.buffer.Write(Key{UserID: userID, Kind: kind}, payload)
	return nil
}

// Delete discards any buffered save for the slot and removes the stored
// draft. A missing stored draft is not an error when a save was pending.
func (s *system) Delete(ctx context.Context, userID string, kind documents.Kind) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	cancelled := s.buffer.Cancel(Key{UserID: userID, Kind: kind})

	err := s.repo.delete(ctx, userID, kind)
	if errors.Is(err, ErrNotFound) && cancelled {
		return nil
	}
	return err
}

func (s *system) flushDraft(ctx context.Context, key Key, payload documents.Document) error {
	return s.repo.upsert(ctx, key.UserID, key.Kind, payload)
}
