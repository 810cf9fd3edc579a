// Package previews stores and locates the PNG surface captures that feed
// the export pipeline. Previews are keyed per user, kind, and document
// number, with progressively looser fallback on lookup so that an export
// can proceed from the most recent capture when an exact match is absent.
package previews

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"strings"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/storage"
)

const keyPrefix = "previews"

type system struct {
	store  storage.System
	logger *slog.Logger
}

// New creates the preview system backed by the given blob storage.
func New(store storage.System, logger *slog.Logger) System {
	return &system{
		store:  store,
		logger: logger.With("system", "previews"),
	}
}

// Handler creates the HTTP handler for preview operations.
func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

// Store validates and persists a preview capture, replacing any existing
// capture for the same user, kind, and number.
func (s *system) Store(ctx context.Context, userID string, kind documents.Kind, number string, data []byte) (*Preview, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	key := previewKey(userID, kind, number)
	if err := s.store.Store(ctx, key, data); err != nil {
		return nil, err
	}

	s.logger.Info("preview stored",
		"user_id", userID,
		"kind", kind,
		"key", key,
		"width", cfg.Width,
		"height", cfg.Height)

	return &Preview{
		Key:       key,
		Width:     cfg.Width,
		Height:    cfg.Height,
		SizeBytes: int64(len(data)),
	}, nil
}

// Locate returns the preview bytes for the given document, falling back
// from the exact capture to the newest capture of the same kind, then to
// the newest capture the user has at all.
func (s *system) Locate(ctx context.Context, userID string, kind documents.Kind, number string) ([]byte, error) {
	data, err := s.store.Retrieve(ctx, previewKey(userID, kind, number))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	for _, prefix := range []string{
		fmt.Sprintf("%s/%s/%s", keyPrefix, userID, kind),
		fmt.Sprintf("%s/%s", keyPrefix, userID),
	} {
		entries, err := s.store.List(ctx, prefix)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}

		s.logger.Warn("preview fallback",
			"user_id", userID,
			"kind", kind,
			"number", number,
			"resolved", entries[0].Key)

		return s.store.Retrieve(ctx, entries[0].Key)
	}

	return nil, ErrNotFound
}

// Delete removes the preview for the given document. Deleting a missing
// preview is not an error.
func (s *system) Delete(ctx context.Context, userID string, kind documents.Kind, number string) error {
	return s.store.Delete(ctx, previewKey(userID, kind, number))
}

func previewKey(userID string, kind documents.Kind, number string) string {
	return fmt.Sprintf("%s/%s/%s/%s.png", keyPrefix, userID, kind, slugify(number))
}

// slugify reduces a document number to a filesystem-safe key segment.
func slugify(number string) string {
	if number == "" {
		return "document"
	}

	var b strings.Builder
	for _, r := range strings.ToLower(number) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "document"
	}
	return slug
}
