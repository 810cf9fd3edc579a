package previews

import (
	"context"

	"github.com/billforge/billforge/internal/documents"
)

// Preview describes a stored rendering of a document's preview surface.
type Preview struct {
	Key       string `json:"key"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SizeBytes int64  `json:"size_bytes"`
}

// System defines preview surface operations. Previews are PNG captures of
// the rendered document uploaded by the editing client; the export pipeline
// reads them back through Locate.
type System interface {
	Handler(maxUploadSize int64) *Handler
	Store(ctx context.Context, userID string, kind documents.Kind, number string, data []byte) (*Preview, error)
	Locate(ctx context.Context, userID string, kind documents.Kind, number string) ([]byte, error)
	Delete(ctx context.Context, userID string, kind documents.Kind, number string) error
}
