// Package export turns a document's preview capture into a paginated PDF.
// The rendered surface is rasterized at a fixed reference width, cut into
// page-height strips, and laid out one strip per US legal page. Receipts may
// carry a diagonal watermark. Export is all-or-nothing: any failure leaves
// no partial artifact behind.
package export

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/internal/previews"
	"github.com/billforge/billforge/internal/storage"
)

// Destination selects where the finished PDF goes.
type Destination string

// Export destinations.
const (
	// DestinationFile stores the PDF in blob storage and returns its key.
	DestinationFile Destination = "file"

	// DestinationInline returns the PDF as a base64 data URL in the response.
	DestinationInline Destination = "inline"
)

// Valid reports whether the destination is known.
func (d Destination) Valid() bool {
	return d == DestinationFile || d == DestinationInline
}

// Result describes a finished export.
type Result struct {
	Filename  string `json:"filename"`
	Pages     int    `json:"pages"`
	SizeBytes int64  `json:"size_bytes"`

	// Key is set for file exports.
	Key string `json:"key,omitempty"`

	// Data is the base64 data URL for inline exports.
	Data string `json:"data,omitempty"`

	// Bytes holds the raw PDF for streaming responses.
	Bytes []byte `json:"-"`
}

// System defines the export operations.
type System interface {
	Handler() *Handler
	Export(ctx context.Context, userID string, doc documents.Document, dest Destination) (*Result, error)
}

type system struct {
	cfg        *config.ExportConfig
	previews   previews.System
	store      storage.System
	rasterizer Rasterizer
	logger     *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New creates the export system. The rasterizer may be nil, in which case
// the default PNG rasterizer is used.
func New(cfg *config.ExportConfig, prev previews.System, store storage.System, rasterizer Rasterizer, logger *slog.Logger) System {
	if rasterizer == nil {
		rasterizer = NewPNGRasterizer(cfg.SettleDelayDuration())
	}

	return &system{
		cfg:        cfg,
		previews:   prev,
		store:      store,
		rasterizer: rasterizer,
		logger:     logger.With("system", "export"),
		inflight:   make(map[string]struct{}),
	}
}

// Handler creates the HTTP handler for export operations.
func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Export runs the full pipeline for one document. A second export for the
// same user while one is running returns ErrExportInFlight.
func (s *system) Export(ctx context.Context, userID string, doc documents.Document, dest Destination) (*Result, error) {
	if !dest.Valid() {
		return nil, ErrBadDestination
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if !s.acquire(userID) {
		return nil, ErrExportInFlight
	}
	defer s.release(userID)

	surface, err := s.previews.Locate(ctx, userID, doc.Kind, doc.Number)
	if err != nil {
		if errors.Is(err, previews.ErrNotFound) {
			return nil, ErrPreviewNotFound
		}
		return nil, fmt.Errorf("locate preview: %w", err)
	}

	width := int(float64(s.cfg.ReferenceWidth) * s.cfg.Oversample)
	img, err := s.rasterizer.Rasterize(ctx, surface, width)
	if err != nil {
		if errors.Is(err, ErrNoDrawingSurface) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: rasterize: %v", ErrExportFailed, err)
	}

	bounds := img.Bounds()
	layout, err := ComputeLayout(bounds.Dx(), bounds.Dy(), Legal)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := buildPDF(SliceStrips(img, layout), layout, Legal, s.cfg.JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("%w: build pdf: %v", ErrExportFailed, err)
	}

	if doc.Kind == documents.KindReceipt && doc.Presentation.Watermark != nil {
		pdfBytes, err = applyWatermark(pdfBytes, doc.Presentation.Watermark)
		if err != nil {
			return nil, fmt.Errorf("%w: watermark: %v", ErrExportFailed, err)
		}
	}

	if err := verifyPageCount(pdfBytes, layout.Pages); err != nil {
		return nil, fmt.Errorf("%w: verify: %v", ErrExportFailed, err)
	}

	result := &Result{
		Filename:  doc.Filename(),
		Pages:     layout.Pages,
		SizeBytes: int64(len(pdfBytes)),
		Bytes:     pdfBytes,
	}

	switch dest {
	case DestinationFile:
		key := fmt.Sprintf("exports/%s/%s", userID, result.Filename)
		if err := s.store.Store(ctx, key, pdfBytes); err != nil {
			return nil, fmt.Errorf("%w: store: %v", ErrExportFailed, err)
		}
		result.Key = key
	case DestinationInline:
		result.Data = "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdfBytes)
	}

	s.logger.Info("export complete",
		"user_id", userID,
		"kind", doc.Kind,
		"filename", result.Filename,
		"pages", result.Pages,
		"destination", dest,
		"size_bytes", result.SizeBytes)

	return result, nil
}

func (s *system) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *system) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}
