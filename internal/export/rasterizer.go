package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
)

// Rasterizer turns a preview surface into a fixed-width bitmap ready for
// pagination. Implementations normalize whatever resolution the capture was
// taken at to the requested width.
type Rasterizer interface {
	Rasterize(ctx context.Context, surface []byte, width int) (image.Image, error)
}

// pngRasterizer decodes PNG surface captures, waits out a settle delay so
// late capture uploads land before measurement, flattens transparency onto
// a white matte, and resamples to the target width.
type pngRasterizer struct {
	settleDelay time.Duration
}

// NewPNGRasterizer creates the default rasterizer for PNG surface captures.
func NewPNGRasterizer(settleDelay time.Duration) Rasterizer {
	return &pngRasterizer{settleDelay: settleDelay}
}

func (r *pngRasterizer) Rasterize(ctx context.Context, surface []byte, width int) (image.Image, error) {
	if r.settleDelay > 0 {
		select {
		case <-time.After(r.settleDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	img, err := imaging.Decode(bytes.NewReader(surface))
	if err != nil {
		return nil, fmt.Errorf("decode surface: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, ErrNoDrawingSurface
	}

	matte := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flattened := imaging.Overlay(matte, img, image.Pt(0, 0), 1.0)

	if bounds.Dx() == width {
		return flattened, nil
	}
	return imaging.Resize(flattened, width, 0, imaging.Lanczos), nil
}
