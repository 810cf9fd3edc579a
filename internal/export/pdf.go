package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/billforge/billforge/internal/documents"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/signintech/gopdf"
)

// buildPDF renders one page per strip. Strips are centered horizontally and
// anchored to the top of the page; the final strip is drawn at its natural
// height rather than stretched to fill.
func buildPDF(strips []image.Image, layout Layout, page PageGeometry, quality int) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		Unit:     gopdf.UnitPT,
		PageSize: gopdf.Rect{W: page.Width, H: page.Height},
	})

	for i, strip := range strips {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, strip, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode strip %d: %w", i, err)
		}

		holder, err := gopdf.ImageHolderByBytes(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("image holder for strip %d: %w", i, err)
		}

		drawHeight := float64(strip.Bounds().Dy()) * layout.Scale

		pdf.AddPage()
		if err := pdf.ImageByHolder(holder, layout.OffsetX, 0, &gopdf.Rect{W: layout.DrawWidth, H: drawHeight}); err != nil {
			return nil, fmt.Errorf("place strip %d: %w", i, err)
		}
	}

	return pdf.GetBytesPdf(), nil
}

// applyWatermark stamps the diagonal receipt watermark on every page.
// Density scales the stamp text; opacity and color come from the document's
// presentation settings.
func applyWatermark(pdfBytes []byte, wm *documents.Watermark) ([]byte, error) {
	color := wm.Color
	if color == "" {
		color = "#9ca3af"
	}

	desc := fmt.Sprintf("fontname:Helvetica, points:%d, rotation:45, opacity:%.2f, fillcolor:%s",
		24*wm.Density, wm.Opacity, color)

	stamp, err := api.TextWatermark(wm.Text, desc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("build watermark: %w", err)
	}

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(pdfBytes), &out, nil, stamp, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("apply watermark: %w", err)
	}

	return out.Bytes(), nil
}

// verifyPageCount confirms the produced PDF has exactly the page count the
// layout called for.
func verifyPageCount(pdfBytes []byte, want int) error {
	count, err := api.PageCount(bytes.NewReader(pdfBytes), model.NewDefaultConfiguration())
	if err != nil {
		return fmt.Errorf("count pages: %w", err)
	}
	if count != want {
		return fmt.Errorf("produced %d pages, expected %d", count, want)
	}
	return nil
}
