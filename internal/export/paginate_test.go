package export_test

import (
	"errors"
	"image"
	"testing"

	"github.com/billforge/billforge/internal/export"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name            string
		width, height   int
		wantScale       float64
		wantStripHeight int
		wantPages       int
		wantDrawWidth   float64
		wantOffsetX     float64
	}{
		{
			name:  "narrow surface is never upscaled",
			width: 400, height: 500,
			wantScale:       1,
			wantStripHeight: 1008,
			wantPages:       1,
			wantDrawWidth:   400,
			wantOffsetX:     106,
		},
		{
			name:  "wide surface scales down to page width",
			width: 1224, height: 5000,
			wantScale:       0.5,
			wantStripHeight: 2016,
			wantPages:       3,
			wantDrawWidth:   612,
			wantOffsetX:     0,
		},
		{
			name:  "exact multiple of strip height",
			width: 1224, height: 4032,
			wantScale:       0.5,
			wantStripHeight: 2016,
			wantPages:       2,
			wantDrawWidth:   612,
			wantOffsetX:     0,
		},
		{
			name:  "one pixel over strip height adds a page",
			width: 1224, height: 2017,
			wantScale:       0.5,
			wantStripHeight: 2016,
			wantPages:       2,
			wantDrawWidth:   612,
			wantOffsetX:     0,
		},
		{
			name:  "page width surface fills the page",
			width: 612, height: 1000,
			wantScale:       1,
			wantStripHeight: 1008,
			wantPages:       1,
			wantDrawWidth:   612,
			wantOffsetX:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := export.ComputeLayout(tt.width, tt.height, export.Legal)
			if err != nil {
				t.Fatalf("ComputeLayout: %v", err)
			}

			if layout.Scale != tt.wantScale {
				t.Errorf("Scale = %v, want %v", layout.Scale, tt.wantScale)
			}
			if layout.StripHeight != tt.wantStripHeight {
				t.Errorf("StripHeight = %d, want %d", layout.StripHeight, tt.wantStripHeight)
			}
			if layout.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", layout.Pages, tt.wantPages)
			}
			if layout.DrawWidth != tt.wantDrawWidth {
				t.Errorf("DrawWidth = %v, want %v", layout.DrawWidth, tt.wantDrawWidth)
			}
			if layout.OffsetX != tt.wantOffsetX {
				t.Errorf("OffsetX = %v, want %v", layout.OffsetX, tt.wantOffsetX)
			}
		})
	}
}

func TestComputeLayout_EmptySurface(t *testing.T) {
	for _, dims := range [][2]int{{0, 100}, {100, 0}, {0, 0}} {
		if _, err := export.ComputeLayout(dims[0], dims[1], export.Legal); !errors.Is(err, export.ErrNoDrawingSurface) {
			t.Errorf("ComputeLayout(%d, %d) = %v, want ErrNoDrawingSurface", dims[0], dims[1], err)
		}
	}
}

func TestSliceStrips(t *testing.T) {
	const width, height = 200, 2500

	layout, err := export.ComputeLayout(width, height, export.Legal)
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	strips := export.SliceStrips(img, layout)

	if len(strips) != layout.Pages {
		t.Fatalf("len(strips) = %d, want %d", len(strips), layout.Pages)
	}

	for i, strip := range strips[:len(strips)-1] {
		if got := strip.Bounds().Dy(); got != layout.StripHeight {
			t.Errorf("strip %d height = %d, want %d", i, got, layout.StripHeight)
		}
		if got := strip.Bounds().Dx(); got != width {
			t.Errorf("strip %d width = %d, want %d", i, got, width)
		}
	}

	wantLast := height - (layout.Pages-1)*layout.StripHeight
	if got := strips[len(strips)-1].Bounds().Dy(); got != wantLast {
		t.Errorf("final strip height = %d, want %d", got, wantLast)
	}
}
