package export

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// PageGeometry is a PDF page size in points.
type PageGeometry struct {
	Width  float64
	Height float64
}

// Legal is the page geometry every export uses: US legal, portrait.
var Legal = PageGeometry{Width: 612, Height: 1008}

// Layout captures how a rasterized surface maps onto PDF pages. The surface
// is scaled down to fit the page width when wider, never scaled up, and cut
// into horizontal strips of StripHeight pixels, one strip per page.
type Layout struct {
	// Scale converts surface pixels to page points.
	Scale float64

	// StripHeight is the strip height in surface pixels.
	StripHeight int

	// Pages is the number of strips, and therefore PDF pages.
	Pages int

	// DrawWidth is the rendered strip width in points.
	DrawWidth float64

	// OffsetX centers the strip horizontally, in points.
	OffsetX float64
}

// ComputeLayout derives the pagination layout for a surface of the given
// pixel dimensions. Returns ErrNoDrawingSurface when either dimension is
// not positive.
func ComputeLayout(width, height int, page PageGeometry) (Layout, error) {
	if width < 1 || height < 1 {
		return Layout{}, ErrNoDrawingSurface
	}

	scale := math.Min(1, page.Width/float64(width))
	stripHeight := int(math.Floor(page.Height / scale))
	pages := (height + stripHeight - 1) / stripHeight
	drawWidth := float64(width) * scale

	return Layout{
		Scale:       scale,
		StripHeight: stripHeight,
		Pages:       pages,
		DrawWidth:   drawWidth,
		OffsetX:     (page.Width - drawWidth) / 2,
	}, nil
}

// SliceStrips cuts the surface into horizontal strips of the layout's strip
// height. The final strip keeps its natural height so short trailing content
// is not stretched.
func SliceStrips(img image.Image, layout Layout) []image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	strips := make([]image.Image, 0, layout.Pages)
	for y := 0; y < height; y += layout.StripHeight {
		bottom := y + layout.StripHeight
		if bottom > height {
			bottom = height
		}
		strips = append(strips, imaging.Crop(img, image.Rect(0, y, width, bottom)))
	}
	return strips
}
