package render

import (
	"fmt"
	"image"
	"math"

	"blueprint-snap/pkg/geometry"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// ImageRenderer serves pages from decoded raster images. One source pixel is
// one page unit, so a 2400x3000 scan is a 2400x3000-unit page.
type ImageRenderer struct {
	pages []image.Image
}

// NewImageRenderer creates a renderer over the given page images, in page
// index order.
func NewImageRenderer(pages ...image.Image) *ImageRenderer {
	return &ImageRenderer{pages: pages}
}

// PageCount returns the number of pages.
func (r *ImageRenderer) PageCount() int {
	return len(r.pages)
}

// PageSize returns the page-space extent of a page.
func (r *ImageRenderer) PageSize(page int) (geometry.Size, bool) {
	if page < 0 || page >= len(r.pages) {
		return geometry.Size{}, false
	}
	b := r.pages[page].Bounds()
	return geometry.NewSize(float64(b.Dx()), float64(b.Dy())), true
}

// RenderRegion rasterizes the requested page region at the given
// supersampling scale. The region is clamped to the page bounds; an empty
// intersection is an error.
func (r *ImageRenderer) RenderRegion(page int, region geometry.Rect, scale float64) (*Crop, error) {
	if page < 0 || page >= len(r.pages) {
		return nil, fmt.Errorf("render: no page %d", page)
	}
	if scale <= 0 {
		scale = 1
	}

	img := r.pages[page]
	b := img.Bounds()
	pageRect := geometry.NewRect(0, 0, float64(b.Dx()), float64(b.Dy()))

	clamped, ok := region.Intersect(pageRect)
	if !ok {
		return nil, fmt.Errorf("render: region %+v outside page %d bounds", region, page)
	}

	// Snap to whole source pixels so crop-local coordinates stay exact.
	x0 := int(math.Floor(clamped.X))
	y0 := int(math.Floor(clamped.Y))
	x1 := int(math.Ceil(clamped.X + clamped.Width))
	y1 := int(math.Ceil(clamped.Y + clamped.Height))
	if x1 <= x0 || y1 <= y0 {
		return nil, fmt.Errorf("render: degenerate region %+v", region)
	}

	sub := imaging.Crop(img, image.Rect(b.Min.X+x0, b.Min.Y+y0, b.Min.X+x1, b.Min.Y+y1))

	out := image.Image(sub)
	if scale != 1 {
		w := int(math.Round(float64(x1-x0) * scale))
		h := int(math.Round(float64(y1-y0) * scale))
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), sub, sub.Bounds(), xdraw.Src, nil)
		out = dst
	}

	return &Crop{
		Image:  out,
		Region: geometry.NewRect(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0)),
		Scale:  scale,
	}, nil
}
