// Package render defines the page-rendering capability the snap engine
// consumes, plus an image-backed implementation for hosts that already have
// their drawing pages decoded as raster images.
package render

import (
	"image"

	"blueprint-snap/pkg/geometry"
)

// Crop is a rasterized rectangular region of a page.
type Crop struct {
	Image image.Image
	// Region is the page-space rectangle actually rendered. It may be smaller
	// than the requested region when the request overlapped a page edge.
	Region geometry.Rect
	// Scale is the supersampling factor: pixels per page unit.
	Scale float64
}

// ToPage maps a crop-local pixel coordinate back into page space.
func (c *Crop) ToPage(p geometry.Point2D) geometry.Point2D {
	return geometry.Point2D{
		X: c.Region.X + p.X/c.Scale,
		Y: c.Region.Y + p.Y/c.Scale,
	}
}

// FromPage maps a page-space point into crop-local pixel coordinates.
func (c *Crop) FromPage(p geometry.Point2D) geometry.Point2D {
	return geometry.Point2D{
		X: (p.X - c.Region.X) * c.Scale,
		Y: (p.Y - c.Region.Y) * c.Scale,
	}
}

// PageRenderer rasterizes rectangular page regions. Implementations clamp the
// requested region to the page bounds and return an error when the page does
// not exist or the clamped region is empty; callers fold errors into empty
// detection results rather than surfacing them.
type PageRenderer interface {
	RenderRegion(page int, region geometry.Rect, scale float64) (*Crop, error)
}
