// Package coords maps points between the coordinate spaces the snap engine
// works in: device/screen space, page space (the drawing's native coordinate
// system), and the pixel space of a rendered crop.
package coords

import (
	"blueprint-snap/pkg/geometry"
)

// Space identifies a coordinate space.
type Space int

const (
	// SpaceScreen is the on-screen pixel space under the active view transform.
	SpaceScreen Space = iota
	// SpacePage is the drawing's intrinsic coordinate system.
	SpacePage
)

func (s Space) String() string {
	switch s {
	case SpaceScreen:
		return "screen"
	case SpacePage:
		return "page"
	default:
		return "unknown"
	}
}

// View describes how one drawing page is currently presented on screen.
// It is a value snapshot: geometry detected under one View is not valid under
// another and must be re-detected after the view transform changes.
type View struct {
	Page         int
	PageSize     geometry.Size
	PageToScreen geometry.AffineTransform
}

// PageToScreenPoint maps a page-space point to screen space.
func (v View) PageToScreenPoint(p geometry.Point2D) geometry.Point2D {
	return v.PageToScreen.Apply(p)
}

// ScreenToPagePoint maps a screen-space point to page space. Returns false
// when the view transform is degenerate (non-invertible).
func (v View) ScreenToPagePoint(p geometry.Point2D) (geometry.Point2D, bool) {
	inv, ok := v.PageToScreen.Inverse()
	if !ok {
		return geometry.Point2D{}, false
	}
	return inv.Apply(p), true
}

// MapPoint converts a point between the screen and page spaces of this view.
func (v View) MapPoint(p geometry.Point2D, from, to Space) (geometry.Point2D, bool) {
	if from == to {
		return p, true
	}
	if from == SpacePage && to == SpaceScreen {
		return v.PageToScreenPoint(p), true
	}
	return v.ScreenToPagePoint(p)
}

// Scale returns the number of screen units per page unit under this view.
func (v View) Scale() float64 {
	return v.PageToScreen.ScaleFactor()
}

// ResolvePage maps a screen point into page space and reports whether it
// falls inside the page bounds. A point outside every page is a resolution
// failure; the detection pipeline treats it as "nothing to detect".
func (v View) ResolvePage(screen geometry.Point2D) (geometry.Point2D, bool) {
	page, ok := v.ScreenToPagePoint(screen)
	if !ok {
		return geometry.Point2D{}, false
	}
	bounds := geometry.Rect{Width: v.PageSize.Width, Height: v.PageSize.Height}
	if !bounds.Contains(page) {
		return geometry.Point2D{}, false
	}
	return page, true
}
