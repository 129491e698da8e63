// Package contour extracts edge point chains from rasterized drawing crops.
//
// The snap engine only depends on the Detector capability; OpenCVDetector is
// the primary implementation and RasterDetector is a pure Go fallback for
// builds without OpenCV. Tests substitute their own detectors.
package contour

import (
	"image"

	"blueprint-snap/pkg/geometry"
)

// Detector turns a rasterized crop into a set of contour point chains.
// Chains are ordered pixel coordinates following detected stroke edges;
// implementations are tuned for dark strokes on a light background.
type Detector interface {
	DetectContours(img image.Image) ([][]geometry.Point2D, error)
}
