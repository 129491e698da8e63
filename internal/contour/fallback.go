package contour

import (
	"fmt"
	"image"
	"image/color"

	"blueprint-snap/pkg/geometry"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// RasterDetector is a pure Go stroke-contour detector: grayscale conversion
// and contrast boost, optional Gaussian blur, dark-stroke binarization, then
// connected-component labeling with Moore-neighbor boundary tracing.
// This is a fallback if OpenCV is not available; on clean scans its output
// tracks OpenCVDetector closely.
type RasterDetector struct {
	// Contrast is the boost percentage applied before binarization.
	Contrast float64
	// BlurRadius is the Gaussian radius in pixels; 0 disables blurring.
	BlurRadius float64
	// InkThreshold is the luminance at or below which a pixel counts as
	// stroke ink.
	InkThreshold uint8
	// MinChainPoints drops boundary chains with fewer points than this.
	MinChainPoints int
}

// NewRasterDetector returns a detector with defaults tuned for scanned
// line drawings.
func NewRasterDetector() *RasterDetector {
	return &RasterDetector{
		Contrast:       25,
		BlurRadius:     1,
		InkThreshold:   128,
		MinChainPoints: 8,
	}
}

// DetectContours implements Detector.
func (d *RasterDetector) DetectContours(img image.Image) ([][]geometry.Point2D, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("contour: empty image")
	}

	prepared := image.Image(imaging.AdjustContrast(imaging.Grayscale(img), d.Contrast))
	if d.BlurRadius > 0 {
		prepared = blur.Gaussian(prepared, d.BlurRadius)
	}

	mask := d.inkMask(prepared, w, h)
	labels, count := labelComponents(mask, w, h)

	var chains [][]geometry.Point2D
	for label := 1; label <= count; label++ {
		sx, sy, ok := findBoundaryStart(labels, w, h, label)
		if !ok {
			continue
		}
		chain := traceBoundary(labels, w, h, label, sx, sy)
		if len(chain) < d.MinChainPoints {
			continue
		}
		chains = append(chains, chain)
	}

	return chains, nil
}

// inkMask marks pixels whose luminance is at or below the ink threshold.
func (d *RasterDetector) inkMask(img image.Image, w, h int) []bool {
	bounds := img.Bounds()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if g.Y <= d.InkThreshold {
				mask[y*w+x] = true
			}
		}
	}
	return mask
}

// labelComponents assigns a positive label to each 8-connected ink region.
func labelComponents(mask []bool, w, h int) ([]int, int) {
	labels := make([]int, w*h)
	count := 0

	var stack []int
	for i := range mask {
		if !mask[i] || labels[i] != 0 {
			continue
		}
		count++
		stack = append(stack[:0], i)
		labels[i] = count
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			px, py := p%w, p/w
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := px+dx, py+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					n := ny*w + nx
					if mask[n] && labels[n] == 0 {
						labels[n] = count
						stack = append(stack, n)
					}
				}
			}
		}
	}

	return labels, count
}

// findBoundaryStart returns the first pixel of the label in row-major order.
// Scanning left to right guarantees the pixel to its west is background,
// which seeds the Moore trace's backtrack.
func findBoundaryStart(labels []int, w, h, label int) (int, int, bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if labels[y*w+x] == label {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// traceBoundary walks the outer boundary of a labeled component using
// Moore-neighbor tracing, stopping on return to the start pixel. The start is
// the component's topmost-leftmost pixel, so a revisit means the loop closed.
func traceBoundary(labels []int, w, h, label, sx, sy int) []geometry.Point2D {
	isSet := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h && labels[y*w+x] == label
	}

	// 8-neighborhood in clockwise order: E, SE, S, SW, W, NW, N, NE.
	ndx := [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	ndy := [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirIndex := func(dx, dy int) int {
		for i := 0; i < 8; i++ {
			if ndx[i] == dx && ndy[i] == dy {
				return i
			}
		}
		return 0
	}

	pts := []geometry.Point2D{{X: float64(sx), Y: float64(sy)}}
	cx, cy := sx, sy
	bx, by := sx-1, sy

	maxSteps := 4*w*h + 8
	for step := 0; step < maxSteps; step++ {
		start := (dirIndex(bx-cx, by-cy) + 1) % 8
		found := false
		for k := 0; k < 8; k++ {
			i := (start + k) % 8
			tx, ty := cx+ndx[i], cy+ndy[i]
			if isSet(tx, ty) {
				bx, by = cx, cy
				cx, cy = tx, ty
				found = true
				break
			}
			bx, by = tx, ty
		}
		if !found {
			break // isolated pixel
		}
		if cx == sx && cy == sy {
			break
		}
		pts = append(pts, geometry.Point2D{X: float64(cx), Y: float64(cy)})
	}

	return pts
}
