package contour

import (
	"fmt"
	"image"

	"blueprint-snap/pkg/geometry"

	"gocv.io/x/gocv"
)

// OpenCVDetector finds stroke contours using OpenCV: grayscale conversion,
// contrast boost, Gaussian blur, inverse Otsu threshold (so dark strokes
// become foreground), then contour extraction with full chain approximation.
type OpenCVDetector struct {
	// ContrastGain multiplies pixel values before thresholding; >1 separates
	// faint strokes from paper texture in low-contrast scans.
	ContrastGain float64
	// BlurKernel is the Gaussian kernel side length in pixels (odd).
	BlurKernel int
	// MinChainPoints drops contours with fewer points than this.
	MinChainPoints int
}

// NewOpenCVDetector returns a detector with defaults tuned for scanned
// line drawings.
func NewOpenCVDetector() *OpenCVDetector {
	return &OpenCVDetector{
		ContrastGain:   1.4,
		BlurKernel:     5,
		MinChainPoints: 8,
	}
}

// DetectContours implements Detector.
func (d *OpenCVDetector) DetectContours(img image.Image) ([][]geometry.Point2D, error) {
	mat, err := imageToMat(img)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	boosted := gocv.NewMat()
	defer boosted.Close()
	gain := d.ContrastGain
	if gain <= 0 {
		gain = 1
	}
	gray.ConvertToWithParams(&boosted, gocv.MatTypeCV8U, float32(gain), 0)

	blurred := gocv.NewMat()
	defer blurred.Close()
	k := d.BlurKernel
	if k < 1 {
		k = 1
	}
	if k%2 == 0 {
		k++
	}
	gocv.GaussianBlur(boosted, &blurred, image.Point{k, k}, 0, 0, gocv.BorderDefault)

	// Inverse binary so dark-on-light strokes become the foreground.
	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(blurred, &bin, 0, 255, gocv.ThresholdBinaryInv+gocv.ThresholdOtsu)

	contours := gocv.FindContours(bin, gocv.RetrievalList, gocv.ChainApproxNone)
	defer contours.Close()

	var chains [][]geometry.Point2D
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		if contour.Size() < d.MinChainPoints {
			continue
		}
		chain := make([]geometry.Point2D, 0, contour.Size())
		for j := 0; j < contour.Size(); j++ {
			pt := contour.At(j)
			chain = append(chain, geometry.Point2D{X: float64(pt.X), Y: float64(pt.Y)})
		}
		chains = append(chains, chain)
	}

	return chains, nil
}

// imageToMat converts a Go image.Image to a gocv.Mat in BGR format.
func imageToMat(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return gocv.Mat{}, fmt.Errorf("contour: empty image")
	}

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}

	return mat, nil
}
