package coords

import (
	"fmt"

	"blueprint-snap/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// EstimateTransform computes the page-to-screen affine transform that best
// maps src points onto dst points in the least-squares sense. Hosts use this
// to derive a View from matched reference points (e.g. page corners and their
// on-screen positions) instead of assembling the matrix by hand.
func EstimateTransform(src, dst []geometry.Point2D) (geometry.AffineTransform, error) {
	n := len(src)
	if n != len(dst) {
		return geometry.AffineTransform{}, fmt.Errorf("point count mismatch: %d vs %d", n, len(dst))
	}
	if n < 3 {
		return geometry.AffineTransform{}, fmt.Errorf("need at least 3 points, got %d", n)
	}

	// Overdetermined system: [x', y'] = [a, b, tx; c, d, ty] * [x, y, 1]
	A := mat.NewDense(n*2, 6, nil)
	B := mat.NewVecDense(n*2, nil)

	for i := 0; i < n; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y

		A.Set(i*2, 0, x)
		A.Set(i*2, 1, y)
		A.Set(i*2, 2, 1)
		B.SetVec(i*2, xp)

		A.Set(i*2+1, 3, x)
		A.Set(i*2+1, 4, y)
		A.Set(i*2+1, 5, 1)
		B.SetVec(i*2+1, yp)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return geometry.AffineTransform{}, err
	}

	return geometry.AffineTransform{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, nil
}

// FitError returns the mean distance between transformed src points and dst
// points, used to judge the quality of an estimated view transform.
func FitError(src, dst []geometry.Point2D, t geometry.AffineTransform) float64 {
	if len(src) != len(dst) || len(src) == 0 {
		return 0
	}
	var total float64
	for i := range src {
		total += t.Apply(src[i]).Distance(dst[i])
	}
	return total / float64(len(src))
}
