package coords

import (
	"math"
	"testing"

	"blueprint-snap/pkg/geometry"
)

func TestEstimateTransformRecoversKnown(t *testing.T) {
	want := geometry.Translation(120, -45).
		Compose(geometry.Rotation(0.3)).
		Compose(geometry.Scaling(1.5, 1.5))

	src := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 2400, Y: 0}, {X: 2400, Y: 3000}, {X: 0, Y: 3000}, {X: 700, Y: 1100},
	}
	dst := make([]geometry.Point2D, len(src))
	for i, p := range src {
		dst[i] = want.Apply(p)
	}

	got, err := EstimateTransform(src, dst)
	if err != nil {
		t.Fatalf("EstimateTransform: %v", err)
	}
	for _, p := range src {
		a, b := want.Apply(p), got.Apply(p)
		if a.Distance(b) > 1e-6 {
			t.Errorf("transform mismatch at %v: want %v, got %v", p, a, b)
		}
	}
	if e := FitError(src, dst, got); e > 1e-6 {
		t.Errorf("FitError = %v, want ~0", e)
	}
}

func TestEstimateTransformLeastSquares(t *testing.T) {
	// One outlier among exact correspondences: the fit still lands close to
	// the true transform.
	want := geometry.Translation(10, 20)
	src := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 50, Y: 50},
	}
	dst := make([]geometry.Point2D, len(src))
	for i, p := range src {
		dst[i] = want.Apply(p)
	}
	dst[4] = dst[4].Add(geometry.Point2D{X: 2, Y: -2})

	got, err := EstimateTransform(src, dst)
	if err != nil {
		t.Fatalf("EstimateTransform: %v", err)
	}
	if math.Abs(got.TX-10) > 1 || math.Abs(got.TY-20) > 1 {
		t.Errorf("translation (%v, %v), want near (10, 20)", got.TX, got.TY)
	}
	if e := FitError(src, dst, got); e <= 0 || e > 2 {
		t.Errorf("FitError = %v, want small but nonzero", e)
	}
}

func TestEstimateTransformErrors(t *testing.T) {
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if _, err := EstimateTransform(pts, pts); err == nil {
		t.Error("expected error for fewer than 3 points")
	}
	if _, err := EstimateTransform(pts, pts[:1]); err == nil {
		t.Error("expected error for mismatched point counts")
	}
}
