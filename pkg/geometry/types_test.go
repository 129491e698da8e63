package geometry

import (
	"math"
	"testing"
)

func TestRectAround(t *testing.T) {
	r := RectAround(Point2D{X: 100, Y: 50}, 40)
	if r != NewRect(80, 30, 40, 40) {
		t.Errorf("RectAround = %+v, want (80,30,40,40)", r)
	}
	if r.Center() != (Point2D{X: 100, Y: 50}) {
		t.Errorf("center drifted: %v", r.Center())
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 100, 100)

	got, ok := a.Intersect(NewRect(50, 50, 100, 100))
	if !ok || got != NewRect(50, 50, 50, 50) {
		t.Errorf("overlap = %+v (%v), want (50,50,50,50)", got, ok)
	}
	if _, ok := a.Intersect(NewRect(200, 200, 10, 10)); ok {
		t.Error("disjoint rects reported an intersection")
	}
	if _, ok := a.Intersect(NewRect(100, 0, 10, 10)); ok {
		t.Error("edge-touching rects should be an empty intersection")
	}
}

func TestAffineInverseRoundtrip(t *testing.T) {
	transforms := []AffineTransform{
		Identity(),
		Translation(30, -40),
		Scaling(2, 0.5),
		Rotation(1.1),
		Translation(100, 50).Compose(Rotation(0.3)).Compose(Scaling(1.5, 1.5)),
	}

	p := Point2D{X: 12.5, Y: -7.25}
	for _, tr := range transforms {
		inv, ok := tr.Inverse()
		if !ok {
			t.Fatalf("transform %+v not invertible", tr)
		}
		back := inv.Apply(tr.Apply(p))
		if back.Distance(p) > 1e-9 {
			t.Errorf("roundtrip through %+v: %v -> %v", tr, p, back)
		}
	}
}

func TestAffineInverseSingular(t *testing.T) {
	if _, ok := (AffineTransform{}).Inverse(); ok {
		t.Error("zero matrix inverted")
	}
	if _, ok := Scaling(1, 0).Inverse(); ok {
		t.Error("rank-deficient scaling inverted")
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		tr   AffineTransform
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform zoom", Scaling(2, 2), 2},
		{"rotation preserves area", Rotation(math.Pi / 3), 1},
		{"anisotropic mean", Scaling(4, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.ScaleFactor(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ScaleFactor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if c := Centroid(pts); c != (Point2D{X: 5, Y: 5}) {
		t.Errorf("Centroid = %v, want (5, 5)", c)
	}
	if c := Centroid(nil); c != (Point2D{}) {
		t.Errorf("empty centroid = %v, want origin", c)
	}
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2D{{X: 3, Y: 9}, {X: -2, Y: 4}, {X: 7, Y: 6}}
	if b := BoundingBox(pts); b != NewRect(-2, 4, 9, 5) {
		t.Errorf("BoundingBox = %+v, want (-2,4,9,5)", b)
	}
}

func TestNormalize(t *testing.T) {
	v := Point2D{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Norm()-1) > 1e-12 {
		t.Errorf("normalized length %v, want 1", v.Norm())
	}
	if z := (Point2D{}).Normalize(); z != (Point2D{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}
