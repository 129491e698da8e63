package coords

import (
	"math"
	"testing"

	"blueprint-snap/pkg/geometry"
)

func zoomedView() View {
	// Page shown at 2x zoom, panned by (100, 50).
	return View{
		Page:         0,
		PageSize:     geometry.NewSize(2400, 3000),
		PageToScreen: geometry.Translation(100, 50).Compose(geometry.Scaling(2, 2)),
	}
}

func TestViewMapRoundtrip(t *testing.T) {
	v := zoomedView()

	points := []geometry.Point2D{
		{X: 0, Y: 0},
		{X: 1200, Y: 1500},
		{X: 2400, Y: 3000},
		{X: 33.5, Y: 918.25},
	}
	for _, p := range points {
		screen := v.PageToScreenPoint(p)
		back, ok := v.ScreenToPagePoint(screen)
		if !ok {
			t.Fatalf("inverse failed for %v", p)
		}
		if back.Distance(p) > 1e-9 {
			t.Errorf("roundtrip %v -> %v -> %v", p, screen, back)
		}
	}
}

func TestViewMapPoint(t *testing.T) {
	v := zoomedView()
	p := geometry.Point2D{X: 10, Y: 20}

	if got, ok := v.MapPoint(p, SpacePage, SpacePage); !ok || got != p {
		t.Errorf("same-space map changed the point: %v", got)
	}
	want := geometry.Point2D{X: 120, Y: 90}
	if got, ok := v.MapPoint(p, SpacePage, SpaceScreen); !ok || got.Distance(want) > 1e-9 {
		t.Errorf("page->screen: got %v, want %v", got, want)
	}
	if got, ok := v.MapPoint(want, SpaceScreen, SpacePage); !ok || got.Distance(p) > 1e-9 {
		t.Errorf("screen->page: got %v, want %v", got, p)
	}
}

func TestViewScale(t *testing.T) {
	if s := zoomedView().Scale(); math.Abs(s-2) > 1e-12 {
		t.Errorf("Scale = %v, want 2", s)
	}
	rotated := View{PageToScreen: geometry.Rotation(math.Pi / 4)}
	if s := rotated.Scale(); math.Abs(s-1) > 1e-12 {
		t.Errorf("rotation should not change scale: got %v", s)
	}
}

func TestResolvePage(t *testing.T) {
	v := zoomedView()

	tests := []struct {
		name   string
		screen geometry.Point2D
		wantOK bool
	}{
		{"inside", geometry.Point2D{X: 500, Y: 500}, true},
		{"page origin", geometry.Point2D{X: 100, Y: 50}, true},
		{"left of page", geometry.Point2D{X: 50, Y: 500}, false},
		{"below page", geometry.Point2D{X: 500, Y: 6100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := v.ResolvePage(tt.screen)
			if ok != tt.wantOK {
				t.Errorf("ResolvePage(%v) ok = %v, want %v", tt.screen, ok, tt.wantOK)
			}
		})
	}
}

func TestResolvePageDegenerateView(t *testing.T) {
	v := View{
		PageSize:     geometry.NewSize(100, 100),
		PageToScreen: geometry.AffineTransform{}, // zero matrix, not invertible
	}
	if _, ok := v.ResolvePage(geometry.Point2D{X: 10, Y: 10}); ok {
		t.Error("degenerate view resolved a point")
	}
}

func TestSpaceString(t *testing.T) {
	if SpaceScreen.String() != "screen" || SpacePage.String() != "page" {
		t.Errorf("unexpected space names: %v, %v", SpaceScreen, SpacePage)
	}
}
