package contour

import (
	"image"
	"image/color"
	"testing"

	"blueprint-snap/pkg/geometry"
)

func whitePage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestRasterDetectorBlankImage(t *testing.T) {
	d := NewRasterDetector()
	chains, err := d.DetectContours(whitePage(60, 40))
	if err != nil {
		t.Fatalf("DetectContours: %v", err)
	}
	if len(chains) != 0 {
		t.Errorf("got %d chains on a blank page, want 0", len(chains))
	}
}

func TestRasterDetectorEmptyImage(t *testing.T) {
	d := NewRasterDetector()
	if _, err := d.DetectContours(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for an empty image")
	}
}

func TestRasterDetectorTracesStroke(t *testing.T) {
	img := whitePage(80, 60)
	for x := 5; x <= 55; x++ {
		img.Set(x, 20, color.Black)
	}

	d := NewRasterDetector()
	d.BlurRadius = 0 // keep a 1px stroke above threshold

	chains, err := d.DetectContours(img)
	if err != nil {
		t.Fatalf("DetectContours: %v", err)
	}
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}

	box := geometry.BoundingBox(chains[0])
	if box.X != 5 || box.X+box.Width != 55 {
		t.Errorf("chain spans x %v..%v, want 5..55", box.X, box.X+box.Width)
	}
	if box.Y != 20 || box.Height != 0 {
		t.Errorf("chain spans y %v height %v, want the single row 20", box.Y, box.Height)
	}
}

func TestRasterDetectorThickStrokeSurvivesBlur(t *testing.T) {
	img := whitePage(120, 80)
	for x := 10; x <= 90; x++ {
		for y := 30; y <= 33; y++ {
			img.Set(x, y, color.Black)
		}
	}

	d := NewRasterDetector()
	chains, err := d.DetectContours(img)
	if err != nil {
		t.Fatalf("DetectContours: %v", err)
	}
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}

	box := geometry.BoundingBox(chains[0])
	if box.Width < 75 || box.Width > 86 {
		t.Errorf("chain width %v, want roughly the 80px stroke", box.Width)
	}
}

func TestRasterDetectorSeparatesComponents(t *testing.T) {
	img := whitePage(120, 80)
	for x := 10; x <= 50; x++ {
		img.Set(x, 20, color.Black)
		img.Set(x, 21, color.Black)
	}
	for x := 10; x <= 50; x++ {
		img.Set(x, 60, color.Black)
		img.Set(x, 61, color.Black)
	}

	d := NewRasterDetector()
	chains, err := d.DetectContours(img)
	if err != nil {
		t.Fatalf("DetectContours: %v", err)
	}
	if len(chains) != 2 {
		t.Fatalf("got %d chains, want 2", len(chains))
	}
}

func TestRasterDetectorDropsTinyComponents(t *testing.T) {
	img := whitePage(60, 40)
	img.Set(30, 20, color.Black) // single speck

	d := NewRasterDetector()
	d.BlurRadius = 0

	chains, err := d.DetectContours(img)
	if err != nil {
		t.Fatalf("DetectContours: %v", err)
	}
	if len(chains) != 0 {
		t.Errorf("got %d chains from a single speck, want 0", len(chains))
	}
}
