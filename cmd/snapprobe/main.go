// Command snapprobe runs a snap detection query against a drawing image and
// outputs the detected lines and corners.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"blueprint-snap/internal/contour"
	"blueprint-snap/internal/coords"
	"blueprint-snap/internal/render"
	"blueprint-snap/internal/snap"
	"blueprint-snap/pkg/geometry"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to drawing image (TIFF, PNG, or JPEG)")
	x := flag.Float64("x", 0, "Query point X (page units)")
	y := flag.Float64("y", 0, "Query point Y (page units)")
	radius := flag.Float64("radius", snap.DefaultSearchRadius, "Search radius")
	detectorName := flag.String("detector", "raster", "Contour detector: raster or opencv")
	optsPath := flag.String("options", "", "Optional JSON options file")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: snapprobe -image <path> -x <x> -y <y> [-radius 250] [-detector raster|opencv]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

	opts := snap.DefaultOptions()
	if *optsPath != "" {
		opts, err = snap.LoadOptions(*optsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load options: %v\n", err)
			os.Exit(1)
		}
	}

	var detector contour.Detector
	switch *detectorName {
	case "opencv":
		detector = contour.NewOpenCVDetector()
	case "raster":
		detector = contour.NewRasterDetector()
	default:
		fmt.Fprintf(os.Stderr, "Unknown detector %q\n", *detectorName)
		os.Exit(1)
	}

	renderer := render.NewImageRenderer(img)
	size, _ := renderer.PageSize(0)

	// Identity view: screen coordinates equal page coordinates.
	view := coords.View{
		Page:         0,
		PageSize:     size,
		PageToScreen: geometry.Identity(),
	}

	session := snap.NewSession(renderer, detector, opts)
	res := session.DetectNear(geometry.NewPoint2D(*x, *y), view, *radius)

	fmt.Printf("\nDetected %d lines, %d corners near (%.0f, %.0f):\n",
		len(res.Lines), len(res.Intersections), *x, *y)
	for _, l := range res.Lines {
		fmt.Printf("  %s  (%.1f, %.1f) -> (%.1f, %.1f)  length=%.1f  dist=%.1f\n",
			l.ID, l.Start.X, l.Start.Y, l.End.X, l.End.Y,
			l.Length(), l.DistanceFrom(geometry.NewPoint2D(*x, *y)))
	}
	for i, ix := range res.Intersections {
		fmt.Printf("  corner %d at (%.1f, %.1f) with %d line(s)\n",
			i+1, ix.Point.X, ix.Point.Y, len(ix.Lines))
	}

	switch {
	case res.HighlightedIntersection != nil:
		ix := res.HighlightedIntersection
		fmt.Printf("\nSnapped to corner at (%.1f, %.1f)\n", ix.Point.X, ix.Point.Y)
	case res.HighlightedLine != nil:
		fmt.Printf("\nSnapped to line %s\n", res.HighlightedLine.ID)
	default:
		fmt.Println("\nNothing within snap range")
	}
}
