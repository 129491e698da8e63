package snap

import (
	"blueprint-snap/pkg/geometry"
)

// Intersection is a corner: a cluster of line endpoints within proximity
// tolerance of one another. One to four lines contribute; a single
// contributing line is a valid snap target too (a stroke that simply ends,
// at a drawing boundary or a scan gap).
type Intersection struct {
	Point     geometry.Point2D // screen
	PagePoint geometry.Point2D
	Page      int
	Lines     []Line
}

// DistanceFrom returns the distance from a screen point to the corner.
func (ix Intersection) DistanceFrom(p geometry.Point2D) float64 {
	return ix.Point.Distance(p)
}
