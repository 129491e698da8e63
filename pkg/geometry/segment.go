package geometry

import "math"

// Segment math shared by the contour pipeline and the snap engine. All
// functions are defined for degenerate (zero-length) segments: they fall back
// to plain point-to-point distance instead of returning an error.

// Direction returns the unit direction vector of the segment a-b.
// Returns the zero vector when a == b.
func Direction(a, b Point2D) Point2D {
	return b.Sub(a).Normalize()
}

// PerpendicularDistance calculates the perpendicular distance from point p to
// the infinite line through a and b.
func PerpendicularDistance(p, a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return p.Distance(a)
	}

	num := math.Abs(dy*p.X - dx*p.Y + b.X*a.Y - b.Y*a.X)
	den := math.Sqrt(dx*dx + dy*dy)
	return num / den
}

// ClosestPointOnSegment returns the point on segment a-b nearest to p,
// clamping the projection to the segment's extent.
func ClosestPointOnSegment(p, a, b Point2D) Point2D {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return a
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Point2D{X: a.X + t*dx, Y: a.Y + t*dy}
}

// PointToSegmentDistance calculates the minimum distance from point p to the
// line segment a-b.
func PointToSegmentDistance(p, a, b Point2D) float64 {
	return p.Distance(ClosestPointOnSegment(p, a, b))
}

// NearestEndpoint returns the endpoint of segment a-b closer to p.
func NearestEndpoint(p, a, b Point2D) Point2D {
	if p.Distance(a) <= p.Distance(b) {
		return a
	}
	return b
}

// FarthestEndpoint returns the endpoint of segment a-b farther from p.
func FarthestEndpoint(p, a, b Point2D) Point2D {
	if p.Distance(a) > p.Distance(b) {
		return a
	}
	return b
}
