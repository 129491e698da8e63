package snap

import (
	"blueprint-snap/pkg/geometry"
)

// Line is a detected straight line. It carries both its on-screen endpoints
// and the page-space endpoints they were derived from; the two describe the
// same physical geometry under the view active at detection time. A Line is
// not re-mapped when the view changes afterwards - it goes stale and must be
// re-detected.
type Line struct {
	ID   string
	Page int

	Start geometry.Point2D // screen
	End   geometry.Point2D // screen

	PageStart geometry.Point2D
	PageEnd   geometry.Point2D
}

// Length returns the screen-space length.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// PageLength returns the page-space length.
func (l Line) PageLength() float64 {
	return l.PageStart.Distance(l.PageEnd)
}

// RealWorldLength converts the page length through the drawing scale
// (page units per real-world unit). A non-positive scale yields 0.
func (l Line) RealWorldLength(scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	return l.PageLength() / scale
}

// DistanceFrom returns the clamped point-to-segment distance from a screen
// point to the line.
func (l Line) DistanceFrom(p geometry.Point2D) float64 {
	return geometry.PointToSegmentDistance(p, l.Start, l.End)
}

// Direction returns the screen-space unit direction, or the zero vector for
// a degenerate line.
func (l Line) Direction() geometry.Point2D {
	return geometry.Direction(l.Start, l.End)
}

// PageDirection returns the page-space unit direction.
func (l Line) PageDirection() geometry.Point2D {
	return geometry.Direction(l.PageStart, l.PageEnd)
}

// NearestEndpoint returns the screen endpoint closer to p.
func (l Line) NearestEndpoint(p geometry.Point2D) geometry.Point2D {
	return geometry.NearestEndpoint(p, l.Start, l.End)
}

// FarthestEndpoint returns the screen endpoint farther from p.
func (l Line) FarthestEndpoint(p geometry.Point2D) geometry.Point2D {
	return geometry.FarthestEndpoint(p, l.Start, l.End)
}

// endpoints returns the line's endpoints as paired screen/page values,
// nearest to p first.
func (l Line) endpoints(p geometry.Point2D) (nearest, farthest endpoint) {
	a := endpoint{Screen: l.Start, Page: l.PageStart}
	b := endpoint{Screen: l.End, Page: l.PageEnd}
	if p.Distance(a.Screen) <= p.Distance(b.Screen) {
		return a, b
	}
	return b, a
}

// endpoint pairs a screen coordinate with the page coordinate it was derived
// from, so merged geometry stays consistent in both spaces.
type endpoint struct {
	Screen geometry.Point2D
	Page   geometry.Point2D
}

// segment is a candidate line before it is assigned an identity.
type segment struct {
	A, B endpoint
}

func (s segment) length() float64 {
	return s.A.Screen.Distance(s.B.Screen)
}

func (s segment) direction() geometry.Point2D {
	return geometry.Direction(s.A.Screen, s.B.Screen)
}

func (s segment) pageDirection() geometry.Point2D {
	return geometry.Direction(s.A.Page, s.B.Page)
}
