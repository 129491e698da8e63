package snap

import (
	"blueprint-snap/internal/coords"
	"blueprint-snap/internal/render"
	"blueprint-snap/pkg/geometry"
)

// segmentsFromChain turns a simplified polyline in crop pixel space into
// candidate segments with page and screen coordinates. Segments shorter than
// the minimum screen length are discarded; this also rejects zero-length
// segments.
func segmentsFromChain(chain []geometry.Point2D, crop *render.Crop, view coords.View, minLength float64) []segment {
	var segs []segment
	for i := 0; i+1 < len(chain); i++ {
		pa := crop.ToPage(chain[i])
		pb := crop.ToPage(chain[i+1])
		a := endpoint{Screen: view.PageToScreenPoint(pa), Page: pa}
		b := endpoint{Screen: view.PageToScreenPoint(pb), Page: pb}
		if a.Screen.Distance(b.Screen) < minLength {
			continue
		}
		segs = append(segs, segment{A: a, B: b})
	}
	return segs
}

// mergeCollinear fuses consecutive segments of one contour when their
// directions are collinear (absolute dot product, so traversal order does not
// matter) and the gap between them is small. The scan is greedy left to
// right; it can miss merges across longer gaps or out-of-order chains, which
// is acceptable for locally scanned contours. Running the merger on its own
// output is a no-op.
func mergeCollinear(segs []segment, minDot, maxGap float64) []segment {
	if len(segs) < 2 {
		return segs
	}

	out := make([]segment, 0, len(segs))
	cur := segs[0]
	for _, next := range segs[1:] {
		if canMerge(cur, next, minDot, maxGap) {
			cur = mergeSpan(cur, next)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}

func canMerge(a, b segment, minDot, maxGap float64) bool {
	da := a.direction()
	db := b.direction()
	dot := da.Dot(db)
	if dot < 0 {
		dot = -dot
	}
	if dot <= minDot {
		return false
	}
	return a.B.Screen.Distance(b.A.Screen) < maxGap
}

// mergeSpan replaces a pair of collinear segments with one spanning their
// outer endpoints: of the four endpoints, the two farthest apart. Distance is
// measured in screen space; the paired page coordinates travel along.
func mergeSpan(a, b segment) segment {
	pts := [4]endpoint{a.A, a.B, b.A, b.B}
	bi, bj := 0, 1
	best := -1.0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if d := pts[i].Screen.Distance(pts[j].Screen); d > best {
				best = d
				bi, bj = i, j
			}
		}
	}
	return segment{A: pts[bi], B: pts[bj]}
}
