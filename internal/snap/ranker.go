package snap

import (
	"sort"

	"blueprint-snap/pkg/geometry"
)

// sortByDistance orders candidate lines by ascending point-to-segment
// distance from the query point.
func sortByDistance(lines []Line, query geometry.Point2D) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].DistanceFrom(query) < lines[j].DistanceFrom(query)
	})
}

// applySnapPolicy picks the highlight for a ranked result. Corners win over
// lines: a corner within the corner-snap radius is preferred even when a line
// is nominally closer, because corners are more precise anchors than
// arbitrary points along a stroke. When neither threshold is met nothing is
// highlighted; the candidate set remains available for secondary UI use.
func applySnapPolicy(res *DetectionResult, query geometry.Point2D, opts Options) {
	res.HighlightedLine = nil
	res.HighlightedIntersection = nil

	if len(res.Intersections) > 0 && res.Intersections[0].DistanceFrom(query) <= opts.CornerSnapRadius {
		ix := res.Intersections[0]
		res.HighlightedIntersection = &ix
		return
	}
	if len(res.Lines) > 0 && res.Lines[0].DistanceFrom(query) <= opts.LineSnapRadius {
		l := res.Lines[0]
		res.HighlightedLine = &l
	}
}
