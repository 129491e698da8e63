package snap

import (
	"sort"

	"blueprint-snap/pkg/geometry"
)

// cornerEndpoint tags a line endpoint with its owner for clustering.
type cornerEndpoint struct {
	endpoint
	owner int // index into the candidate line slice
}

// clusterCorners groups line endpoints near the query point into corners.
//
// Single-pass greedy grouping: each unassigned endpoint within tap proximity
// of the query seeds a cluster, which absorbs every remaining unassigned
// endpoint within corner proximity of the seed. Clusters are not re-centered;
// with the small endpoint counts of a local search the order sensitivity is
// not worth a union-find. Lines come in sorted by distance to the query, so
// first-encountered owners are also the closest contributors.
func clusterCorners(lines []Line, query geometry.Point2D, opts Options) []Intersection {
	if len(lines) == 0 {
		return nil
	}

	eps := make([]cornerEndpoint, 0, len(lines)*2)
	for i, l := range lines {
		eps = append(eps,
			cornerEndpoint{endpoint{Screen: l.Start, Page: l.PageStart}, i},
			cornerEndpoint{endpoint{Screen: l.End, Page: l.PageEnd}, i},
		)
	}

	assigned := make([]bool, len(eps))
	var corners []Intersection

	for i, seed := range eps {
		if assigned[i] {
			continue
		}
		if seed.Screen.Distance(query) > opts.TapProximity {
			continue
		}

		assigned[i] = true
		members := []cornerEndpoint{seed}
		for j := i + 1; j < len(eps); j++ {
			if assigned[j] {
				continue
			}
			if eps[j].Screen.Distance(seed.Screen) <= opts.CornerProximity {
				assigned[j] = true
				members = append(members, eps[j])
			}
		}

		corners = append(corners, buildCorner(lines, members, opts.MaxCornerLines))
	}

	sort.SliceStable(corners, func(i, j int) bool {
		return corners[i].DistanceFrom(query) < corners[j].DistanceFrom(query)
	})
	return corners
}

// buildCorner averages the member endpoints into the representative point and
// collects the owning lines, deduplicated in first-encountered order and
// capped.
func buildCorner(lines []Line, members []cornerEndpoint, maxLines int) Intersection {
	screenPts := make([]geometry.Point2D, len(members))
	pagePts := make([]geometry.Point2D, len(members))
	for i, m := range members {
		screenPts[i] = m.Screen
		pagePts[i] = m.Page
	}

	seen := make(map[int]bool, len(members))
	var owners []Line
	for _, m := range members {
		if seen[m.owner] {
			continue
		}
		seen[m.owner] = true
		if len(owners) < maxLines {
			owners = append(owners, lines[m.owner])
		}
	}

	return Intersection{
		Point:     geometry.Centroid(screenPts),
		PagePoint: geometry.Centroid(pagePts),
		Page:      lines[members[0].owner].Page,
		Lines:     owners,
	}
}
