package snap

import (
	"blueprint-snap/pkg/geometry"
)

// simplifyChain reduces a contour chain with the Douglas-Peucker algorithm:
// the point of maximum perpendicular distance from the first-last chord is
// kept if it exceeds epsilon, and the two sub-chains are processed the same
// way. Implemented with an explicit stack; raster noise can produce chains
// long enough to make recursion depth a concern.
func simplifyChain(points []geometry.Point2D, epsilon float64) []geometry.Point2D {
	if len(points) <= 2 {
		return points
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	type span struct{ first, last int }
	stack := []span{{0, len(points) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dmax := 0.0
		index := -1
		for i := s.first + 1; i < s.last; i++ {
			d := geometry.PerpendicularDistance(points[i], points[s.first], points[s.last])
			if d > dmax {
				dmax = d
				index = i
			}
		}

		if dmax > epsilon {
			keep[index] = true
			stack = append(stack, span{s.first, index}, span{index, s.last})
		}
	}

	out := make([]geometry.Point2D, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}
