package snap

import (
	"blueprint-snap/internal/contour"
	"blueprint-snap/internal/coords"
	"blueprint-snap/internal/render"
	"blueprint-snap/pkg/geometry"
)

// pipeline runs the contour-to-segment chain for one search window:
// render the page-space region, detect contours, then for each chain
// simplify, extract, and merge. Detection is best effort - a failed render or
// detector error yields an empty candidate set, never an error, because
// snapping is an optional affordance that must degrade to "no suggestion".
type pipeline struct {
	renderer render.PageRenderer
	detector contour.Detector
	opts     Options
}

// detectRegion returns candidate segments for a page-space search window.
func (p *pipeline) detectRegion(view coords.View, region geometry.Rect) []segment {
	crop, err := p.renderer.RenderRegion(view.Page, region, p.opts.SuperSample)
	if err != nil || crop == nil || crop.Image == nil {
		return nil
	}

	chains, err := p.detector.DetectContours(crop.Image)
	if err != nil {
		return nil
	}

	var segs []segment
	for _, chain := range chains {
		simplified := simplifyChain(chain, p.opts.SimplifyEpsilon)
		ss := segmentsFromChain(simplified, crop, view, p.opts.MinSegmentLength)
		ss = mergeCollinear(ss, p.opts.CollinearityDot, p.opts.MergeGap)
		segs = append(segs, ss...)
	}
	return segs
}
