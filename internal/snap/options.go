// Package snap implements the interactive vector-snap engine: it recovers
// straight-line geometry near a tapped point on a rasterized drawing page and
// tracks the resulting selection for one interaction session.
package snap

import (
	"encoding/json"
	"os"
)

// Default interaction radii, in the units the corresponding call works in.
const (
	// DefaultSearchRadius is the DetectNear search radius in screen units.
	DefaultSearchRadius = 250.0
	// DefaultExtensionDistance is the Extend search window side in page units.
	DefaultExtensionDistance = 200.0
)

// Options holds the tuned thresholds of the detection pipeline. The values
// are configuration defaults, not physical constants; hosts may persist
// overrides via Save/LoadOptions.
type Options struct {
	// SimplifyEpsilon is the Douglas-Peucker tolerance in crop pixels. Kept
	// tight to preserve corner fidelity over contour smoothness.
	SimplifyEpsilon float64 `json:"simplify_epsilon"`
	// MinSegmentLength discards segments shorter than this many screen units.
	// Aggressive filtering trades very short real strokes for fewer false
	// positives from scan noise.
	MinSegmentLength float64 `json:"min_segment_length"`
	// CollinearityDot is the minimum absolute dot product of unit directions
	// for two consecutive segments to merge.
	CollinearityDot float64 `json:"collinearity_dot"`
	// MergeGap is the maximum endpoint gap in screen units for a merge.
	MergeGap float64 `json:"merge_gap"`
	// CornerSnapRadius: a corner within this many screen units of the query
	// wins over any line.
	CornerSnapRadius float64 `json:"corner_snap_radius"`
	// LineSnapRadius: the nearest line within this many screen units becomes
	// the highlight when no corner qualifies.
	LineSnapRadius float64 `json:"line_snap_radius"`
	// TapProximity: only endpoints within this many screen units of the query
	// seed a corner cluster.
	TapProximity float64 `json:"tap_proximity"`
	// CornerProximity: endpoints within this many screen units of a cluster
	// seed join its corner.
	CornerProximity float64 `json:"corner_proximity"`
	// MaxCornerLines caps the lines recorded per corner; closest contributors
	// are retained to bound dense-contour noise.
	MaxCornerLines int `json:"max_corner_lines"`
	// ExtensionDot is the minimum absolute dot product between an extension
	// candidate and the extension direction.
	ExtensionDot float64 `json:"extension_dot"`
	// ExtensionProximity: an extension candidate's nearest endpoint must lie
	// within this many screen units of the dragged endpoint.
	ExtensionProximity float64 `json:"extension_proximity"`
	// SuperSample is the rasterization scale of search-window crops.
	SuperSample float64 `json:"super_sample"`
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		SimplifyEpsilon:    3.0,
		MinSegmentLength:   30,
		CollinearityDot:    0.95,
		MergeGap:           15,
		CornerSnapRadius:   40,
		LineSnapRadius:     50,
		TapProximity:       50,
		CornerProximity:    30,
		MaxCornerLines:     4,
		ExtensionDot:       0.9,
		ExtensionProximity: 50,
		SuperSample:        2.0,
	}
}

// LoadOptions reads options from a JSON file. Fields missing from the file
// keep their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), err
	}
	return opts, nil
}

// Save writes the options to a JSON file.
func (o Options) Save(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
