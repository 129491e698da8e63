package snap

import (
	"fmt"
	"sync"
	"sync/atomic"

	"blueprint-snap/internal/contour"
	"blueprint-snap/internal/coords"
	"blueprint-snap/internal/render"
	"blueprint-snap/pkg/geometry"
)

// State tracks where the interaction session is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateDetected
	StateHighlighted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSearching:
		return "Searching"
	case StateDetected:
		return "Detected"
	case StateHighlighted:
		return "Highlighted"
	default:
		return "Unknown"
	}
}

// Event identifies session events observers can subscribe to.
type Event int

const (
	// EventDetectionChanged fires when a query or extension replaces the
	// published result.
	EventDetectionChanged Event = iota
	// EventHighlightChanged fires when the highlighted line or corner changes.
	EventHighlightChanged
	// EventCleared fires when the session resets to Idle.
	EventCleared
)

// Listener receives a read-only snapshot of the result after a change.
type Listener func(*DetectionResult)

// DetectionResult is the published outcome of one query or extension.
// Lines and Intersections are sorted ascending by distance to the query
// point. At most one of HighlightedLine/HighlightedIntersection is set;
// corner selection takes priority.
type DetectionResult struct {
	Lines                   []Line
	Intersections           []Intersection
	HighlightedLine         *Line
	HighlightedIntersection *Intersection
}

// clone returns an independent copy safe to hand to observers.
func (r *DetectionResult) clone() *DetectionResult {
	if r == nil {
		return &DetectionResult{}
	}
	out := &DetectionResult{
		Lines:         append([]Line(nil), r.Lines...),
		Intersections: make([]Intersection, 0, len(r.Intersections)),
	}
	for _, ix := range r.Intersections {
		ix.Lines = append([]Line(nil), ix.Lines...)
		out.Intersections = append(out.Intersections, ix)
	}
	if r.HighlightedLine != nil {
		l := *r.HighlightedLine
		out.HighlightedLine = &l
	}
	if r.HighlightedIntersection != nil {
		ix := *r.HighlightedIntersection
		ix.Lines = append([]Line(nil), ix.Lines...)
		out.HighlightedIntersection = &ix
	}
	return out
}

// Session owns the detection state of one interaction. All mutation goes
// through the query/extend/select/clear API; observers get immutable
// snapshots. Queries may overlap in time: each takes a sequence number and
// only the latest may publish, so a slow stale query can never overwrite a
// newer result (last query wins, not first completed).
type Session struct {
	pipe pipeline
	opts Options

	seq    atomic.Uint64
	nextID atomic.Int64

	mu        sync.Mutex
	published uint64
	state     State
	result    *DetectionResult
	listeners map[Event][]Listener
}

// NewSession creates a session over the given renderer and contour detector.
func NewSession(renderer render.PageRenderer, detector contour.Detector, opts Options) *Session {
	return &Session{
		pipe:      pipeline{renderer: renderer, detector: detector, opts: opts},
		opts:      opts,
		listeners: make(map[Event][]Listener),
	}
}

// On registers an event listener.
func (s *Session) On(event Event, listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns a snapshot of the published detection result.
func (s *Session) Result() *DetectionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.clone()
}

// DetectNear runs the primary query: detect lines and corners near a screen
// point. A non-positive radius uses DefaultSearchRadius. The returned result
// is this query's outcome; it becomes the published session result unless a
// newer query has already superseded it.
func (s *Session) DetectNear(pt geometry.Point2D, view coords.View, radius float64) *DetectionResult {
	if radius <= 0 {
		radius = DefaultSearchRadius
	}
	seq := s.seq.Add(1)
	s.setState(StateSearching)

	res := s.detect(pt, view, radius)
	s.publish(seq, res)
	return res
}

// detect builds a DetectionResult without touching session state. Resolution
// and render failures fold into an empty result.
func (s *Session) detect(pt geometry.Point2D, view coords.View, radius float64) *DetectionResult {
	res := &DetectionResult{}

	pagePt, ok := view.ResolvePage(pt)
	if !ok {
		return res
	}
	scale := view.Scale()
	if scale <= 0 {
		return res
	}

	region := geometry.RectAround(pagePt, 2*radius/scale)
	segs := s.pipe.detectRegion(view, region)
	if len(segs) == 0 {
		return res
	}

	lines := s.materialize(segs, view.Page)
	sortByDistance(lines, pt)
	res.Lines = lines
	res.Intersections = clusterCorners(lines, pt, s.opts)
	applySnapPolicy(res, pt, s.opts)
	return res
}

// Extend searches for a collinear continuation of an existing line beyond the
// endpoint nearest to from. The search window is a square of side
// searchDistance page units opened ahead of that endpoint along the line's
// direction. Returns the merged line spanning the fixed anchor and the new
// far point, or nil when no qualifying continuation exists - which is not an
// error, simply "no extension available".
func (s *Session) Extend(line Line, from geometry.Point2D, view coords.View, searchDistance float64) *Line {
	if searchDistance <= 0 {
		searchDistance = DefaultExtensionDistance
	}
	seq := s.seq.Add(1)
	s.setState(StateSearching)

	dragged, anchor := line.endpoints(from)
	dir := dragged.Page.Sub(anchor.Page).Normalize()
	if dir == (geometry.Point2D{}) {
		s.publish(seq, nil)
		return nil
	}

	center := dragged.Page.Add(dir.Scale(searchDistance / 2))
	segs := s.pipe.detectRegion(view, geometry.RectAround(center, searchDistance))

	bestIdx := -1
	bestNet := 0.0
	for i, sg := range segs {
		dot := sg.pageDirection().Dot(dir)
		if dot < 0 {
			dot = -dot
		}
		if dot <= s.opts.ExtensionDot {
			continue
		}
		near := geometry.NearestEndpoint(dragged.Screen, sg.A.Screen, sg.B.Screen)
		if near.Distance(dragged.Screen) > s.opts.ExtensionProximity {
			continue
		}
		far := sg.farFrom(anchor.Screen)
		net := far.Screen.Distance(anchor.Screen) - line.Length()
		if net <= 0 {
			continue
		}
		if bestIdx < 0 || net > bestNet {
			bestIdx, bestNet = i, net
		}
	}

	if bestIdx < 0 {
		s.publish(seq, nil)
		return nil
	}

	far := segs[bestIdx].farFrom(anchor.Screen)
	merged := Line{
		ID:        s.newID(),
		Page:      line.Page,
		Start:     anchor.Screen,
		End:       far.Screen,
		PageStart: anchor.Page,
		PageEnd:   far.Page,
	}

	lines := append(s.materialize(segs, view.Page), merged)
	sortByDistance(lines, dragged.Screen)
	res := &DetectionResult{
		Lines:         lines,
		Intersections: clusterCorners(lines, dragged.Screen, s.opts),
	}
	hl := merged
	res.HighlightedLine = &hl

	s.publish(seq, res)
	return &merged
}

// ExtendToPoint constructs a line from the anchor endpoint (the one opposite
// from) to an arbitrary target point, without consulting the raster. This is
// the manual escape hatch when automatic extension finds nothing or the user
// overrides it; it always succeeds structurally.
func (s *Session) ExtendToPoint(line Line, from, target geometry.Point2D, view coords.View) Line {
	_, anchor := line.endpoints(from)
	pageTarget, ok := view.ScreenToPagePoint(target)
	if !ok {
		pageTarget = anchor.Page
	}

	merged := Line{
		ID:        s.newID(),
		Page:      line.Page,
		Start:     anchor.Screen,
		End:       target,
		PageStart: anchor.Page,
		PageEnd:   pageTarget,
	}

	seq := s.seq.Add(1)
	s.mu.Lock()
	s.published = seq
	res := s.result.clone()
	res.Lines = replaceOrAppend(res.Lines, line.ID, merged)
	hl := merged
	res.HighlightedLine = &hl
	res.HighlightedIntersection = nil
	s.result = res
	s.state = StateHighlighted
	snapshot := res.clone()
	detection := s.listeners[EventDetectionChanged]
	highlight := s.listeners[EventHighlightChanged]
	s.mu.Unlock()

	emit(detection, snapshot)
	emit(highlight, snapshot)
	return merged
}

// Select sets the highlighted line without re-querying.
func (s *Session) Select(line Line) {
	s.mu.Lock()
	if s.result == nil {
		s.result = &DetectionResult{}
	}
	hl := line
	s.result.HighlightedLine = &hl
	s.result.HighlightedIntersection = nil
	s.state = StateHighlighted
	snapshot := s.result.clone()
	highlight := s.listeners[EventHighlightChanged]
	s.mu.Unlock()

	emit(highlight, snapshot)
}

// Clear resets the session to Idle unconditionally. In-flight queries started
// before the clear can no longer publish.
func (s *Session) Clear() {
	s.mu.Lock()
	s.published = s.seq.Load()
	s.result = nil
	s.state = StateIdle
	cleared := s.listeners[EventCleared]
	s.mu.Unlock()

	emit(cleared, &DetectionResult{})
}

// publish installs a result if its query is still the latest. A nil result
// records the query as finished without changing the published result.
func (s *Session) publish(seq uint64, res *DetectionResult) {
	s.mu.Lock()
	if seq <= s.published {
		s.mu.Unlock()
		return
	}
	s.published = seq

	if res == nil {
		if s.result == nil {
			s.state = StateIdle
		} else {
			s.state = stateFor(s.result)
		}
		s.mu.Unlock()
		return
	}

	s.result = res
	s.state = stateFor(res)
	snapshot := res.clone()
	detection := s.listeners[EventDetectionChanged]
	highlight := s.listeners[EventHighlightChanged]
	s.mu.Unlock()

	emit(detection, snapshot)
	if res.HighlightedLine != nil || res.HighlightedIntersection != nil {
		emit(highlight, snapshot)
	}
}

func stateFor(res *DetectionResult) State {
	if res.HighlightedLine != nil || res.HighlightedIntersection != nil {
		return StateHighlighted
	}
	return StateDetected
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Session) materialize(segs []segment, page int) []Line {
	lines := make([]Line, 0, len(segs))
	for _, sg := range segs {
		lines = append(lines, Line{
			ID:        s.newID(),
			Page:      page,
			Start:     sg.A.Screen,
			End:       sg.B.Screen,
			PageStart: sg.A.Page,
			PageEnd:   sg.B.Page,
		})
	}
	return lines
}

// newID issues a line identity stable within this session.
func (s *Session) newID() string {
	return fmt.Sprintf("line-%03d", s.nextID.Add(1))
}

// farFrom returns the segment endpoint farther from a screen point.
func (s segment) farFrom(p geometry.Point2D) endpoint {
	if s.A.Screen.Distance(p) > s.B.Screen.Distance(p) {
		return s.A
	}
	return s.B
}

func replaceOrAppend(lines []Line, id string, line Line) []Line {
	for i := range lines {
		if lines[i].ID == id {
			lines[i] = line
			return lines
		}
	}
	return append(lines, line)
}

func emit(listeners []Listener, res *DetectionResult) {
	for _, l := range listeners {
		l(res)
	}
}
