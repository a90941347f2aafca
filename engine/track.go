package engine

import (
	"math"
	"slices"

	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/vmath"
)

// laneMarkers is the number of marker columns between lanes
const laneMarkers = parameter.LaneCount - 1

// Segment is one slot of the road ring
type Segment struct {
	Index int
	Color uint8
}

// Track is the fixed-size segment ring of a continuously scrolling road
// The ring is sized once; per-tick work only reads it and writes caller buffers
type Track struct {
	tuning     *parameter.Tuning
	segments   []Segment
	boundaries []float64 // Clip boundary after each processed segment, last Build only
}

// NewTrack allocates the segment ring
func NewTrack(tuning *parameter.Tuning) *Track {
	n := tuning.SegmentCount
	t := &Track{
		tuning:     tuning,
		segments:   make([]Segment, n),
		boundaries: make([]float64, 0, n),
	}
	for i := range t.segments {
		var color uint8
		if i%3 != 0 {
			color = 1
		}
		t.segments[i] = Segment{Index: i, Color: color}
	}
	return t
}

// Len returns the ring size
func (t *Track) Len() int {
	return len(t.segments)
}

// SpeedAt returns the per-tick camera advance for a traveled distance
func (t *Track) SpeedAt(distance float64) float64 {
	steps := math.Floor(distance / t.tuning.SpeedStepDistance)
	return t.tuning.BaseSpeed + steps*t.tuning.SpeedStepIncrement
}

// RelativeDepth returns how far ahead of the camera segment i's near edge lies
// Shifted by one segment so index 0 is always strictly ahead: result is in (i*L, (i+1)*L]
func (t *Track) RelativeDepth(i int, trackDepth float64) float64 {
	l := t.tuning.SegmentLength
	return float64(i+1)*l - vmath.Mod(trackDepth, l)
}

// WorldDepth returns the absolute world depth of segment i's near edge
func (t *Track) WorldDepth(i int, trackDepth float64) float64 {
	return trackDepth + t.RelativeDepth(i, trackDepth)
}

// edge projects both road borders at a relative depth
func (t *Track) edge(proj vmath.Projector, depth, cameraX float64) Edge {
	half := t.tuning.RoadWidth / 2
	l := proj.ProjectRelative(-half, 0, depth, cameraX)
	r := proj.ProjectRelative(half, 0, depth, cameraX)
	return Edge{LeftX: l.X, RightX: r.X, Y: l.Y, Width: l.Width}
}

// Build appends the visible road quads to dst in far-to-near paint order
// Visibility walks near to far against a clip boundary that never increases, so a farther
// quad is emitted only where no nearer quad already covers the screen
func (t *Track) Build(dst []RoadQuad, proj vmath.Projector, cameraX, trackDepth float64) []RoadQuad {
	start := len(dst)
	horizon := proj.Horizon()
	maxY := proj.ViewHeight
	n := len(t.segments)
	t.boundaries = t.boundaries[:0]

	near := t.edge(proj, t.RelativeDepth(0, trackDepth), cameraX)
	for i := 0; i < n-1; i++ {
		far := t.edge(proj, t.RelativeDepth(i+1, trackDepth), cameraX)

		if far.Y >= horizon && far.Y < maxY {
			q := RoadQuad{
				Index:     i,
				Near:      near,
				Far:       far,
				Color:     t.segments[i].Color,
				GlowAlpha: parameter.EdgeGlowAlpha * vmath.Fade(i, n),
			}
			if i%parameter.LaneMarkerEvery == 0 {
				q.MarkerAlpha = parameter.LaneMarkerAlpha * vmath.Fade(i, n)
				t.markers(&q, proj, cameraX, trackDepth)
			}
			dst = append(dst, q)
			maxY = far.Y
		}
		t.boundaries = append(t.boundaries, maxY)
		near = far
	}

	slices.Reverse(dst[start:])
	return dst
}

// markers fills lane ticks spanning the quad between lane boundaries
func (t *Track) markers(q *RoadQuad, proj vmath.Projector, cameraX, trackDepth float64) {
	w := t.tuning.RoadWidth
	depth := t.RelativeDepth(q.Index, trackDepth)
	mw := q.Near.Width * parameter.LaneMarkerWidthRatio
	for lane := 1; lane <= laneMarkers; lane++ {
		laneX := -w/2 + float64(lane)/parameter.LaneCount*w
		p := proj.ProjectRelative(laneX, 0, depth, cameraX)
		q.Markers[lane-1] = Marker{
			X: p.X - mw/2,
			Y: q.Far.Y,
			W: mw,
			H: q.Near.Y - q.Far.Y,
		}
	}
}

// Boundaries returns the clip boundary sequence recorded by the last Build
func (t *Track) Boundaries() []float64 {
	return t.boundaries
}

// BuildProps appends roadside props in far-to-near order
// Props are evenly spaced over the draw distance and scroll with the camera
func (t *Track) BuildProps(dst []Prop, proj vmath.Projector, cameraX, trackDepth float64) []Prop {
	start := len(dst)
	span := t.tuning.DrawDistance()
	spacing := span / parameter.PropCount
	lateral := t.tuning.RoadWidth * parameter.PropLateralRatio

	for i := 0; i < parameter.PropCount; i++ {
		depth := vmath.Mod(float64(i)*spacing-trackDepth, span) + t.tuning.SegmentLength
		opacity := vmath.Clamp(1-depth/span, 0, 1)
		for _, left := range [2]bool{true, false} {
			x := lateral
			if left {
				x = -lateral
			}
			p := proj.ProjectRelative(x, 0, depth, cameraX)
			if p.Y <= 0 || p.Y >= proj.ViewHeight {
				continue
			}
			dst = append(dst, Prop{P: p, Opacity: opacity, Left: left, Depth: depth})
		}
	}

	slices.SortFunc(dst[start:], func(a, b Prop) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
	return dst
}
