package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/vmath"
)

func testTrackProjector(tuning *parameter.Tuning, w, h float64) vmath.Projector {
	return vmath.Projector{
		CameraDepth:  tuning.CameraDepth,
		CameraHeight: tuning.CameraHeight,
		RoadWidth:    tuning.RoadWidth,
		ViewWidth:    w,
		ViewHeight:   h,
	}
}

func TestTrackRelativeDepthStrictlyAhead(t *testing.T) {
	tuning := parameter.DefaultTuning()
	track := NewTrack(&tuning)

	for _, depth := range []float64{0, 1, 199.5, 200, 12345.6, 1e7} {
		for i := 0; i < track.Len(); i++ {
			d := track.RelativeDepth(i, depth)
			require.Greater(t, d, float64(i)*tuning.SegmentLength, "segment %d depth %f", i, depth)
			require.LessOrEqual(t, d, float64(i+1)*tuning.SegmentLength, "segment %d depth %f", i, depth)
		}
	}
}

func TestTrackScrollsTowardCamera(t *testing.T) {
	tuning := parameter.DefaultTuning()
	track := NewTrack(&tuning)

	a := track.RelativeDepth(5, 1000)
	b := track.RelativeDepth(5, 1050)
	assert.InDelta(t, 50.0, a-b, 1e-9)
}

func TestTrackSpeedSteps(t *testing.T) {
	tuning := parameter.DefaultTuning()
	track := NewTrack(&tuning)

	assert.Equal(t, 200.0, track.SpeedAt(0))
	assert.Equal(t, 200.0, track.SpeedAt(999))
	assert.Equal(t, 220.0, track.SpeedAt(1000))
	assert.Equal(t, 400.0, track.SpeedAt(10500))
}

// The clip boundary never increases and quads come out far to near
func TestTrackPainterOrder(t *testing.T) {
	tuning := parameter.DefaultTuning()
	track := NewTrack(&tuning)

	viewports := [][2]float64{{160, 96}, {80, 40}, {1920, 1080}}
	for _, vp := range viewports {
		proj := testTrackProjector(&tuning, vp[0], vp[1])
		for _, depth := range []float64{0, 77, 200, 3456.7, 98765} {
			quads := track.Build(nil, proj, 250, depth)
			require.NotEmpty(t, quads)

			prev := vp[1]
			for i, b := range track.Boundaries() {
				require.LessOrEqual(t, b, prev, "boundary %d at depth %f", i, depth)
				prev = b
			}

			for i := 1; i < len(quads); i++ {
				require.Greater(t, quads[i-1].Index, quads[i].Index, "far to near order")
				require.LessOrEqual(t, quads[i-1].Near.Y, quads[i].Near.Y)
			}
			for _, q := range quads {
				require.GreaterOrEqual(t, q.Far.Y, proj.Horizon())
				require.LessOrEqual(t, q.Far.Y, q.Near.Y)
			}
		}
	}
}

func TestTrackMarkersFadeWithIndex(t *testing.T) {
	tuning := parameter.DefaultTuning()
	track := NewTrack(&tuning)
	proj := testTrackProjector(&tuning, 160, 96)

	quads := track.Build(nil, proj, 0, 0)
	var last float64 = -1
	// Walk near to far: alpha must not increase
	for i := len(quads) - 1; i >= 0; i-- {
		q := quads[i]
		if q.Index%parameter.LaneMarkerEvery != 0 {
			assert.Zero(t, q.MarkerAlpha)
			continue
		}
		if last >= 0 {
			assert.LessOrEqual(t, q.MarkerAlpha, last)
		}
		last = q.MarkerAlpha
		for _, m := range q.Markers {
			assert.Greater(t, m.W, 0.0)
			assert.GreaterOrEqual(t, m.H, 0.0)
		}
	}
	assert.InDelta(t, parameter.LaneMarkerAlpha, quads[len(quads)-1].MarkerAlpha, 1e-9, "nearest is most opaque")
}

func TestTrackBuildAppendsWithoutAllocation(t *testing.T) {
	tuning := parameter.DefaultTuning()
	track := NewTrack(&tuning)
	proj := testTrackProjector(&tuning, 160, 96)
	buf := make([]RoadQuad, 0, tuning.SegmentCount)

	allocs := testing.AllocsPerRun(10, func() {
		buf = track.Build(buf[:0], proj, 0, 4321)
	})
	assert.Zero(t, allocs)
}

func TestTrackPropsFarToNear(t *testing.T) {
	tuning := parameter.DefaultTuning()
	track := NewTrack(&tuning)
	proj := testTrackProjector(&tuning, 160, 96)

	props := track.BuildProps(nil, proj, 0, 5555)
	require.NotEmpty(t, props)
	for i := 1; i < len(props); i++ {
		assert.GreaterOrEqual(t, props[i-1].Depth, props[i].Depth)
	}
	for _, p := range props {
		assert.Greater(t, p.Depth, 0.0)
		assert.GreaterOrEqual(t, p.Opacity, 0.0)
		assert.LessOrEqual(t, p.Opacity, 1.0)
	}
}
