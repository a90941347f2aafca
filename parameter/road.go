package parameter

import "math"

// Road and camera geometry, in world units
const (
	// SegmentLength is the depth of one road segment
	SegmentLength = 200.0

	// SegmentCount is the size of the segment ring (draw distance in segments)
	SegmentCount = 300

	// RoadWidth is the full lateral width of the road
	RoadWidth = 2000.0

	// CameraHeight is the constant camera height above the road plane
	CameraHeight = 1000.0

	// FieldOfView is the horizontal field of view in degrees
	FieldOfView = 60.0

	// LaneMarkerEvery emits lane markers on every Nth segment
	LaneMarkerEvery = 3

	// LaneCount is the number of lanes; markers are drawn between them
	LaneCount = 4

	// LaneMarkerAlpha and EdgeGlowAlpha are the nearest-segment opacities, fading linearly to 0 at the far end
	LaneMarkerAlpha = 0.8
	EdgeGlowAlpha   = 0.6

	// LaneMarkerWidthRatio is the marker width relative to the projected road width
	LaneMarkerWidthRatio = 0.05
)

// CameraDepth is the projection distance derived from the field of view
// 1 / tan(((90 - fov) / 2) degrees)
var CameraDepth = 1 / math.Tan(((90-FieldOfView)/2)*math.Pi/180)

// Speed progression
const (
	// BaseSpeed is the camera advance per tick at distance 0
	BaseSpeed = 200.0

	// SpeedStepDistance is the distance between speed increments
	SpeedStepDistance = 1000.0

	// SpeedStepIncrement is added to speed every SpeedStepDistance, unbounded
	SpeedStepIncrement = 20.0

	// ScoreDistanceDivisor converts distance into score
	ScoreDistanceDivisor = 100.0
)

// Decorative props
const (
	// PropCount is the number of palm trees per road side
	PropCount = 20

	// PropLateralRatio places props at this multiple of RoadWidth from the center
	PropLateralRatio = 0.8

	// PropHeight and PropWidth are the prop trunk dimensions in world units
	PropHeight = 1500.0
	PropWidth  = 300.0
)
