package engine

import "github.com/lixenwraith/neon-highway/vmath"

// RoadQuad is one visible road slice between two consecutive segment edges
type RoadQuad struct {
	Index       int // Segment index of the near edge
	Near, Far   Edge
	Color       uint8   // Alternating fill index
	MarkerAlpha float64 // Lane marker opacity, 0 when no markers on this segment
	GlowAlpha   float64 // Road edge glow opacity
	Markers     [laneMarkers]Marker
}

// Edge is a projected horizontal road edge
type Edge struct {
	LeftX, RightX, Y float64
	Width            float64
}

// Marker is a lane tick rectangle in screen space
type Marker struct {
	X, Y, W, H float64
}

// Sprite is a projected entity ready for drawing
type Sprite struct {
	Kind  Kind
	P     vmath.Projection
	Depth float64 // Distance ahead of the camera
}

// Prop is a projected decorative prop
type Prop struct {
	P       vmath.Projection
	Opacity float64
	Left    bool
	Depth   float64
}

// PlayerSprite is the projected player car and its overlays
type PlayerSprite struct {
	P         vmath.Projection
	Velocity  float64
	Shield    bool
	Oversteer bool
}

// HUD holds the numbers drawn over the frame
type HUD struct {
	Score    int64
	Distance float64
	Speed    float64
	Shield   bool
}

// Frame is the derived geometry of one tick, consumed read-only by the renderer
// The simulation reuses one Frame; contents are valid until the next Tick or Reset
type Frame struct {
	State   SessionState
	Paused  bool
	Number  uint64
	Elapsed float64 // Session seconds, drives cosmetic pulses

	ViewWidth, ViewHeight int
	Horizon               float64
	ShakeX, ShakeY        float64
	Camera                CameraPose

	Quads    []RoadQuad // Far to near
	Props    []Prop     // Far to near
	Sprites  []Sprite   // Far to near
	Player   PlayerSprite
	HUD      HUD
	Events   []Event
	Entities int
}

// reset clears per-tick slices keeping capacity
func (f *Frame) reset() {
	f.Quads = f.Quads[:0]
	f.Props = f.Props[:0]
	f.Sprites = f.Sprites[:0]
	f.Events = f.Events[:0]
	f.ShakeX, f.ShakeY = 0, 0
}

// EventType identifies an outcome the presentation layer may react to
type EventType uint8

const (
	EventSessionStart EventType = iota
	EventShieldCollected
	EventShieldConsumed
	EventCrash
	EventOversteer
)

func (t EventType) String() string {
	switch t {
	case EventSessionStart:
		return "session_start"
	case EventShieldCollected:
		return "shield_collected"
	case EventShieldConsumed:
		return "shield_consumed"
	case EventCrash:
		return "crash"
	case EventOversteer:
		return "oversteer"
	default:
		return "unknown"
	}
}

// Event is emitted during a tick
type Event struct {
	Type EventType
	Kind Kind // Entity kind involved, if any
}
