package parameter

// Steering
const (
	// SteeringRangeRatio maps pointer [-1, 1] to +/- ratio * RoadWidth
	SteeringRangeRatio = 0.4

	// SteeringDamping is the pursuit factor of the first-order low-pass
	SteeringDamping = 0.1

	// OversteerThreshold is the lateral speed per tick above which oversteer is flagged
	OversteerThreshold = 50.0

	// PointerNudge is the pointer delta applied per arrow key press
	PointerNudge = 0.1
)

// Player sprite, projected at a fixed distance ahead of the camera
const (
	// PlayerDrawDistance is the depth ahead of the camera where the player car is drawn
	PlayerDrawDistance = 500.0

	// PlayerCarWidth and PlayerCarHeight are in world units at PlayerDrawDistance
	PlayerCarWidth  = 700.0
	PlayerCarHeight = 1200.0
)
