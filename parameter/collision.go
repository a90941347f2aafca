package parameter

// Collision window
const (
	// CollisionWindow is the distance ahead of the camera inside which entities are tested
	CollisionWindow = 500.0

	// CollisionLateralTolerance is the lateral gap under which an entity is a candidate
	CollisionLateralTolerance = 200.0

	// PotholeSafeTolerance is the lateral gap under which a pothole is straddled harmlessly
	PotholeSafeTolerance = 100.0
)

// Camera shake
const (
	// ShieldHitShake is the shake magnitude applied when a shield absorbs a hit
	ShieldHitShake = 20.0

	// ShakeDecay is the per-tick multiplicative decay of shake magnitude
	ShakeDecay = 0.9

	// ShakeCutoff zeroes the shake once magnitude falls below it
	ShakeCutoff = 0.5
)
