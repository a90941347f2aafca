package parameter

import "time"

// Spawner cadence
const (
	// ObstacleBaseInterval is the obstacle spawn interval at score 0
	ObstacleBaseInterval = 1500 * time.Millisecond

	// ObstacleScoreCap caps the score-based interval reduction, in milliseconds per point
	ObstacleScoreCap = 1000

	// MinObstacleInterval is the floor of the obstacle spawn interval
	MinObstacleInterval = 500 * time.Millisecond

	// PickupInterval is the fixed shield pickup spawn interval
	PickupInterval = 10 * time.Second
)

// Spawn placement
const (
	// SpawnLateralRatio bounds spawn lateral offset to +/- ratio * RoadWidth
	SpawnLateralRatio = 0.35

	// SpawnLookAheadRatio places new entities at this fraction of the full draw distance
	SpawnLookAheadRatio = 0.8

	// SlowCarClosingSpeed is the per-tick closing speed of slow cars
	SlowCarClosingSpeed = 100.0
)

// Entity sprite sizes in world units
const (
	ObstacleSize = 300.0
	PickupSize   = 180.0

	// PickupHoverHeight lifts pickups above the road plane
	PickupHoverHeight = 50.0
)
